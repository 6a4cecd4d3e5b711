package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridflow/connect"
	"github.com/katalvlaran/gridflow/csvio"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/simconfig"
	"github.com/katalvlaran/gridflow/topology"
)

// assemble builds the network the configuration describes: consumers and
// branch points placed randomly or read from files, connectivity drawn
// randomly or read from an edge-list file. Resources always come from
// resourcesFile; placement mode does not change their voltages.
func assemble(cfg simconfig.Config, space topology.Space) (*network.Network, error) {
	var (
		consumers, branches []network.Coordinates
		err                 error
	)
	if cfg.RandomConsumers {
		consumers = samplePoints(space, cfg.NConsumers)
		branches = samplePoints(space, cfg.NBranchPoints)
	} else {
		consumers, err = readCoordsFile(cfg.ConsumersFile, space, expectCount(cfg.NConsumers))
		if err != nil {
			return nil, err
		}
		if cfg.BranchPointsFile != "" {
			branches, err = readCoordsFile(cfg.BranchPointsFile, space, expectCount(cfg.NBranchPoints))
			if err != nil {
				return nil, err
			}
		}
	}
	resources, err := readResourcesFile(cfg.ResourcesFile, space, expectCount(cfg.NResources))
	if err != nil {
		return nil, err
	}

	nLoads := len(consumers) + len(branches)
	nodes := nLoads + len(resources)

	var conn *connect.Matrix
	if cfg.ManualNetwork {
		edges, eerr := readEdgesFile(cfg.MatrixFile)
		if eerr != nil {
			return nil, eerr
		}
		conn, err = connect.NewFromEdges(edges, nodes, cfg.NoConnection, nLoads)
	} else {
		conn, err = connect.NewRandom(nodes, nLoads, cfg.PNoConnection,
			cfg.Strength.Interval(), cfg.NoConnection, connect.WithSeed(cfg.Seed))
	}
	if err != nil {
		return nil, err
	}
	return network.New(consumers, branches, resources, conn)
}

// expectCount maps a zero config count onto "any", so file-based runs need
// not repeat what the files already say.
func expectCount(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

func samplePoints(space topology.Space, n int) []network.Coordinates {
	out := make([]network.Coordinates, 0, n)
	for i := 0; i < n; i++ {
		// Sample draws within OrdinateRanges, so this cannot fail.
		c, _ := network.NewCoordinates(space.Sample(), space.OrdinateRanges())
		out = append(out, c)
	}
	return out
}

func readCoordsFile(path string, space topology.Space, expect int) ([]network.Coordinates, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	coords, err := csvio.ReadCoords(f, space, expect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coords, nil
}

func readResourcesFile(path string, space topology.Space, expect int) ([]network.Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	res, err := csvio.ReadResources(f, space, expect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func readEdgesFile(path string) ([]connect.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	edges, err := csvio.ReadEdges(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}
