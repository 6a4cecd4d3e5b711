package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridflow/powerflow"
	"github.com/katalvlaran/gridflow/simconfig"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// TestAssembleManual builds the two-node reference network from files and
// runs it end to end through output writing.
func TestAssembleManual(t *testing.T) {
	dir := t.TempDir()
	cfg := simconfig.Config{
		Topology:       "plane",
		PlaneMaxCoords: []float64{10, 10},
		ConsumersFile:  writeFile(t, dir, "consumers.csv", "id,x,y\n1,0,0\n"),
		ResourcesFile:  writeFile(t, dir, "resources.csv", "id,x,y,voltage\n2,1,0,10\n"),
		ManualNetwork:  true,
		MatrixFile:     writeFile(t, dir, "matrix.csv", "from,to,strength\n1,2,1\n"),
		OutputCSV:      filepath.Join(dir, "result.csv"),
		Seed:           1,
	}

	space, err := cfg.Space()
	require.NoError(t, err)
	net, err := assemble(cfg, space)
	require.NoError(t, err)
	require.Equal(t, 1, net.NumConsumers())
	require.Equal(t, 0, net.NumBranchPoints())
	require.Equal(t, 1, net.NumResources())

	res, err := powerflow.Run(net, space, powerflow.WithSchedule(1, 0.1, 1))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	require.NoError(t, writeOutputs(cfg, space, net, res))
	for _, name := range []string{"result.csv", "consumers.csv", "branch_points.csv", "resources.csv", "links.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	data, err := os.ReadFile(cfg.OutputCSV)
	require.NoError(t, err)
	require.Contains(t, string(data), "total_power_consumption")
	require.Contains(t, string(data), "1,1,10,10,9,9,9")
}

// TestAssembleRandom draws a reproducible random placement while the
// resources still come from their file, voltages and all.
func TestAssembleRandom(t *testing.T) {
	dir := t.TempDir()
	cfg := simconfig.Config{
		Topology:        "plane",
		PlaneMaxCoords:  []float64{100, 100},
		RandomConsumers: true,
		NConsumers:      4,
		NBranchPoints:   2,
		NResources:      2,
		ResourcesFile:   writeFile(t, dir, "resources.csv", "id,x,y,voltage\n7,1,0,10\n8,2,0,230\n"),
		PNoConnection:   0.5,
		Strength:        simconfig.Range{Min: 1, Max: 5},
		Seed:            7,
	}

	space, err := cfg.Space()
	require.NoError(t, err)
	net, err := assemble(cfg, space)
	require.NoError(t, err)
	require.Equal(t, 4, net.NumConsumers())
	require.Equal(t, 2, net.NumBranchPoints())
	require.Equal(t, 2, net.NumResources())
	require.Equal(t, 6, net.Connectivity().Connectables())
	require.Equal(t, 10.0, net.Resources()[0].Voltage())
	require.Equal(t, 230.0, net.Resources()[1].Voltage())
}
