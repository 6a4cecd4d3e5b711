package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridflow/csvio"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/powerflow"
	"github.com/katalvlaran/gridflow/simconfig"
	"github.com/katalvlaran/gridflow/topology"
)

func newRunCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demand sweep described by a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "sim.yaml", "run configuration file")
	return cmd
}

func run(configPath string) error {
	runID := uuid.NewString()
	log.Printf("run %s: loading %s", runID, configPath)

	cfg, err := simconfig.Load(configPath)
	if err != nil {
		return err
	}
	space, err := cfg.Space()
	if err != nil {
		return err
	}
	net, err := assemble(cfg, space)
	if err != nil {
		return err
	}
	log.Printf("run %s: %s network, %d consumers, %d branch points, %d resources",
		runID, space.Kind(), net.NumConsumers(), net.NumBranchPoints(), net.NumResources())

	opts := solverOptions(cfg)
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		m := newRunMetrics(reg)
		serveMetrics(cfg.MetricsAddr, reg)
		opts = append(opts, powerflow.WithProgress(m.observe))
	}

	res, err := powerflow.Run(net, space, opts...)
	if err != nil {
		return err
	}
	log.Printf("run %s: %d rows, stopped: %s", runID, len(res.Rows), res.Outcome)

	if err := writeOutputs(cfg, space, net, res); err != nil {
		return err
	}
	log.Printf("run %s: results written to %s", runID, cfg.OutputCSV)
	return nil
}

// solverOptions maps the configuration onto solver tunables, leaving
// unset fields at the solver defaults.
func solverOptions(cfg simconfig.Config) []powerflow.Option {
	var opts []powerflow.Option
	if cfg.UseStrength {
		opts = append(opts, powerflow.WithStrength(cfg.StrengthExponent))
	}
	if s := cfg.Sweep; s.StartDemand > 0 || s.DemandStep > 0 || s.DemandLimit > 0 {
		start, step, limit := s.StartDemand, s.DemandStep, s.DemandLimit
		if start == 0 {
			start = powerflow.DefaultStartDemand
		}
		if step == 0 {
			step = powerflow.DefaultDemandStep
		}
		if limit == 0 {
			limit = powerflow.DefaultDemandLimit
		}
		opts = append(opts, powerflow.WithSchedule(start, step, limit))
	}
	if cfg.Sweep.Tolerance > 0 {
		opts = append(opts, powerflow.WithTolerance(cfg.Sweep.Tolerance))
	}
	if cfg.Sweep.MaxIterations > 0 {
		opts = append(opts, powerflow.WithMaxIterations(cfg.Sweep.MaxIterations))
	}
	return opts
}

// writeOutputs writes the sweep result plus the auxiliary exports next to
// it: node coordinate tables per role and the link table.
func writeOutputs(cfg simconfig.Config, space topology.Space, net *network.Network, res powerflow.Result) error {
	if err := writeResult(cfg.OutputCSV, net, res); err != nil {
		return err
	}

	dir := filepath.Dir(cfg.OutputCSV)
	aux := []struct {
		name  string
		build func(topology.Space) (network.Table, error)
	}{
		{"consumers.csv", net.ConsumerTable},
		{"branch_points.csv", net.BranchPointTable},
		{"resources.csv", net.ResourceTable},
		{"links.csv", net.LinkTable},
	}
	for _, a := range aux {
		t, err := a.build(space)
		if err != nil {
			return err
		}
		if err := writeTableFile(filepath.Join(dir, a.name), t); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(path string, net *network.Network, res powerflow.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := csvio.WriteRows(f, res, net.NumResources(), net.NumConsumers()); err != nil {
		return err
	}
	return f.Close()
}

func writeTableFile(path string, t network.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := csvio.WriteTable(f, t); err != nil {
		return err
	}
	return f.Close()
}
