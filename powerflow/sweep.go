package powerflow

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/topology"
)

// Run sweeps per-consumer demand across the configured schedule, solving a
// steady-state power flow at each step. The conductance matrix is built
// once; each step reseeds bus state, iterates to a current balance and
// extracts a result row. The sweep stops when the schedule is exhausted,
// when total consumed power turns negative (the offending step is
// discarded), or when a step's linear system cannot be solved (prior rows
// are preserved).
//
// The network's potentials accumulator is cleared at the start of each
// run; every accepted row then appends its solved consumer potentials.
func Run(net *network.Network, space topology.Space, opts ...Option) (Result, error) {
	if net == nil {
		return Result{}, ErrNilNetwork
	}
	net.ResetPotentials()
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g, records, err := buildConductance(net, space, cfg)
	if err != nil {
		return Result{}, err
	}
	res := Result{TotalLength: totalLinkLength(records)}

	for demand := cfg.startDemand; demand <= cfg.demandLimit; demand += cfg.demandStep {
		row, outcome, ok := step(net, g, demand, res.TotalLength, cfg)
		if !ok {
			res.Outcome = outcome
			return res, nil
		}
		res.Rows = append(res.Rows, row)
		net.AppendPotentials(row.ConsumerVoltage...)
		if cfg.progress != nil {
			cfg.progress(row)
		}
	}
	res.Outcome = OutcomeScheduleExhausted
	return res, nil
}

// step solves one demand level and extracts its row. ok reports whether
// the row was accepted; when false, outcome carries the stop reason.
// A step that runs out of iterations is still extracted from its last
// potentials; only an unsolvable linear system abandons the step.
func step(net *network.Network, g *mat.Dense, demand, totalLength float64, cfg config) (Row, Outcome, bool) {
	nLoads := net.NumLoads()
	b := seedBuses(net, demand)

	if err := newtonRaphson(g, b, nLoads, cfg); err != nil {
		return Row{}, OutcomeSingular, false
	}

	row := extract(net, g, b, demand, totalLength)
	if row.TotalPower < 0 {
		return Row{}, OutcomeInfeasible, false
	}
	return row, OutcomeScheduleExhausted, true
}

// extract derives the reported quantities from solved bus state: per
// resource, the net current flowing out into the load side and the power
// it delivers at its pinned voltage; per consumer, the demanded current at
// the solved potential. Total power is the sum over consumers.
func extract(net *network.Network, g *mat.Dense, b buses, demand, totalLength float64) Row {
	nConsumers := net.NumConsumers()
	nLoads := net.NumLoads()
	nRes := net.NumResources()

	row := Row{
		Current:         demand,
		Length:          totalLength,
		ResourcePower:   make([]float64, nRes),
		ResourceVoltage: make([]float64, nRes),
		ConsumerPower:   make([]float64, nConsumers),
		ConsumerVoltage: make([]float64, nConsumers),
	}
	for r := 0; r < nRes; r++ {
		node := nLoads + r
		var out float64
		for j := 0; j < nLoads; j++ {
			out += g.At(node, j) * (b.potential[node] - b.potential[j])
		}
		row.ResourceVoltage[r] = b.potential[node]
		row.ResourcePower[r] = out * b.potential[node]
	}
	for i := 0; i < nConsumers; i++ {
		row.ConsumerVoltage[i] = b.potential[i]
		row.ConsumerPower[i] = math.Abs(b.injection[i]) * b.potential[i]
		row.TotalPower += row.ConsumerPower[i]
	}
	return row
}
