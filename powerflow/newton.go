package powerflow

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridflow/network"
)

// buses is the per-step solver state over the flat node index space:
// loads first, then resources.
type buses struct {
	injection []float64
	potential []float64
}

// seedBuses prepares the per-step state for one demand level. Consumers
// inject the negated demand at a unit potential guess, branch points carry
// no injection, and resources are pinned at their source voltage with a
// placeholder current that extraction later overwrites.
func seedBuses(net *network.Network, demand float64) buses {
	n := net.NumNodes()
	b := buses{
		injection: make([]float64, n),
		potential: make([]float64, n),
	}
	nConsumers := net.NumConsumers()
	nLoads := net.NumLoads()
	for i := 0; i < nConsumers; i++ {
		b.injection[i] = -demand
		b.potential[i] = loadSeedPotential
	}
	for i := nConsumers; i < nLoads; i++ {
		b.potential[i] = loadSeedPotential
	}
	resources := net.Resources()
	for i := nLoads; i < n; i++ {
		b.injection[i] = resourceSeedCurrent
		b.potential[i] = resources[i-nLoads].Voltage()
	}
	return b
}

// newtonRaphson drives load potentials toward a current balance. Each pass
// first checks convergence: the calculated net current at every load is
// compared against its injection, and if the worst mismatch is within
// tolerance the step is done. Otherwise the load sub-block of the
// conductance matrix is solved against the mismatch vector and every load
// potential is scaled by its correction.
//
// Hitting the iteration cap is not an error: the last potentials are kept
// as a best effort. ErrSingularSystem is returned when the sub-block
// cannot be solved, or when a mismatch turns non-finite (a coincident node
// pair yields an infinite conductance and poisons the balance with NaN,
// which would otherwise slip through the worst-mismatch comparison).
func newtonRaphson(g *mat.Dense, b buses, nLoads int, cfg config) error {
	n := len(b.potential)

	// Jacobian of the load current balance with respect to load
	// potentials, negated so the solve yields the correction directly.
	negJac := mat.NewDense(nLoads, nLoads, nil)
	negJac.Scale(-1, g.Slice(0, nLoads, 0, nLoads))

	mismatch := mat.NewVecDense(nLoads, nil)
	delta := mat.NewVecDense(nLoads, nil)

	for iter := 0; iter < cfg.maxIterations; iter++ {
		worst := 0.0
		for i := 0; i < nLoads; i++ {
			var calc float64
			for j := 0; j < n; j++ {
				calc += g.At(i, j) * (b.potential[i] - b.potential[j])
			}
			m := calc - b.injection[i]
			if math.IsNaN(m) || math.IsInf(m, 0) {
				return ErrSingularSystem
			}
			mismatch.SetVec(i, m)
			if abs := math.Abs(m); abs > worst {
				worst = abs
			}
		}
		if worst <= cfg.tolerance {
			return nil
		}

		if err := delta.SolveVec(negJac, mismatch); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
				return ErrSingularSystem
			}
			// Ill-conditioned but solvable: accept the best-effort
			// correction.
		}
		for i := 0; i < nLoads; i++ {
			b.potential[i] *= 1.0 - delta.AtVec(i)
		}
	}
	return nil
}
