package powerflow

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridflow/connect"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/topology"
)

// buildConductance assembles the N×N nodal conductance matrix from the
// network geometry. Off-diagonal G[i][j] is the link conductance between
// nodes i and j (zero when unconnected); each diagonal entry is the negated
// sum of its row's off-diagonals, so every row sums to zero.
//
// Geometry is fixed for the lifetime of a sweep, so the matrix is built
// once and shared across all demand steps.
func buildConductance(net *network.Network, space topology.Space, cfg config) (*mat.Dense, []connect.Record, error) {
	records, err := net.Connectivity().DistanceRecords(space, net.CoordsAt)
	if err != nil {
		return nil, nil, err
	}

	n := net.NumNodes()
	g := mat.NewDense(n, n, nil)
	for _, rec := range records {
		cond := linkConductance(rec, cfg)
		g.Set(rec.From, rec.To, cond)
		g.Set(rec.To, rec.From, cond)
	}
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			if j != i {
				sum += g.At(i, j)
			}
		}
		g.Set(i, i, -sum)
	}
	return g, records, nil
}

// linkConductance maps one link record to a conductance value: the plain
// reciprocal of length, or strength^exponent over length when the
// strength-aware policy is active. A zero-length link is treated as a
// perfect conductor and contributes an infinite conductance; callers see
// that as a singular step.
func linkConductance(rec connect.Record, cfg config) float64 {
	if cfg.useStrength {
		return math.Pow(rec.Strength, cfg.strengthExp) / rec.Length
	}
	return 1.0 / rec.Length
}

// totalLinkLength sums the spatial length of every connected link.
func totalLinkLength(records []connect.Record) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Length
	}
	return total
}
