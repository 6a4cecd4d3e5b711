package topology_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/gridflow/topology"
)

// TestWrapProperties asserts the algebraic contract of Wrap over arbitrary
// finite inputs: the result always lands in [0, limit) and wrapping is
// idempotent.
func TestWrapProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("wrap lands in [0, limit)", prop.ForAll(
		func(n, limit float64) bool {
			w, err := topology.Wrap(n, limit)
			if err != nil {
				return false
			}
			return w >= 0 && w < limit
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(1e-3, 1e6),
	))

	properties.Property("wrap is idempotent", prop.ForAll(
		func(n, limit float64) bool {
			once, err := topology.Wrap(n, limit)
			if err != nil {
				return false
			}
			twice, err := topology.Wrap(once, limit)
			if err != nil {
				return false
			}
			return math.Abs(once-twice) <= 1e-9
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(1e-3, 1e6),
	))

	properties.TestingRun(t)
}

// TestDistanceProperties asserts metric symmetry and identity for the planar
// space over arbitrary points.
func TestDistanceProperties(t *testing.T) {
	space, err := topology.NewSpace(topology.Plane, topology.WithPlaneExtents(1e3, 1e3))
	if err != nil {
		t.Fatalf("NewSpace error: %v", err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("distance is symmetric and non-negative", prop.ForAll(
		func(x1, y1, x2, y2 float64) bool {
			a, b := []float64{x1, y1}, []float64{x2, y2}
			dab, err := space.Distance(a, b)
			if err != nil {
				return false
			}
			dba, err := space.Distance(b, a)
			if err != nil {
				return false
			}
			return dab >= 0 && math.Abs(dab-dba) <= 1e-9
		},
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("distance to self is zero", prop.ForAll(
		func(x, y float64) bool {
			p := []float64{x, y}
			d, err := space.Distance(p, p)
			return err == nil && d == 0
		},
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.TestingRun(t)
}
