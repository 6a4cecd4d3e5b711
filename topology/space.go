package topology

import (
	"math"

	"golang.org/x/exp/rand"
)

// DefaultSeed seeds the random source when none is supplied, so that two
// Spaces built from the same configuration sample the same coordinates.
const DefaultSeed uint64 = 1

// Option configures a Space during construction.
type Option func(*Space)

// WithPlaneExtents sets the maximum ordinate per dimension for Plane spaces.
// The admissible range in dimension d is [0, extents[d]].
func WithPlaneExtents(extents ...float64) Option {
	return func(s *Space) {
		s.extents = append([]float64(nil), extents...)
	}
}

// WithSphereRadius sets the ball/shell radius for Sphere and SphereSurface.
func WithSphereRadius(r float64) Option {
	return func(s *Space) { s.radius = r }
}

// WithSeed replaces the default random source with one seeded by seed.
// Use a fixed seed for reproducible coordinate sampling.
func WithSeed(seed uint64) Option {
	return func(s *Space) { s.src = rand.NewSource(seed) }
}

// WithSource injects an explicit random source, sharing it with other
// consumers (e.g. random connectivity generation) for a single seeded stream.
func WithSource(src rand.Source) Option {
	return func(s *Space) { s.src = src }
}

// Space is an immutable geometry: a Kind plus its numeric parameters and the
// random source used by Sample. The zero Space is not usable; construct with
// NewSpace.
type Space struct {
	kind    Kind
	extents []float64 // Plane: admissible maximum per dimension
	radius  float64   // Sphere / SphereSurface
	src     rand.Source
}

// NewSpace validates the geometry parameters for kind and returns the Space.
// Plane requires at least one positive extent; Sphere and SphereSurface
// require a positive radius. Returns ErrUnknownKind or ErrBadExtents.
func NewSpace(kind Kind, opts ...Option) (Space, error) {
	s := Space{kind: kind}
	for _, opt := range opts {
		opt(&s)
	}
	if s.src == nil {
		s.src = rand.NewSource(DefaultSeed)
	}

	switch kind {
	case Plane:
		if len(s.extents) == 0 {
			return Space{}, ErrBadExtents
		}
		for _, e := range s.extents {
			if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
				return Space{}, ErrBadExtents
			}
		}
	case Sphere, SphereSurface:
		if s.radius <= 0 || math.IsNaN(s.radius) || math.IsInf(s.radius, 0) {
			return Space{}, ErrBadExtents
		}
	default:
		return Space{}, ErrUnknownKind
	}

	return s, nil
}

// Kind returns the geometry kind.
func (s Space) Kind() Kind { return s.kind }

// Radius returns the sphere radius (zero for Plane).
func (s Space) Radius() float64 { return s.radius }

// PlaneExtents returns a copy of the per-dimension maxima (nil for spheres).
func (s Space) PlaneExtents() []float64 {
	if s.extents == nil {
		return nil
	}
	return append([]float64(nil), s.extents...)
}

// IsCartesian reports whether native coordinates in this space are already
// cartesian, i.e. no conversion is needed before Euclidean arithmetic.
func (s Space) IsCartesian() bool { return s.kind == Plane }

// OrdinateRanges returns the admissible range per native ordinate:
// [0, extent_d] for Plane; radius, colatitude and longitude ranges for the
// sphere kinds. On the surface the radial range is degenerate at the radius.
// Complexity: O(d).
func (s Space) OrdinateRanges() []Interval {
	switch s.kind {
	case Plane:
		ranges := make([]Interval, len(s.extents))
		for i, e := range s.extents {
			ranges[i] = Interval{Min: 0, Max: e}
		}
		return ranges
	case Sphere:
		return []Interval{
			{Min: 0, Max: s.radius},
			{Min: 0, Max: math.Pi},
			{Min: 0, Max: 2 * math.Pi},
		}
	case SphereSurface:
		// Every point shares the radial ordinate.
		return []Interval{
			{Min: s.radius, Max: s.radius},
			{Min: 0, Max: math.Pi},
			{Min: 0, Max: 2 * math.Pi},
		}
	default:
		return nil
	}
}

// Sample draws one native coordinate vector uniformly from OrdinateRanges.
// Complexity: O(d).
func (s Space) Sample() []float64 {
	ranges := s.OrdinateRanges()
	coords := make([]float64, len(ranges))
	for i, iv := range ranges {
		coords[i] = iv.Sample(s.src)
	}
	return coords
}

// ToCartesian converts a native coordinate vector to cartesian coordinates.
// For Plane this is a copy. For the sphere kinds the radial component is
// first wrapped into [0, radius] if it exceeds the radius, then the
// product-of-sines expansion is applied:
//
//	cart[k] = r·cos(θ_{k+1})·Π sin(θ_1..θ_k),  cart[n-1] = r·Π sin(all θ)
//
// Complexity: O(d).
func (s Space) ToCartesian(coords []float64) ([]float64, error) {
	switch s.kind {
	case Plane:
		return append([]float64(nil), coords...), nil
	case Sphere, SphereSurface:
		if len(coords) < 2 {
			return nil, ErrDimensionMismatch
		}
		r := coords[0]
		if r > s.radius {
			var err error
			if r, err = Wrap(r, s.radius); err != nil {
				return nil, err
			}
		}
		carts := make([]float64, len(coords))
		pisin := 1.0
		for i := 1; i < len(coords); i++ {
			carts[i-1] = r * math.Cos(coords[i]) * pisin
			pisin *= math.Sin(coords[i])
		}
		carts[len(coords)-1] = r * pisin
		return carts, nil
	default:
		return nil, ErrUnknownKind
	}
}

// FromCartesian converts cartesian coordinates to the space's native
// parameterization. For Plane this is a copy. For the sphere kinds the input
// must be three-dimensional; the radial ordinate is pinned to the configured
// radius, the longitude is atan2(y, x) and the final angle is derived from z.
// Complexity: O(d).
func (s Space) FromCartesian(carts []float64) ([]float64, error) {
	switch s.kind {
	case Plane:
		return append([]float64(nil), carts...), nil
	case Sphere, SphereSurface:
		if len(carts) != 3 {
			return nil, ErrSurfaceDimension
		}
		polar := make([]float64, 3)
		polar[0] = s.radius
		polar[1] = math.Atan2(carts[1], carts[0])
		polar[2] = math.Acos(carts[2]/s.radius) - math.Pi/2
		return polar, nil
	default:
		return nil, ErrUnknownKind
	}
}
