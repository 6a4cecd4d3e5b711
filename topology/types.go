// Package topology defines core types and sentinel errors for the
// topology subpackage of github.com/katalvlaran/gridflow.
package topology

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for topology operations.
var (
	// ErrUnknownKind indicates a Kind outside the supported set.
	ErrUnknownKind = errors.New("topology: unknown topology kind")
	// ErrDimensionMismatch indicates coordinate vectors of unequal or unusable length.
	ErrDimensionMismatch = errors.New("topology: coordinate dimension mismatch")
	// ErrSurfaceDimension indicates a sphere-surface coordinate without exactly
	// a radius and two angles.
	ErrSurfaceDimension = errors.New("topology: sphere surface requires three coordinates: radius and two angles")
	// ErrNonPositiveLimit indicates a wrap limit ≤ 0.
	ErrNonPositiveLimit = errors.New("topology: wrap limit must be positive")
	// ErrBadExtents indicates missing or non-positive geometry parameters.
	ErrBadExtents = errors.New("topology: geometry parameters must be positive and non-empty")
)

// Kind selects the geometry in which distances are computed.
type Kind int

const (
	// Plane places coordinates in an n-dimensional Euclidean space.
	Plane Kind = iota
	// Sphere places coordinates inside a ball of fixed radius; the first
	// ordinate is the radial component, the rest are angles.
	Sphere
	// SphereSurface places coordinates on the shell of a sphere; all points
	// share the radial component.
	SphereSurface
)

// String returns the configuration-file spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Sphere:
		return "sphere"
	case SphereSurface:
		return "sphere_surface"
	default:
		return "unknown"
	}
}

// ParseKind maps a configuration-file spelling onto a Kind.
// Returns ErrUnknownKind for anything outside the supported set.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "plane":
		return Plane, nil
	case "sphere":
		return Sphere, nil
	case "sphere_surface":
		return SphereSurface, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Interval is a closed range [Min, Max] for one ordinate. Ranges are advisory
// on stored coordinates but authoritative for uniform sampling.
type Interval struct {
	Min, Max float64
}

// Contains reports whether v lies within the closed interval.
// Complexity: O(1).
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// Sample draws a uniform value from the interval using src. A degenerate
// interval (Min == Max) returns Min without consuming randomness.
// Complexity: O(1).
func (iv Interval) Sample(src rand.Source) float64 {
	if iv.Min == iv.Max {
		return iv.Min
	}
	return distuv.Uniform{Min: iv.Min, Max: iv.Max, Src: src}.Rand()
}
