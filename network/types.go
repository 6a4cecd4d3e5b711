// Package network defines core types and sentinel errors for the
// network subpackage of github.com/katalvlaran/gridflow.
package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridflow/topology"
)

// Sentinel errors for network construction and access.
var (
	// ErrEmptyCoordinates indicates a zero-length coordinate vector.
	ErrEmptyCoordinates = errors.New("network: coordinates must have at least one ordinate")
	// ErrRangeCount indicates a range list whose length differs from the
	// coordinate vector.
	ErrRangeCount = errors.New("network: number of ranges differs from number of ordinates")
	// ErrDimensionMismatch indicates node coordinates of differing dimensionality.
	ErrDimensionMismatch = errors.New("network: all node coordinates must share one dimensionality")
	// ErrNoConsumers indicates a network without consumers.
	ErrNoConsumers = errors.New("network: at least one consumer is required")
	// ErrNoResources indicates a network without resources.
	ErrNoResources = errors.New("network: at least one resource is required")
	// ErrSizeMismatch indicates a connectivity matrix whose node count
	// differs from the network's total node count.
	ErrSizeMismatch = errors.New("network: connectivity size must equal the total node count")
	// ErrBoundaryMismatch indicates a connectivity boundary that does not
	// separate loads from resources.
	ErrBoundaryMismatch = errors.New("network: connectable boundary must equal the load count")
	// ErrNodeIndex indicates a flat node index outside [0, NumNodes).
	ErrNodeIndex = errors.New("network: node index out of range")
)

// Coordinates is an immutable point in a topology's native parameterization,
// together with advisory per-ordinate ranges. Owned exclusively by the node
// that holds it.
type Coordinates struct {
	coords []float64
	ranges []topology.Interval
}

// NewCoordinates validates and copies the ordinates and their ranges.
// Returns ErrEmptyCoordinates for a zero-length vector, and ErrRangeCount
// when the two lengths differ.
func NewCoordinates(coords []float64, ranges []topology.Interval) (Coordinates, error) {
	if len(coords) == 0 {
		return Coordinates{}, ErrEmptyCoordinates
	}
	if len(coords) != len(ranges) {
		return Coordinates{}, fmt.Errorf("%w: %d ranges for %d ordinates",
			ErrRangeCount, len(ranges), len(coords))
	}
	return Coordinates{
		coords: append([]float64(nil), coords...),
		ranges: append([]topology.Interval(nil), ranges...),
	}, nil
}

// Coords returns a copy of the ordinates.
func (c Coordinates) Coords() []float64 {
	return append([]float64(nil), c.coords...)
}

// Ranges returns a copy of the advisory per-ordinate ranges.
func (c Coordinates) Ranges() []topology.Interval {
	return append([]topology.Interval(nil), c.ranges...)
}

// Dim returns the dimensionality of the point.
func (c Coordinates) Dim() int { return len(c.coords) }

// Resource is a power source: a location plus a fixed potential (source
// voltage) that the solver never adjusts.
type Resource struct {
	location Coordinates
	voltage  float64
}

// NewResource binds a location to its fixed source voltage.
func NewResource(location Coordinates, voltage float64) Resource {
	return Resource{location: location, voltage: voltage}
}

// Location returns a copy of the resource's native coordinates.
func (r Resource) Location() []float64 { return r.location.Coords() }

// Voltage returns the fixed source voltage.
func (r Resource) Voltage() float64 { return r.voltage }

// Dim returns the dimensionality of the resource's location.
func (r Resource) Dim() int { return r.location.Dim() }

// Role tags the three disjoint node kinds multiplexed into the flat index
// space.
type Role int

const (
	// RoleConsumer indexes [0, NumConsumers).
	RoleConsumer Role = iota
	// RoleBranchPoint indexes [NumConsumers, NumLoads).
	RoleBranchPoint
	// RoleResource indexes [NumLoads, NumNodes).
	RoleResource
)

// String returns the role name for diagnostics.
func (r Role) String() string {
	switch r {
	case RoleConsumer:
		return "consumer"
	case RoleBranchPoint:
		return "branch point"
	case RoleResource:
		return "resource"
	default:
		return "unknown"
	}
}
