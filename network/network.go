package network

import (
	"fmt"

	"github.com/katalvlaran/gridflow/connect"
)

// Network aggregates consumer and branch-point coordinates, the resource
// set, and the connectivity matrix over their shared flat index space.
// Constructed once per simulation run; never resized.
type Network struct {
	consumers    []Coordinates
	branchPoints []Coordinates
	resources    []Resource
	conn         *connect.Matrix

	dim int

	// role boundaries, computed once
	nConsumers int
	nLoads     int // consumers + branch points
	nNodes     int

	// potentials is the append-only accumulator of solved consumer
	// potentials, one value per consumer per successful demand step.
	potentials []float64
}

// New validates the dimensional and sizing invariants and assembles the
// Network. Validation failures: ErrNoConsumers, ErrNoResources,
// ErrDimensionMismatch (any coordinate differing in length from the first
// consumer's), ErrSizeMismatch (connectivity node count vs. total nodes) and
// ErrBoundaryMismatch (connectable boundary vs. load count).
func New(consumers, branchPoints []Coordinates, resources []Resource, conn *connect.Matrix) (*Network, error) {
	if len(consumers) == 0 {
		return nil, ErrNoConsumers
	}
	if len(resources) == 0 {
		return nil, ErrNoResources
	}

	dim := consumers[0].Dim()
	for i, c := range consumers {
		if c.Dim() != dim {
			return nil, fmt.Errorf("%w: consumer %d has %d ordinates, want %d",
				ErrDimensionMismatch, i, c.Dim(), dim)
		}
	}
	for i, b := range branchPoints {
		if b.Dim() != dim {
			return nil, fmt.Errorf("%w: branch point %d has %d ordinates, want %d",
				ErrDimensionMismatch, i, b.Dim(), dim)
		}
	}
	for i, r := range resources {
		if r.Dim() != dim {
			return nil, fmt.Errorf("%w: resource %d has %d ordinates, want %d",
				ErrDimensionMismatch, i, r.Dim(), dim)
		}
	}

	nLoads := len(consumers) + len(branchPoints)
	nNodes := nLoads + len(resources)
	if conn == nil || conn.Nodes() != nNodes {
		got := 0
		if conn != nil {
			got = conn.Nodes()
		}
		return nil, fmt.Errorf("%w: connectivity spans %d nodes, network has %d",
			ErrSizeMismatch, got, nNodes)
	}
	if conn.Connectables() != nLoads {
		return nil, fmt.Errorf("%w: boundary %d, loads %d",
			ErrBoundaryMismatch, conn.Connectables(), nLoads)
	}

	return &Network{
		consumers:    consumers,
		branchPoints: branchPoints,
		resources:    resources,
		conn:         conn,
		dim:          dim,
		nConsumers:   len(consumers),
		nLoads:       nLoads,
		nNodes:       nNodes,
	}, nil
}

// Dim returns the shared coordinate dimensionality.
func (n *Network) Dim() int { return n.dim }

// NumConsumers returns the consumer count (indices [0, NumConsumers)).
func (n *Network) NumConsumers() int { return n.nConsumers }

// NumBranchPoints returns the branch-point count.
func (n *Network) NumBranchPoints() int { return n.nLoads - n.nConsumers }

// NumResources returns the resource count.
func (n *Network) NumResources() int { return n.nNodes - n.nLoads }

// NumLoads returns consumers + branch points, the boundary below which
// potentials are solved rather than fixed.
func (n *Network) NumLoads() int { return n.nLoads }

// NumNodes returns the total node count across all three roles.
func (n *Network) NumNodes() int { return n.nNodes }

// Consumers returns the consumer coordinates (shared slice; treat as read-only).
func (n *Network) Consumers() []Coordinates { return n.consumers }

// BranchPoints returns the branch-point coordinates (shared slice; treat as read-only).
func (n *Network) BranchPoints() []Coordinates { return n.branchPoints }

// Resources returns the resource set (shared slice; treat as read-only).
func (n *Network) Resources() []Resource { return n.resources }

// Connectivity returns the connectivity matrix.
func (n *Network) Connectivity() *connect.Matrix { return n.conn }

// RoleOf resolves a flat node index into its role and the index local to
// that role. Returns ErrNodeIndex for indices outside [0, NumNodes).
// Complexity: O(1).
func (n *Network) RoleOf(index int) (Role, int, error) {
	switch {
	case index < 0 || index >= n.nNodes:
		return 0, 0, fmt.Errorf("%w: %d of %d", ErrNodeIndex, index, n.nNodes)
	case index < n.nConsumers:
		return RoleConsumer, index, nil
	case index < n.nLoads:
		return RoleBranchPoint, index - n.nConsumers, nil
	default:
		return RoleResource, index - n.nLoads, nil
	}
}

// CoordsAt returns the native coordinates of the node at a flat index,
// whatever its role. Returns ErrNodeIndex for out-of-range indices.
// Complexity: O(d).
func (n *Network) CoordsAt(index int) ([]float64, error) {
	role, local, err := n.RoleOf(index)
	if err != nil {
		return nil, err
	}
	switch role {
	case RoleConsumer:
		return n.consumers[local].Coords(), nil
	case RoleBranchPoint:
		return n.branchPoints[local].Coords(), nil
	default:
		return n.resources[local].Location(), nil
	}
}

// AppendPotentials records solved consumer potentials for one demand step.
// The accumulator is a reporting side channel; the solver never reads it.
func (n *Network) AppendPotentials(vs ...float64) {
	n.potentials = append(n.potentials, vs...)
}

// Potentials returns a copy of the accumulated consumer potentials in
// append order.
func (n *Network) Potentials() []float64 {
	return append([]float64(nil), n.potentials...)
}

// ResetPotentials clears the accumulator; called at the start of a run.
func (n *Network) ResetPotentials() {
	n.potentials = n.potentials[:0]
}
