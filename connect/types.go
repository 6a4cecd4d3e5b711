// Package connect defines core types and sentinel errors for the
// connect subpackage of github.com/katalvlaran/gridflow.
package connect

import (
	"errors"
	"fmt"
)

// Sentinel errors for connectivity construction and access.
var (
	// ErrEmptyMatrix indicates a requested node count of zero.
	ErrEmptyMatrix = errors.New("connect: matrix must have at least one node")
	// ErrNotSquare indicates a grid whose row count differs from its column count.
	ErrNotSquare = errors.New("connect: matrix must be square")
	// ErrRaggedRows indicates grid rows of differing lengths.
	ErrRaggedRows = errors.New("connect: all rows must have the same number of columns")
	// ErrIndexOutOfBounds indicates a node index outside [0, Nodes).
	ErrIndexOutOfBounds = errors.New("connect: node index out of bounds")
	// ErrReflexiveAccess indicates access to a diagonal cell of the
	// non-reflexive matrix.
	ErrReflexiveAccess = errors.New("connect: reflexive access in non-reflexive matrix")
	// ErrBadProbability indicates a no-connection probability outside [0,1].
	ErrBadProbability = errors.New("connect: probability must be in [0,1]")
	// ErrBadConnectables indicates a connectable boundary outside [0, Nodes].
	ErrBadConnectables = errors.New("connect: connectable count out of range")
	// ErrForbiddenPair indicates an explicit edge between two nodes beyond
	// the connectable boundary (two resources).
	ErrForbiddenPair = errors.New("connect: nodes beyond the connectable boundary cannot be linked")
)

// Edge is one symmetric connection in canonical orientation (From < To),
// using 0-based flat node indices.
type Edge struct {
	From, To int
	Strength float64
}

/// Record is one export row for a connected pair: the canonical edge plus the
// spatial length of the link under the active topology.
type Record struct {
	From, To int
	Strength float64
	Length   float64
}

// Matrix is a symmetric, non-reflexive connectivity structure over a flat
// node index space. Immutable after construction.
type Matrix struct {
	// entries holds only connected pairs, keyed row→col with row < col.
	entries map[int]map[int]float64

	nodes        int     // rows == cols
	connectables int     // pairs with both indices ≥ connectables stay disconnected
	sentinel     float64 // strength value meaning "not connected"
	size         int64   // distinct connected pairs, tracked incrementally
}

// Nodes returns the number of rows (== columns).
func (m *Matrix) Nodes() int { return m.nodes }

// Connectables returns the boundary index: nodes at or beyond it never
// connect to each other.
func (m *Matrix) Connectables() int { return m.connectables }

// Sentinel returns the no-connection placeholder value.
func (m *Matrix) Sentinel() float64 { return m.sentinel }

// Size returns the number of distinct connected (unordered) pairs.
// This is not Nodes²; the matrix is symmetric and non-reflexive.
func (m *Matrix) Size() int64 { return m.size }

// EntryAt returns the strength stored for the unordered pair {i,j}, or the
// sentinel when the pair is not connected. Index order is normalized, so
// EntryAt(i,j) == EntryAt(j,i). Diagonal access and out-of-range indices are
// contract violations: ErrReflexiveAccess and ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Matrix) EntryAt(i, j int) (float64, error) {
	if i < 0 || i >= m.nodes {
		return 0, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfBounds, i, m.nodes)
	}
	if j < 0 || j >= m.nodes {
		return 0, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfBounds, j, m.nodes)
	}
	if i == j {
		return 0, fmt.Errorf("%w: index %d", ErrReflexiveAccess, i)
	}
	if i > j {
		i, j = j, i
	}
	if row, ok := m.entries[i]; ok {
		if v, ok := row[j]; ok {
			return v, nil
		}
	}
	return m.sentinel, nil
}

// Connected reports whether i and j are directly linked, i.e. their entry
// differs from the sentinel. Shares EntryAt's error contract.
// Complexity: O(1).
func (m *Matrix) Connected(i, j int) (bool, error) {
	v, err := m.EntryAt(i, j)
	if err != nil {
		return false, err
	}
	return v != m.sentinel, nil
}

// set stores strength for the canonical pair (i<j assumed, strength not the
// sentinel) and bumps the incremental pair count.
func (m *Matrix) set(i, j int, strength float64) {
	row, ok := m.entries[i]
	if !ok {
		row = make(map[int]float64)
		m.entries[i] = row
	}
	if _, exists := row[j]; !exists {
		m.size++
	}
	row[j] = strength
}
