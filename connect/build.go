package connect

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/gridflow/topology"
)

// DefaultSeed seeds random connectivity generation when no source is given.
const DefaultSeed uint64 = 1

// Option configures the stochastic constructors.
type Option func(*buildConfig)

type buildConfig struct {
	src rand.Source
}

// WithSeed makes NewRandom reproducible for a fixed seed.
func WithSeed(seed uint64) Option {
	return func(c *buildConfig) { c.src = rand.NewSource(seed) }
}

// WithSource injects an explicit random source, typically shared with
// topology.Space sampling so one seed drives the whole network draw.
func WithSource(src rand.Source) Option {
	return func(c *buildConfig) { c.src = src }
}

func gatherOptions(opts ...Option) buildConfig {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(DefaultSeed)
	}
	return cfg
}

// newMatrix validates the shared constructor parameters and allocates the
// empty structure.
func newMatrix(nodes, connectables int, sentinel float64) (*Matrix, error) {
	if nodes <= 0 {
		return nil, ErrEmptyMatrix
	}
	if connectables < 0 || connectables > nodes {
		return nil, fmt.Errorf("%w: %d of %d nodes", ErrBadConnectables, connectables, nodes)
	}
	return &Matrix{
		entries:      make(map[int]map[int]float64),
		nodes:        nodes,
		connectables: connectables,
		sentinel:     sentinel,
	}, nil
}

// NewFromGrid builds a Matrix from a dense N×N grid. Only one of
// grid[i][j]/grid[j][i] needs to carry a strength; the mirror cell may hold
// the sentinel. Pairs in which both indices lie beyond the connectable
// boundary are stored as disconnected regardless of the grid content.
// Returns ErrEmptyMatrix, ErrNotSquare or ErrRaggedRows on malformed input.
// Complexity: O(N²) time, O(Size) memory.
func NewFromGrid(grid [][]float64, sentinel float64, connectables int) (*Matrix, error) {
	n := len(grid)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(grid[0]) != n {
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrNotSquare, n, len(grid[0]))
	}
	for i, row := range grid {
		if len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row 0 has %d columns, row %d has %d",
				ErrRaggedRows, len(grid[0]), i, len(row))
		}
	}

	m, err := newMatrix(n, connectables, sentinel)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if i >= connectables && j >= connectables {
				continue
			}
			entry := grid[i][j]
			if entry == sentinel {
				entry = grid[j][i]
			}
			if entry != sentinel {
				m.set(i, j, entry)
			}
		}
	}
	return m, nil
}

// NewRandom draws a matrix over nodes indices in which every admissible
// unordered pair is connected independently with probability
// 1 − pNoConnection, at a strength sampled uniformly from strengthRange.
// Pairs beyond the connectable boundary are forced disconnected. Supply
// WithSeed (or WithSource) for reproducible networks.
// Returns ErrEmptyMatrix, ErrBadConnectables or ErrBadProbability.
// Complexity: O(N²).
func NewRandom(nodes, connectables int, pNoConnection float64,
	strengthRange topology.Interval, sentinel float64, opts ...Option) (*Matrix, error) {

	if pNoConnection < 0 || pNoConnection > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, pNoConnection)
	}
	m, err := newMatrix(nodes, connectables, sentinel)
	if err != nil {
		return nil, err
	}

	cfg := gatherOptions(opts...)
	coin := distuv.Uniform{Min: 0, Max: 1, Src: cfg.src}

	for i := 0; i < nodes; i++ {
		for j := i + 1; j < nodes; j++ {
			if i >= connectables && j >= connectables {
				continue
			}
			if coin.Rand() < pNoConnection {
				continue
			}
			m.set(i, j, strengthRange.Sample(cfg.src))
		}
	}
	return m, nil
}

// NewFromEdges builds a Matrix from a sparse edge list over 0-based indices.
// Any pair not listed defaults to the sentinel; an edge listed in only one
// direction is mirrored, and when both orientations are listed the first
// occurrence wins. Edges whose strength equals the sentinel are ignored.
// Returns ErrIndexOutOfBounds, ErrReflexiveAccess, or ErrForbiddenPair for
// an edge linking two nodes beyond the connectable boundary.
// Complexity: O(E).
func NewFromEdges(edges []Edge, nodes int, sentinel float64, connectables int) (*Matrix, error) {
	m, err := newMatrix(nodes, connectables, sentinel)
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		if e.From < 0 || e.From >= nodes || e.To < 0 || e.To >= nodes {
			return nil, fmt.Errorf("%w: edge %d→%d of %d nodes", ErrIndexOutOfBounds, e.From, e.To, nodes)
		}
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge %d→%d", ErrReflexiveAccess, e.From, e.To)
		}
		i, j := e.From, e.To
		if i > j {
			i, j = j, i
		}
		if i >= connectables {
			return nil, fmt.Errorf("%w: edge %d→%d, boundary %d", ErrForbiddenPair, e.From, e.To, connectables)
		}
		if e.Strength == sentinel {
			continue
		}
		if _, exists := m.entries[i][j]; exists {
			continue // first listing wins
		}
		m.set(i, j, e.Strength)
	}
	return m, nil
}
