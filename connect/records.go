package connect

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gridflow/topology"
)

// Edges returns every connected pair in canonical orientation (From < To),
// ordered by (From, To) for deterministic export. Rebuilding a Matrix from
// the result with NewFromEdges yields an equivalent structure.
// Complexity: O(Size log Size).
func (m *Matrix) Edges() []Edge {
	edges := make([]Edge, 0, m.size)
	for i, row := range m.entries {
		for j, strength := range row {
			edges = append(edges, Edge{From: i, To: j, Strength: strength})
		}
	}
	sort.Slice(edges, func(a, b int) bool {
		if edges[a].From != edges[b].From {
			return edges[a].From < edges[b].From
		}
		return edges[a].To < edges[b].To
	})
	return edges
}

// CoordLookup resolves a flat node index to its native coordinates.
type CoordLookup func(index int) ([]float64, error)

// DistanceRecords pairs every connected edge with the spatial length of its
// link under space, resolving endpoint coordinates through coordsAt. Used
// for export only; the solver computes its own conductances.
// Complexity: O(Size · d).
func (m *Matrix) DistanceRecords(space topology.Space, coordsAt CoordLookup) ([]Record, error) {
	edges := m.Edges()
	records := make([]Record, 0, len(edges))
	for _, e := range edges {
		from, err := coordsAt(e.From)
		if err != nil {
			return nil, fmt.Errorf("connect: resolving node %d: %w", e.From, err)
		}
		to, err := coordsAt(e.To)
		if err != nil {
			return nil, fmt.Errorf("connect: resolving node %d: %w", e.To, err)
		}
		length, err := space.Distance(from, to)
		if err != nil {
			return nil, fmt.Errorf("connect: link %d→%d: %w", e.From, e.To, err)
		}
		records = append(records, Record{
			From:     e.From,
			To:       e.To,
			Strength: e.Strength,
			Length:   length,
		})
	}
	return records, nil
}
