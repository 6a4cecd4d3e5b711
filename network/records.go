package network

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gridflow/topology"
)

// Table is one export: a fixed header and rows that must all match it.
// Writers enforce the header contract; see csvio.WriteTable.
type Table struct {
	Header []string
	Rows   [][]string
}

// coordHeader names cartesian coordinate columns: x | x,y | x,y,z for up to
// three dimensions, x1..xN beyond.
func coordHeader(dim int) []string {
	switch dim {
	case 1:
		return []string{"x"}
	case 2:
		return []string{"x", "y"}
	case 3:
		return []string{"x", "y", "z"}
	default:
		header := make([]string, dim)
		for i := range header {
			header[i] = "x" + strconv.Itoa(i+1)
		}
		return header
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// coordRow renders a node id plus its cartesian coordinates.
func coordRow(id int, carts []float64) []string {
	row := make([]string, 0, len(carts)+1)
	row = append(row, strconv.Itoa(id))
	for _, c := range carts {
		row = append(row, formatFloat(c))
	}
	return row
}

// ConsumerTable exports consumer locations as cartesian coordinates with
// 1-based ids.
func (n *Network) ConsumerTable(space topology.Space) (Table, error) {
	t := Table{Header: append([]string{"id"}, coordHeader(n.dim)...)}
	for i, c := range n.consumers {
		carts, err := space.ToCartesian(c.Coords())
		if err != nil {
			return Table{}, fmt.Errorf("network: consumer %d: %w", i, err)
		}
		t.Rows = append(t.Rows, coordRow(i+1, carts))
	}
	return t, nil
}

// BranchPointTable exports branch-point locations; ids continue after the
// consumers so the three tables share one id space.
func (n *Network) BranchPointTable(space topology.Space) (Table, error) {
	t := Table{Header: append([]string{"id"}, coordHeader(n.dim)...)}
	for i, b := range n.branchPoints {
		carts, err := space.ToCartesian(b.Coords())
		if err != nil {
			return Table{}, fmt.Errorf("network: branch point %d: %w", i, err)
		}
		t.Rows = append(t.Rows, coordRow(i+1+n.nConsumers, carts))
	}
	return t, nil
}

// ResourceTable exports resource locations and their fixed potentials; ids
// continue after consumers and branch points.
func (n *Network) ResourceTable(space topology.Space) (Table, error) {
	t := Table{Header: append(append([]string{"id"}, coordHeader(n.dim)...), "potential")}
	for i, r := range n.resources {
		carts, err := space.ToCartesian(r.Location())
		if err != nil {
			return Table{}, fmt.Errorf("network: resource %d: %w", i, err)
		}
		row := append(coordRow(i+1+n.nLoads, carts), formatFloat(r.Voltage()))
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LinkTable exports every connected pair with its strength and spatial
// length. Node ids are 1-based, matching the coordinate tables.
func (n *Network) LinkTable(space topology.Space) (Table, error) {
	records, err := n.conn.DistanceRecords(space, n.CoordsAt)
	if err != nil {
		return Table{}, err
	}
	t := Table{Header: []string{"from", "to", "strength", "length"}}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.From + 1),
			strconv.Itoa(r.To + 1),
			formatFloat(r.Strength),
			formatFloat(r.Length),
		})
	}
	return t, nil
}
