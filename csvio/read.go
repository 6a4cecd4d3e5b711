package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gridflow/connect"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/topology"
)

// Sentinel errors for format violations.
var (
	// ErrBadHeader indicates a header that does not match the expected layout.
	ErrBadHeader = errors.New("csvio: malformed header")
	// ErrBadRecord indicates a row whose width or values cannot be parsed.
	ErrBadRecord = errors.New("csvio: malformed record")
	// ErrCountMismatch indicates a file with the wrong number of rows.
	ErrCountMismatch = errors.New("csvio: row count mismatch")
)

// readAll parses the CSV stream and splits off the header.
func readAll(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // widths are checked per format
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: empty file", ErrBadHeader)
	}
	return records[0], records[1:], nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		out[i] = v
	}
	return out, nil
}

// toNative converts one on-disk cartesian row into the space's native
// coordinates, wrapped into a validated Coordinates value.
func toNative(space topology.Space, carts []float64) (network.Coordinates, error) {
	native, err := space.FromCartesian(carts)
	if err != nil {
		return network.Coordinates{}, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	return network.NewCoordinates(native, space.OrdinateRanges())
}

// ReadCoords reads a coordinate table (header: id plus cartesian ordinate
// columns) and converts each row into the space's native coordinates. When
// expect is non-negative the row count must match it exactly.
func ReadCoords(r io.Reader, space topology.Space, expect int) ([]network.Coordinates, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 || header[0] != "id" {
		return nil, fmt.Errorf("%w: want id plus ordinate columns, got %v", ErrBadHeader, header)
	}
	if expect >= 0 && len(rows) != expect {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrCountMismatch, expect, len(rows))
	}

	dim := len(header) - 1
	out := make([]network.Coordinates, 0, len(rows))
	for i, row := range rows {
		if len(row) != dim+1 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrBadRecord, i+1, len(row), dim+1)
		}
		carts, err := parseFloats(row[1:])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		c, err := toNative(space, carts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ReadResources reads a resource table: a coordinate table whose last
// column is the fixed source potential, named either voltage or potential.
func ReadResources(r io.Reader, space topology.Space, expect int) ([]network.Resource, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	last := len(header) - 1
	if len(header) < 3 || header[0] != "id" || (header[last] != "voltage" && header[last] != "potential") {
		return nil, fmt.Errorf("%w: want id, ordinates and voltage|potential, got %v", ErrBadHeader, header)
	}
	if expect >= 0 && len(rows) != expect {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrCountMismatch, expect, len(rows))
	}

	out := make([]network.Resource, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrBadRecord, i+1, len(row), len(header))
		}
		vals, err := parseFloats(row[1:])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		loc, err := toNative(space, vals[:len(vals)-1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, network.NewResource(loc, vals[len(vals)-1]))
	}
	return out, nil
}

// ReadEdges reads a link table (header: from,to,strength). Node ids are
// 1-based on disk and returned 0-based.
func ReadEdges(r io.Reader) ([]connect.Edge, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(header) < 3 || header[0] != "from" || header[1] != "to" || header[2] != "strength" {
		return nil, fmt.Errorf("%w: want from,to,strength, got %v", ErrBadHeader, header)
	}

	out := make([]connect.Edge, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want at least 3", ErrBadRecord, i+1, len(row))
		}
		from, err1 := strconv.Atoi(row[0])
		to, err2 := strconv.Atoi(row[1])
		strength, err3 := strconv.ParseFloat(row[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: row %d", ErrBadRecord, i+1)
		}
		if from < 1 || to < 1 {
			return nil, fmt.Errorf("%w: row %d: node ids are 1-based", ErrBadRecord, i+1)
		}
		out = append(out, connect.Edge{From: from - 1, To: to - 1, Strength: strength})
	}
	return out, nil
}
