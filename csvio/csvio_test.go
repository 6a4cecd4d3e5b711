package csvio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridflow/connect"
	"github.com/katalvlaran/gridflow/csvio"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/powerflow"
	"github.com/katalvlaran/gridflow/topology"
)

func planeSpace(t *testing.T) topology.Space {
	t.Helper()
	s, err := topology.NewSpace(topology.Plane, topology.WithPlaneExtents(100, 100))
	require.NoError(t, err)
	return s
}

func TestReadCoords(t *testing.T) {
	in := "id,x,y\n1,0.5,1.5\n2,3,4\n"
	coords, err := csvio.ReadCoords(strings.NewReader(in), planeSpace(t), 2)
	require.NoError(t, err)
	require.Len(t, coords, 2)
	require.Equal(t, []float64{0.5, 1.5}, coords[0].Coords())
	require.Equal(t, []float64{3, 4}, coords[1].Coords())
}

func TestReadCoords_Errors(t *testing.T) {
	space := planeSpace(t)
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", csvio.ErrBadHeader},
		{"no ordinates", "id\n", csvio.ErrBadHeader},
		{"wrong first column", "node,x,y\n", csvio.ErrBadHeader},
		{"count mismatch", "id,x,y\n1,0,0\n", csvio.ErrCountMismatch},
		{"short row", "id,x,y\n1,0\n2,0,0\n", csvio.ErrBadRecord},
		{"not a number", "id,x,y\n1,zero,0\n2,0,0\n", csvio.ErrBadRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvio.ReadCoords(strings.NewReader(tc.in), space, 2)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadCoords_SphereConversion(t *testing.T) {
	space, err := topology.NewSpace(topology.Sphere, topology.WithSphereRadius(10))
	require.NoError(t, err)

	// A point on the positive y axis at the full radius.
	in := "id,x,y,z\n1,0,10,0\n"
	coords, err := csvio.ReadCoords(strings.NewReader(in), space, 1)
	require.NoError(t, err)
	require.Len(t, coords, 1)
	got := coords[0].Coords()
	require.InDelta(t, 10.0, got[0], 1e-12)
	require.InDelta(t, 1.5707963267948966, got[1], 1e-12) // atan2(10, 0)
	require.InDelta(t, 0.0, got[2], 1e-12)
}

func TestReadResources(t *testing.T) {
	in := "id,x,y,potential\n3,1,2,230\n"
	res, err := csvio.ReadResources(strings.NewReader(in), planeSpace(t), 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, []float64{1, 2}, res[0].Location())
	require.Equal(t, 230.0, res[0].Voltage())

	// voltage is accepted as the last-column name too.
	in = "id,x,y,voltage\n3,1,2,230\n"
	res, err = csvio.ReadResources(strings.NewReader(in), planeSpace(t), 1)
	require.NoError(t, err)
	require.Equal(t, 230.0, res[0].Voltage())

	_, err = csvio.ReadResources(strings.NewReader("id,x,y,watts\n3,1,2,230\n"), planeSpace(t), 1)
	require.ErrorIs(t, err, csvio.ErrBadHeader)
}

func TestReadEdges(t *testing.T) {
	in := "from,to,strength\n1,2,0.5\n2,3,4\n"
	edges, err := csvio.ReadEdges(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []connect.Edge{
		{From: 0, To: 1, Strength: 0.5},
		{From: 1, To: 2, Strength: 4},
	}, edges)

	_, err = csvio.ReadEdges(strings.NewReader("from,to,strength\n0,2,1\n"))
	require.ErrorIs(t, err, csvio.ErrBadRecord)

	_, err = csvio.ReadEdges(strings.NewReader("a,b,c\n"))
	require.ErrorIs(t, err, csvio.ErrBadHeader)
}

func TestWriteTable_HeaderContract(t *testing.T) {
	var buf bytes.Buffer
	tab := network.Table{
		Header: []string{"id", "x"},
		Rows:   [][]string{{"1", "2.5"}},
	}
	require.NoError(t, csvio.WriteTable(&buf, tab))
	require.Equal(t, "id,x\n1,2.5\n", buf.String())

	tab.Rows = append(tab.Rows, []string{"2"})
	require.ErrorIs(t, csvio.WriteTable(&bytes.Buffer{}, tab), csvio.ErrHeaderContract)
}

// TestWriteRows pins the grouped column layout: resource powers, then
// resource voltages, then consumer powers, then consumer voltages, each
// group numbered from 0.
func TestWriteRows(t *testing.T) {
	res := powerflow.Result{
		Rows: []powerflow.Row{{
			Current:         1,
			Length:          2,
			ResourcePower:   []float64{10},
			ResourceVoltage: []float64{10},
			ConsumerPower:   []float64{5, 4},
			ConsumerVoltage: []float64{9, 8},
			TotalPower:      9,
		}},
	}
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteRows(&buf, res, 1, 2))
	require.Equal(t,
		"current,length,power_at_resource_0,voltage_at_resource_0,"+
			"power_at_consumer_0,power_at_consumer_1,"+
			"voltage_at_consumer_0,voltage_at_consumer_1,total_power_consumption\n"+
			"1,2,10,10,5,4,9,8,9\n",
		buf.String())
}

func TestWriteRows_EmptyResultKeepsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvio.WriteRows(&buf, powerflow.Result{}, 2, 1))
	require.Equal(t,
		"current,length,power_at_resource_0,power_at_resource_1,"+
			"voltage_at_resource_0,voltage_at_resource_1,"+
			"power_at_consumer_0,voltage_at_consumer_0,total_power_consumption\n",
		buf.String())
}
