package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridflow/connect"
	"github.com/katalvlaran/gridflow/network"
	"github.com/katalvlaran/gridflow/topology"
)

const noLink = 0.0

func planeRanges(dim int) []topology.Interval {
	ranges := make([]topology.Interval, dim)
	for i := range ranges {
		ranges[i] = topology.Interval{Min: 0, Max: 10}
	}
	return ranges
}

func point(t *testing.T, ords ...float64) network.Coordinates {
	t.Helper()
	c, err := network.NewCoordinates(ords, planeRanges(len(ords)))
	require.NoError(t, err)
	return c
}

func fullMatrix(t *testing.T, nodes, connectables int) *connect.Matrix {
	t.Helper()
	m, err := connect.NewRandom(nodes, connectables, 0, topology.Interval{Min: 1, Max: 1}, noLink, connect.WithSeed(1))
	require.NoError(t, err)
	return m
}

func TestNewCoordinates_Validation(t *testing.T) {
	_, err := network.NewCoordinates(nil, nil)
	require.ErrorIs(t, err, network.ErrEmptyCoordinates)

	_, err = network.NewCoordinates([]float64{1, 2}, planeRanges(3))
	require.ErrorIs(t, err, network.ErrRangeCount)

	c, err := network.NewCoordinates([]float64{1, 2}, planeRanges(2))
	require.NoError(t, err)
	got := c.Coords()
	got[0] = 99
	require.Equal(t, []float64{1, 2}, c.Coords(), "Coords must not alias internal storage")
}

func TestNew_Validation(t *testing.T) {
	consumers := []network.Coordinates{point(t, 0, 0)}
	resources := []network.Resource{network.NewResource(point(t, 1, 0), 10)}

	t.Run("NoConsumers", func(t *testing.T) {
		_, err := network.New(nil, nil, resources, fullMatrix(t, 1, 0))
		require.ErrorIs(t, err, network.ErrNoConsumers)
	})

	t.Run("NoResources", func(t *testing.T) {
		_, err := network.New(consumers, nil, nil, fullMatrix(t, 1, 1))
		require.ErrorIs(t, err, network.ErrNoResources)
	})

	t.Run("ConsumerDimensionDrift", func(t *testing.T) {
		mixed := []network.Coordinates{point(t, 0, 0), point(t, 0, 0, 0)}
		_, err := network.New(mixed, nil, resources, fullMatrix(t, 3, 2))
		require.ErrorIs(t, err, network.ErrDimensionMismatch)
	})

	t.Run("ResourceDimensionDrift", func(t *testing.T) {
		badRes := []network.Resource{network.NewResource(point(t, 1, 0, 0), 10)}
		_, err := network.New(consumers, nil, badRes, fullMatrix(t, 2, 1))
		require.ErrorIs(t, err, network.ErrDimensionMismatch)
	})

	t.Run("SizeMismatch", func(t *testing.T) {
		_, err := network.New(consumers, nil, resources, fullMatrix(t, 5, 1))
		require.ErrorIs(t, err, network.ErrSizeMismatch)
	})

	t.Run("BoundaryMismatch", func(t *testing.T) {
		_, err := network.New(consumers, nil, resources, fullMatrix(t, 2, 2))
		require.ErrorIs(t, err, network.ErrBoundaryMismatch)
	})
}

func TestRoleOf_And_CoordsAt(t *testing.T) {
	consumers := []network.Coordinates{point(t, 0, 0), point(t, 1, 1)}
	branches := []network.Coordinates{point(t, 2, 2)}
	resources := []network.Resource{network.NewResource(point(t, 3, 3), 5)}

	net, err := network.New(consumers, branches, resources, fullMatrix(t, 4, 3))
	require.NoError(t, err)

	require.Equal(t, 2, net.NumConsumers())
	require.Equal(t, 1, net.NumBranchPoints())
	require.Equal(t, 1, net.NumResources())
	require.Equal(t, 3, net.NumLoads())
	require.Equal(t, 4, net.NumNodes())

	cases := []struct {
		index int
		role  network.Role
		local int
	}{
		{0, network.RoleConsumer, 0},
		{1, network.RoleConsumer, 1},
		{2, network.RoleBranchPoint, 0},
		{3, network.RoleResource, 0},
	}
	for _, tc := range cases {
		role, local, err := net.RoleOf(tc.index)
		require.NoError(t, err)
		require.Equal(t, tc.role, role, "index %d", tc.index)
		require.Equal(t, tc.local, local, "index %d", tc.index)
	}

	_, _, err = net.RoleOf(4)
	require.ErrorIs(t, err, network.ErrNodeIndex)
	_, _, err = net.RoleOf(-1)
	require.ErrorIs(t, err, network.ErrNodeIndex)

	coords, err := net.CoordsAt(3)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3}, coords)
}

func TestPotentialsAccumulator(t *testing.T) {
	consumers := []network.Coordinates{point(t, 0, 0)}
	resources := []network.Resource{network.NewResource(point(t, 1, 0), 10)}
	net, err := network.New(consumers, nil, resources, fullMatrix(t, 2, 1))
	require.NoError(t, err)

	require.Empty(t, net.Potentials())
	net.AppendPotentials(9.0)
	net.AppendPotentials(8.9, 8.8)
	require.Equal(t, []float64{9.0, 8.9, 8.8}, net.Potentials())

	net.ResetPotentials()
	require.Empty(t, net.Potentials())
}

func TestExportTables(t *testing.T) {
	space, err := topology.NewSpace(topology.Plane, topology.WithPlaneExtents(10, 10))
	require.NoError(t, err)

	consumers := []network.Coordinates{point(t, 0, 0)}
	branches := []network.Coordinates{point(t, 3, 4)}
	resources := []network.Resource{network.NewResource(point(t, 3, 0), 12)}

	grid := [][]float64{
		{noLink, 2, noLink},
		{2, noLink, 1},
		{noLink, 1, noLink},
	}
	m, err := connect.NewFromGrid(grid, noLink, 2)
	require.NoError(t, err)

	net, err := network.New(consumers, branches, resources, m)
	require.NoError(t, err)

	consumerTable, err := net.ConsumerTable(space)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "x", "y"}, consumerTable.Header)
	require.Equal(t, [][]string{{"1", "0", "0"}}, consumerTable.Rows)

	branchTable, err := net.BranchPointTable(space)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"2", "3", "4"}}, branchTable.Rows)

	resourceTable, err := net.ResourceTable(space)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "x", "y", "potential"}, resourceTable.Header)
	require.Equal(t, [][]string{{"3", "3", "0", "12"}}, resourceTable.Rows)

	linkTable, err := net.LinkTable(space)
	require.NoError(t, err)
	require.Equal(t, []string{"from", "to", "strength", "length"}, linkTable.Header)
	require.Equal(t, [][]string{
		{"1", "2", "2", "5"},
		{"2", "3", "1", "4"},
	}, linkTable.Rows)
}
