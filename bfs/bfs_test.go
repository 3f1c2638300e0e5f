package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/bfs"
)

// adj is a minimal bfs.Graph backed by neighbor slices.
type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

// cycle4 is 0–1–2–3–0.
var cycle4 = adj{{1, 3}, {0, 2}, {1, 3}, {0, 2}}

// chain returns 0–1–…–(n-1).
func chain(n int) adj {
	g := make(adj, n)
	for i := 0; i+1 < n; i++ {
		g[i] = append(g[i], i+1)
		g[i+1] = append(g[i+1], i)
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(cycle4, 7)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(cycle4, 0, bfs.WithMaxVisits(-2))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_CycleOrder(t *testing.T) {
	res, err := bfs.BFS(cycle4, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
}

func TestBFS_Disconnected(t *testing.T) {
	g := adj{{1}, {0}, {3}, {2}}
	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, res.Order)
}

func TestBFS_MaxVisits(t *testing.T) {
	g := chain(10)
	res, err := bfs.BFS(g, 0, bfs.WithMaxVisits(4))
	require.ErrorIs(t, err, bfs.ErrVisitLimit)
	require.Len(t, res.Order, 4)

	_, err = bfs.BFS(g, 0, bfs.WithMaxVisits(10))
	require.NoError(t, err)
}

func TestBFS_FilterNeighbor(t *testing.T) {
	// skip 1→2, so 2 is only reached through 3
	res, err := bfs.BFS(cycle4, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, res.Order)

	// drop vertex 3 entirely: 2 becomes reachable only via 1, which is kept
	res, err = bfs.BFS(cycle4, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestConnected(t *testing.T) {
	members := map[int]bool{0: true, 1: true, 2: true}
	in := func(v int) bool { return members[v] }

	ok, err := bfs.Connected(cycle4, in, 0, 3, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// {0, 2} is split once 1 and 3 are excluded
	members = map[int]bool{0: true, 2: true}
	ok, err = bfs.Connected(cycle4, in, 0, 2, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = bfs.Connected(cycle4, in, 0, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	members = map[int]bool{0: true, 1: true, 2: true, 3: true}
	_, err = bfs.Connected(cycle4, in, 0, 4, 2)
	require.ErrorIs(t, err, bfs.ErrVisitLimit)
}

func TestCountComponents(t *testing.T) {
	g := chain(7)
	members := map[int]bool{0: true, 1: true, 3: true, 5: true, 6: true}
	in := func(v int) bool { return members[v] }
	all := []int{0, 1, 2, 3, 4, 5, 6}

	n, err := bfs.CountComponents(g, all, in, 0)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	n, err = bfs.CountComponents(g, nil, in, 0)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = bfs.CountComponents(g, all, in, 3)
	require.ErrorIs(t, err, bfs.ErrVisitLimit)

	n, err = bfs.CountComponents(g, all, in, 5)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
