package precinct_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/precinct"
)

// ring builds A–B–C–D–A with population 100 each.
func ring(t *testing.T) *precinct.Graph {
	t.Helper()
	b := precinct.NewBuilder()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, b.AddUnit(precinct.Unit{ID: id, Population: 100}))
	}
	require.NoError(t, b.AddEdge("A", "B"))
	require.NoError(t, b.AddEdge("B", "C"))
	require.NoError(t, b.AddEdge("C", "D"))
	require.NoError(t, b.AddEdge("D", "A"))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuilder_Errors(t *testing.T) {
	b := precinct.NewBuilder()
	require.ErrorIs(t, b.AddUnit(precinct.Unit{}), precinct.ErrEmptyUnitID)
	require.ErrorIs(t, b.AddUnit(precinct.Unit{ID: "x", Population: -1}), precinct.ErrNegativeCount)
	require.NoError(t, b.AddUnit(precinct.Unit{ID: "x"}))
	require.ErrorIs(t, b.AddUnit(precinct.Unit{ID: "x"}), precinct.ErrDuplicateUnit)
	require.ErrorIs(t, b.AddEdge("x", "y"), precinct.ErrUnknownUnit)
	require.ErrorIs(t, b.AddEdge("x", "x"), precinct.ErrSelfLoop)

	_, err := precinct.NewBuilder().Build()
	require.ErrorIs(t, err, precinct.ErrEmptyGraph)

	// every structural sentinel belongs to the integrity family
	for _, e := range []error{
		precinct.ErrEmptyUnitID, precinct.ErrDuplicateUnit, precinct.ErrNegativeCount,
		precinct.ErrUnknownUnit, precinct.ErrSelfLoop, precinct.ErrAsymmetricEdge,
		precinct.ErrDisconnected, precinct.ErrEmptyGraph,
	} {
		assert.True(t, errors.Is(e, precinct.ErrGraphIntegrity), e.Error())
	}
}

func TestGraph_Accessors(t *testing.T) {
	g := ring(t)
	require.Equal(t, 4, g.Len())
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, int64(400), g.TotalPopulation())
	require.Equal(t, []int{1, 3}, g.Neighbors(0))
	require.Equal(t, 2, g.Degree(2))

	i, ok := g.Index("C")
	require.True(t, ok)
	require.Equal(t, 2, i)
	require.Equal(t, "C", g.ID(i))
	_, ok = g.Index("Z")
	require.False(t, ok)

	require.True(t, g.HasEdge(0, 3))
	require.False(t, g.HasEdge(0, 2))
	require.Equal(t, [][2]string{{"A", "B"}, {"A", "D"}, {"B", "C"}, {"C", "D"}}, g.Edges())
}

func TestBuilder_DuplicateEdgeIsIdempotent(t *testing.T) {
	b := precinct.NewBuilder()
	require.NoError(t, b.AddUnit(precinct.Unit{ID: "a"}))
	require.NoError(t, b.AddUnit(precinct.Unit{ID: "b"}))
	require.NoError(t, b.AddEdge("a", "b"))
	require.NoError(t, b.AddEdge("b", "a"))
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestFromAdjacency(t *testing.T) {
	units := []precinct.Unit{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	t.Run("symmetric", func(t *testing.T) {
		g, err := precinct.FromAdjacency(units, map[string][]string{
			"a": {"b"}, "b": {"a", "c"}, "c": {"b"},
		})
		require.NoError(t, err)
		require.Equal(t, 2, g.EdgeCount())
		require.Equal(t, map[string][]string{"a": {"b"}, "b": {"a", "c"}, "c": {"b"}}, g.Adjacency())
	})

	t.Run("asymmetric rejected", func(t *testing.T) {
		_, err := precinct.FromAdjacency(units, map[string][]string{"a": {"b"}})
		require.ErrorIs(t, err, precinct.ErrAsymmetricEdge)
		require.ErrorIs(t, err, precinct.ErrGraphIntegrity)
	})

	t.Run("asymmetric reported in index order", func(t *testing.T) {
		one := map[string][]string{"c": {"a"}, "b": {"c"}, "a": {"b"}}
		for i := 0; i < 20; i++ {
			_, err := precinct.FromAdjacency(units, one)
			require.ErrorIs(t, err, precinct.ErrAsymmetricEdge)
			require.Contains(t, err.Error(), `"a"→"b"`)
		}
	})

	t.Run("asymmetric repaired", func(t *testing.T) {
		g, err := precinct.FromAdjacency(units, map[string][]string{"a": {"b"}}, precinct.WithSymmetrize())
		require.NoError(t, err)
		require.Equal(t, []int{0}, g.Neighbors(1))
	})

	t.Run("self loop", func(t *testing.T) {
		_, err := precinct.FromAdjacency(units, map[string][]string{"a": {"a"}})
		require.ErrorIs(t, err, precinct.ErrSelfLoop)

		g, err := precinct.FromAdjacency(units, map[string][]string{"a": {"a"}}, precinct.WithDropSelfLoops())
		require.NoError(t, err)
		require.Equal(t, 0, g.EdgeCount())
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := precinct.FromAdjacency(units, map[string][]string{"a": {"zz"}})
		require.ErrorIs(t, err, precinct.ErrUnknownUnit)
		_, err = precinct.FromAdjacency(units, map[string][]string{"zz": {"a"}})
		require.ErrorIs(t, err, precinct.ErrUnknownUnit)
	})
}

func TestComponents(t *testing.T) {
	b := precinct.NewBuilder()
	for _, id := range []string{"x1", "y1", "x2", "y2", "x3", "lone"} {
		require.NoError(t, b.AddUnit(precinct.Unit{ID: id, Population: 1}))
	}
	require.NoError(t, b.AddEdge("x1", "x2"))
	require.NoError(t, b.AddEdge("x2", "x3"))
	require.NoError(t, b.AddEdge("y1", "y2"))
	g, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 2, 4}, {1, 3}, {5}}, g.Components())
	require.False(t, g.IsConnected())
	require.True(t, ring(t).IsConnected())

	sub, dropped, err := g.LargestComponent()
	require.NoError(t, err)
	require.Equal(t, []string{"y1", "y2", "lone"}, dropped)
	require.Equal(t, 3, sub.Len())
	require.Equal(t, "x1", sub.ID(0))
	require.Equal(t, 2, sub.EdgeCount())
	require.True(t, sub.IsConnected())

	same, dropped, err := ring(t).LargestComponent()
	require.NoError(t, err)
	require.Nil(t, dropped)
	require.Equal(t, 4, same.Len())
}

func TestJSONRoundTrip(t *testing.T) {
	src := `{
	  "units": [
	    {"id": "A", "population": 100, "tally_a": 0, "tally_b": 0},
	    {"id": "B", "population": 100, "tally_a": 0, "tally_b": 0},
	    {"id": "C", "population": 100, "tally_a": 10, "tally_b": 0}
	  ],
	  "edges": [["A", "B"]],
	  "adjacency": {"B": ["C"], "C": ["B"]}
	}`
	g, err := precinct.ReadJSON(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, int64(10), g.Unit(2).TallyA)

	var buf bytes.Buffer
	require.NoError(t, precinct.WriteJSON(&buf, g))
	back, err := precinct.ReadJSON(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Units(), back.Units())
	require.Equal(t, g.Edges(), back.Edges())

	_, err = precinct.ReadJSON(strings.NewReader(`{"units": [], "bogus": 1}`))
	require.Error(t, err)
}
