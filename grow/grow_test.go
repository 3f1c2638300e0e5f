package grow_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/grow"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
	"github.com/katalvlaran/redistrict/seed"
)

func letters(i int) string { return string(rune('A' + i)) }

// ringScenario: A–B–C–D–A, population 100 each, C and D carry tally_a=10.
func ringScenario(t *testing.T) *precinct.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithIDScheme(letters),
		builder.WithTallies(builder.TalliesByIndex(map[int][2]int64{2: {10, 0}, 3: {10, 0}})),
	}, builder.Ring(4))
	require.NoError(t, err)
	return g
}

func setup(t *testing.T, g *precinct.Graph, k int, eps float64) (*partition.State, partition.Band) {
	t.Helper()
	s, err := partition.New(g, k)
	require.NoError(t, err)
	band, err := partition.NewBand(g.TotalPopulation(), k, eps)
	require.NoError(t, err)
	return s, band
}

func TestGrow_RingScenario(t *testing.T) {
	g := ringScenario(t)
	s, band := setup(t, g, 2, 0.5)

	seeds, err := seed.Select(g, seed.LeanBMinusA, 1, 1)
	require.NoError(t, err)

	res, err := grow.Grow(s, seeds, band, seed.Scores(g, seed.LeanBMinusA))
	require.NoError(t, err)
	require.True(t, s.Complete())
	require.Equal(t, []int64{200, 200}, res.Populations)
	require.Equal(t, partition.Assignment{1, 0, 0, 1}, s.Assignment(), "C takes B, A takes D")

	for d := 0; d < 2; d++ {
		n, err := s.Components(d)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	}
	require.Empty(t, res.Reseeded)
	require.Empty(t, res.Forced)
}

func TestGrow_Inverted(t *testing.T) {
	g := ringScenario(t)
	s, band := setup(t, g, 2, 0.5)

	_, err := grow.Grow(s, []int{2, 0}, band, seed.Scores(g, seed.LeanBMinusA), grow.WithInverted(0))
	require.NoError(t, err)
	require.Equal(t, partition.Assignment{1, 1, 0, 0}, s.Assignment(), "C packs with D")
}

func TestGrow_Reseed(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	s, band := setup(t, g, 2, 0.2)

	var kinds []grow.Placement
	res, err := grow.Grow(s, []int{0, 1}, band, nil,
		grow.WithOnAssign(func(_, _ int, kind grow.Placement) { kinds = append(kinds, kind) }))
	require.NoError(t, err)
	require.Equal(t, partition.Assignment{0, 1, 0, 0, 1}, s.Assignment())
	require.Equal(t, []int{2, 4}, res.Reseeded)
	require.Equal(t, []grow.Placement{
		grow.PlaceSeed, grow.PlaceSeed, grow.PlaceReseed, grow.PlaceFrontier, grow.PlaceReseed,
	}, kinds)

	n, err := s.Components(0)
	require.NoError(t, err)
	require.Equal(t, 2, n, "a reseeded district may be detached after growth")
}

// stalled: 0–1–2 plus isolated 3; unit 1 fits in neither neighbor.
func stalled(t *testing.T) *precinct.Graph {
	t.Helper()
	pops := []int64{100, 150, 100, 50}
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithPopulation(func(i int, _ *rand.Rand) int64 { return pops[i] }),
	}, builder.Path(3), builder.Path(1))
	require.NoError(t, err)
	return g
}

func TestGrow_CapacityExhausted(t *testing.T) {
	g := stalled(t)
	s, band := setup(t, g, 2, 0.1)
	_, err := grow.Grow(s, []int{0, 2}, band, nil)
	require.ErrorIs(t, err, grow.ErrCapacityExhausted)
}

func TestGrow_Overflow(t *testing.T) {
	g := stalled(t)
	s, band := setup(t, g, 2, 0.1)
	res, err := grow.Grow(s, []int{0, 2}, band, nil, grow.WithOverflow())
	require.NoError(t, err)
	require.True(t, s.Complete())
	require.Equal(t, []int{1, 3}, res.Forced)
	require.Equal(t, []int{1}, res.Overflowed)
	require.Equal(t, partition.Assignment{0, 0, 1, 1}, s.Assignment())
}

func TestGrow_Errors(t *testing.T) {
	g := ringScenario(t)
	s, band := setup(t, g, 2, 0.5)

	_, err := grow.Grow(nil, nil, band, nil)
	require.ErrorIs(t, err, grow.ErrStateNil)
	_, err = grow.Grow(s, []int{0}, band, nil)
	require.ErrorIs(t, err, grow.ErrSeeds)
	_, err = grow.Grow(s, []int{0, 0}, band, nil)
	require.ErrorIs(t, err, grow.ErrSeeds)
	_, err = grow.Grow(s, []int{0, 9}, band, nil)
	require.ErrorIs(t, err, grow.ErrSeeds)
	_, err = grow.Grow(s, []int{0, 1}, band, []float64{1})
	require.ErrorIs(t, err, grow.ErrScores)
	_, err = grow.Grow(s, []int{0, 1}, band, nil, grow.WithInverted(-1))
	require.ErrorIs(t, err, grow.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = grow.Grow(s, []int{0, 2}, band, nil, grow.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = grow.Grow(s, []int{0, 2}, band, nil)
	require.ErrorIs(t, err, grow.ErrStateNotEmpty)
}

func TestGrow_GridInvariants(t *testing.T) {
	for _, seedVal := range []int64{1, 2, 3, 4, 5} {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(seedVal),
			builder.WithPopulation(builder.UniformPopulation(50, 150)),
			builder.WithTallies(builder.RandomTallies(400)),
		}, builder.Grid(8, 8))
		require.NoError(t, err)

		s, band := setup(t, g, 4, 0.2)
		seeds, err := seed.Select(g, seed.LeanBMinusA, 1, 3)
		require.NoError(t, err)

		res, err := grow.Grow(s, seeds, band, seed.Scores(g, seed.LeanBMinusA))
		require.NoError(t, err)
		require.True(t, s.Complete())
		assert.Empty(t, res.Overflowed)

		var total int64
		for d, p := range res.Populations {
			assert.LessOrEqual(t, float64(p), band.Max, "district %d over ceiling", d)
			total += p
		}
		require.Equal(t, g.TotalPopulation(), total)
	}
}

func TestPlacementString(t *testing.T) {
	require.Equal(t, "reseed", grow.PlaceReseed.String())
	require.Equal(t, "Placement(9)", grow.Placement(9).String())
}
