package anneal_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/redistrict/anneal"
	"github.com/katalvlaran/redistrict/builder"
	"github.com/katalvlaran/redistrict/grow"
	"github.com/katalvlaran/redistrict/objective"
	"github.com/katalvlaran/redistrict/partition"
	"github.com/katalvlaran/redistrict/precinct"
)

const (
	rows = 6
	cols = 6
	k    = 3
)

// strips builds a 6×6 grid (population 100 per cell) split into three
// vertical strips of two columns: contiguous and exactly balanced.
func strips(t testing.TB, seed int64) (*precinct.Graph, *partition.State, partition.Band, *objective.Evaluator) {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithTallies(builder.RandomTallies(60)),
	}, builder.Grid(rows, cols))
	require.NoError(t, err)

	a := make(partition.Assignment, g.Len())
	for i := range a {
		a[i] = (i % cols) / 2
	}
	s, err := partition.FromAssignment(g, k, a)
	require.NoError(t, err)
	band, err := partition.NewBand(g.TotalPopulation(), k, 0.1)
	require.NoError(t, err)
	ev, err := objective.New(g, k, objective.SideB, objective.TieNone)
	require.NoError(t, err)
	return g, s, band, ev
}

// connected is an independent reachability check over district d.
func connected(g *precinct.Graph, a partition.Assignment, d int) bool {
	var members []int
	for u, x := range a {
		if x == d {
			members = append(members, u)
		}
	}
	if len(members) == 0 {
		return true
	}
	seen := map[int]bool{members[0]: true}
	queue := []int{members[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if a[v] == d && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return len(seen) == len(members)
}

func TestOptimize_Invariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42} {
		g, s, band, ev := strips(t, seed)
		initial, err := ev.Evaluate(s.Assignment())
		require.NoError(t, err)

		lastBest := -1
		steps := 0
		res, err := anneal.Optimize(context.Background(), s, band, ev,
			anneal.WithSeed(seed),
			anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.01, Alpha: 0.99, MaxIter: 500}),
			anneal.WithOnIteration(func(st anneal.Step) {
				steps++
				require.GreaterOrEqual(t, st.BestSeats, lastBest, "best objective never decreases")
				lastBest = st.BestSeats

				cur := s.View()
				for d := 0; d < k; d++ {
					require.True(t, connected(g, cur, d), "district %d split at iteration %d", d, st.Iteration)
					require.True(t, band.Contains(s.Population(d)), "district %d left the band", d)
				}
			}),
		)
		require.NoError(t, err)
		require.Equal(t, res.Iterations, steps)
		require.Equal(t, anneal.StopMaxIter, res.Stop)
		require.Equal(t, 500, res.Iterations)

		assert.Equal(t, initial.Target, res.InitialSeats)
		assert.GreaterOrEqual(t, res.BestSeats, res.InitialSeats)
		assert.Equal(t, res.NoOp, res.BestSeats == res.InitialSeats)

		// the state is left on the best snapshot
		require.Equal(t, res.Best, s.Assignment())
		final, err := ev.Evaluate(res.Best)
		require.NoError(t, err)
		assert.Equal(t, res.BestSeats, final.Target)
		for d := 0; d < k; d++ {
			assert.True(t, connected(g, res.Best, d))
		}
	}
}

// splitEndpoints runs Optimize on s and fails when an accepted move leaves
// its source or target district in more than one piece.
func splitEndpoints(t *testing.T, g *precinct.Graph, s *partition.State, band partition.Band, maxIter int) anneal.Result {
	t.Helper()
	ev, err := objective.New(g, s.NumDistricts(), objective.SideB, objective.TieNone)
	require.NoError(t, err)

	res, err := anneal.Optimize(context.Background(), s, band, ev,
		anneal.WithSeed(5),
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.01, Alpha: 0.99, MaxIter: maxIter}),
		anneal.WithOnIteration(func(st anneal.Step) {
			if st.Outcome != anneal.Accepted && st.Outcome != anneal.Improved {
				return
			}
			cur := s.View()
			require.True(t, connected(g, cur, st.Move.From), "source %d split by %+v", st.Move.From, st.Move)
			require.True(t, connected(g, cur, st.Move.To), "target %d split by %+v", st.Move.To, st.Move)
		}),
	)
	require.NoError(t, err)
	return res
}

func TestOptimize_SplitDistrictsStayPut(t *testing.T) {
	// 0–1–2–3–4–5 with districts {0,3,4} and {1,2,5}: every border move
	// either splits its source or lands in a target that stays split.
	g, err := builder.BuildGraph(nil, builder.Path(6))
	require.NoError(t, err)
	start := partition.Assignment{0, 1, 1, 0, 0, 1}
	s, err := partition.FromAssignment(g, 2, start)
	require.NoError(t, err)
	band, err := partition.NewBand(g.TotalPopulation(), 2, 0.5)
	require.NoError(t, err)

	res := splitEndpoints(t, g, s, band, 100)
	require.Equal(t, 100, res.Iterations)
	require.Equal(t, 100, res.Counts[anneal.RejectedContiguity])
	require.Equal(t, start, res.Best)
}

func TestOptimize_AfterReseededGrowth(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	s, err := partition.New(g, 2)
	require.NoError(t, err)
	band, err := partition.NewBand(g.TotalPopulation(), 2, 0.2)
	require.NoError(t, err)

	res, err := grow.Grow(s, []int{0, 1}, band, nil)
	require.NoError(t, err)
	require.NotEmpty(t, res.Reseeded)
	grown := s.Assignment()
	require.Equal(t, partition.Assignment{0, 1, 0, 0, 1}, grown)
	require.False(t, connected(g, grown, 0))
	require.False(t, connected(g, grown, 1))

	// moving 3 next to 4 keeps both piece counts at two; it must still be refused
	out := splitEndpoints(t, g, s, band, 200)
	require.Zero(t, out.Counts[anneal.Accepted]+out.Counts[anneal.Improved])
	require.Equal(t, grown, out.Best)
	for d := 0; d < 2; d++ {
		require.True(t, band.Contains(s.Population(d)))
	}
}

func TestOptimize_Deterministic(t *testing.T) {
	run := func() anneal.Result {
		_, s, band, ev := strips(t, 3)
		res, err := anneal.Optimize(context.Background(), s, band, ev,
			anneal.WithRand(rand.New(rand.NewSource(99))),
			anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.001, Alpha: 0.995, MaxIter: 300}))
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.Equal(t, a.Best, b.Best)
	require.Equal(t, a.Counts, b.Counts)
}

func TestOptimize_SingleUnit(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(1))
	require.NoError(t, err)
	s, err := partition.FromAssignment(g, 1, partition.Assignment{0})
	require.NoError(t, err)
	band, err := partition.NewBand(g.TotalPopulation(), 1, 0.1)
	require.NoError(t, err)
	ev, err := objective.New(g, 1, objective.SideA, objective.TieNone)
	require.NoError(t, err)

	res, err := anneal.Optimize(context.Background(), s, band, ev)
	require.NoError(t, err)
	require.Equal(t, anneal.StopNoBorder, res.Stop)
	require.Zero(t, res.Iterations)
	require.Equal(t, partition.Assignment{0}, res.Best)
	require.True(t, res.NoOp)
}

func TestOptimize_Budgets(t *testing.T) {
	_, s, band, ev := strips(t, 5)
	before := s.Assignment()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := anneal.Optimize(ctx, s, band, ev)
	require.NoError(t, err)
	require.Equal(t, anneal.StopCancelled, res.Stop)
	require.Zero(t, res.Iterations)
	require.Equal(t, before, res.Best)

	dctx, dcancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer dcancel()
	res, err = anneal.Optimize(dctx, s, band, ev)
	require.NoError(t, err)
	require.Equal(t, anneal.StopDeadline, res.Stop)

	res, err = anneal.Optimize(context.Background(), s, band, ev,
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.5, Alpha: 0.5, MaxIter: 0}))
	require.NoError(t, err)
	require.Equal(t, anneal.StopMaxIter, res.Stop)
	require.Zero(t, res.Iterations)
	require.InDelta(t, 1.0, res.FinalTemperature, 1e-12)
}

func TestOptimize_VisitLimit(t *testing.T) {
	_, s, band, ev := strips(t, 11)
	res, err := anneal.Optimize(context.Background(), s, band, ev,
		anneal.WithMaxContiguityVisits(1),
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.5, Alpha: 0.9, MaxIter: 50}))
	require.NoError(t, err)
	require.Zero(t, res.Counts[anneal.Accepted]+res.Counts[anneal.Improved],
		"with a one-visit budget no twelve-unit district can be verified")
	require.Equal(t, 50, res.Counts[anneal.RejectedUnverified]+res.Counts[anneal.RejectedPopulation]+
		res.Counts[anneal.RejectedEmpty]+res.Counts[anneal.RejectedContiguity])
}

func TestOptimize_Errors(t *testing.T) {
	g, s, band, ev := strips(t, 1)

	_, err := anneal.Optimize(context.Background(), nil, band, ev)
	require.ErrorIs(t, err, anneal.ErrStateNil)
	_, err = anneal.Optimize(context.Background(), s, band, nil)
	require.ErrorIs(t, err, anneal.ErrEvaluatorNil)

	empty, err := partition.New(g, k)
	require.NoError(t, err)
	_, err = anneal.Optimize(context.Background(), empty, band, ev)
	require.ErrorIs(t, err, anneal.ErrIncomplete)

	for _, opt := range []anneal.Option{
		anneal.WithRand(nil),
		anneal.WithTimeLimit(-time.Second),
		anneal.WithMaxContiguityVisits(-1),
		anneal.WithSchedule(anneal.Schedule{TInit: 0.1, TFinal: 0.5, Alpha: 0.9}),
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0, Alpha: 0.9}),
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.1, Alpha: 1}),
		anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.1, Alpha: 0.9, MaxIter: -1}),
	} {
		_, err = anneal.Optimize(context.Background(), s, band, ev, opt)
		require.ErrorIs(t, err, anneal.ErrOptionViolation)
	}
}

func TestStrings(t *testing.T) {
	require.Equal(t, "rejected_contiguity", anneal.RejectedContiguity.String())
	require.Equal(t, "no_border", anneal.StopNoBorder.String())
	require.Equal(t, "Outcome(42)", anneal.Outcome(42).String())
}

func BenchmarkOptimize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		_, s, band, ev := strips(b, 1)
		b.StartTimer()
		_, err := anneal.Optimize(context.Background(), s, band, ev,
			anneal.WithSchedule(anneal.Schedule{TInit: 1, TFinal: 0.01, Alpha: 0.99, MaxIter: 200}))
		if err != nil {
			b.Fatal(err)
		}
	}
}
