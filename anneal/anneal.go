// SPDX-License-Identifier: MIT
// Package: redistrict/anneal
//
// anneal.go - simulated-annealing refinement over border moves.
//
// Per iteration:
//  1. Enumerate border moves; stop when there are none.
//  2. Draw one uniformly.
//  3. Reject if the source would drop below band.Min or the target rise
//     above band.Max, or the source would become empty.
//  4. Reject unless the source without the unit and the target with it are
//     each a single connected piece.
//  5. Apply, rescore, and keep the move when it beats the best objective or
//     with probability exp(Δ/T), Δ = new − best. Otherwise undo it.
//  6. Snapshot the best assignment; cool T ← max(T·α, T_final).
//
// A district left split by growth only takes part in moves that leave it
// whole. Each legal candidate costs two bounded traversals plus one O(V)
// rescore.

package anneal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/redistrict/bfs"
	"github.com/katalvlaran/redistrict/objective"
	"github.com/katalvlaran/redistrict/partition"
)

type optimizer struct {
	s       *partition.State
	band    partition.Band
	ev      *objective.Evaluator
	opts    Options
	rng     *rand.Rand
	scratch []int64

	seats     int
	bestSeats int
	best      partition.Assignment
}

// Optimize improves the target side's seats on s in place. s must be
// complete and is owned by the call until it returns; on return it holds
// Result.Best.
//
// Cancellation or the time limit end the search early; the best snapshot is
// returned without error in both cases.
func Optimize(ctx context.Context, s *partition.State, band partition.Band, ev *objective.Evaluator, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if err := o.Schedule.Validate(); err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, ErrStateNil
	}
	if ev == nil {
		return Result{}, ErrEvaluatorNil
	}
	if !s.Complete() {
		return Result{}, fmt.Errorf("%w: %d of %d assigned", ErrIncomplete, s.AssignedCount(), s.Graph().Len())
	}
	if ctx == nil {
		ctx = context.Background()
	}

	op := &optimizer{s: s, band: band, ev: ev, opts: o, rng: o.Rand}
	if op.rng == nil {
		op.rng = rngFromSeed(o.Seed)
	}
	op.seats, op.scratch = ev.Seats(s.View(), op.scratch)
	op.bestSeats = op.seats
	op.best = s.Assignment()

	res := op.run(ctx)
	op.restoreBest()

	res.Best = op.best.Clone()
	return res, nil
}

func (op *optimizer) run(ctx context.Context) Result {
	var (
		sched    = op.opts.Schedule
		temp     = sched.TInit
		moves    []partition.Move
		deadline time.Time
	)
	res := Result{
		InitialSeats: op.seats,
		Counts:       make(map[Outcome]int),
		Stop:         StopMaxIter,
	}
	if op.opts.TimeLimit > 0 {
		deadline = time.Now().Add(op.opts.TimeLimit)
	}

	for it := 0; it < sched.MaxIter; it++ {
		if err := ctx.Err(); err != nil {
			res.Stop = StopCancelled
			if errors.Is(err, context.DeadlineExceeded) {
				res.Stop = StopDeadline
			}
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			res.Stop = StopDeadline
			break
		}

		moves = op.s.BorderMoves(moves[:0])
		if len(moves) == 0 {
			res.Stop = StopNoBorder
			break
		}
		res.Iterations++

		m := moves[op.rng.Intn(len(moves))]
		out := op.step(m, temp)
		res.Counts[out]++

		if op.opts.OnIteration != nil {
			op.opts.OnIteration(Step{
				Iteration:   it,
				Temperature: temp,
				Move:        m,
				Seats:       op.seats,
				BestSeats:   op.bestSeats,
				Outcome:     out,
			})
		}
		temp = math.Max(temp*sched.Alpha, sched.TFinal)
	}

	res.BestSeats = op.bestSeats
	res.FinalTemperature = temp
	res.NoOp = res.Counts[Improved] == 0
	return res
}

// step evaluates one candidate move and leaves the state either moved
// (accepted) or exactly as before.
func (op *optimizer) step(m partition.Move, temp float64) Outcome {
	g := op.s.Graph()
	p := g.Unit(m.Unit).Population
	from, to := op.s.Population(m.From), op.s.Population(m.To)
	if float64(from-p) < op.band.Min || float64(to+p) > op.band.Max {
		return RejectedPopulation
	}
	if op.s.Size(m.From) <= 1 {
		return RejectedEmpty
	}

	ok, err := op.s.ConnectedAfter(m.From, m.Unit, partition.Unassigned, op.opts.MaxContiguityVisits)
	if errors.Is(err, bfs.ErrVisitLimit) {
		return RejectedUnverified
	}
	if err != nil || !ok {
		return RejectedContiguity
	}
	ok, err = op.s.ConnectedAfter(m.To, partition.Unassigned, m.Unit, op.opts.MaxContiguityVisits)
	if errors.Is(err, bfs.ErrVisitLimit) {
		return RejectedUnverified
	}
	if err != nil || !ok {
		return RejectedContiguity
	}

	if _, err = op.s.Move(m.Unit, m.To); err != nil {
		return RejectedContiguity
	}
	var seats int
	seats, op.scratch = op.ev.Seats(op.s.View(), op.scratch)

	delta := seats - op.bestSeats
	if delta <= 0 && op.rng.Float64() >= math.Exp(float64(delta)/math.Max(temp, minTemperature)) {
		_, _ = op.s.Move(m.Unit, m.From)
		return Reverted
	}

	op.seats = seats
	if delta > 0 {
		op.bestSeats = seats
		op.best = op.s.Assignment()
		return Improved
	}
	return Accepted
}

// restoreBest moves the state back onto the best snapshot.
func (op *optimizer) restoreBest() {
	for u, d := range op.best {
		if op.s.District(u) != d {
			_, _ = op.s.Move(u, d)
		}
	}
}
