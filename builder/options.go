// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs (nil functions,
//     inverted ranges); constructors themselves never panic.
//   • Determinism is explicit: randomness only flows from WithSeed/WithRand.

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/redistrict/precinct"
)

// PopulationFn produces the population of unit i. rng may be nil.
type PopulationFn func(i int, rng *rand.Rand) int64

// TallyFn produces (tallyA, tallyB) of unit i. rng may be nil.
type TallyFn func(i int, rng *rand.Rand) (int64, int64)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn    func(int) string
	rng     *rand.Rand
	popFn   PopulationFn
	tallyFn TallyFn
}

// Deterministic defaults.
const defaultPopulation = int64(100)

// newBuilderConfig applies options in order over deterministic defaults:
// decimal IDs, no RNG, population 100, tallies (0, 0).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    decimalID,
		popFn:   ConstPopulation(defaultPopulation),
		tallyFn: ConstTallies(0, 0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// unit materializes the attributes of unit i under the given ID.
func (c builderConfig) unit(i int, id string) precinct.Unit {
	a, b := c.tallyFn(i, c.rng)
	return precinct.Unit{
		ID:         id,
		Population: c.popFn(i, c.rng),
		TallyA:     a,
		TallyB:     b,
	}
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string { return strconv.Itoa(i) }

// WithIDScheme sets the unit ID generator: global index → ID.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithPopulation overrides the population generator. Panics on nil.
func WithPopulation(fn PopulationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithPopulation(nil)")
	}
	return func(c *builderConfig) { c.popFn = fn }
}

// WithTallies overrides the tally generator. Panics on nil.
func WithTallies(fn TallyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTallies(nil)")
	}
	return func(c *builderConfig) { c.tallyFn = fn }
}
