// Package builder produces deterministic synthetic precinct graphs for
// tests, examples, benchmarks and the `redistrict synth` command.
//
// Topologies: Path, Ring and Grid. Unit attributes come from pluggable
// generators (WithPopulation, WithTallies); stochastic generators draw from
// the RNG installed by WithSeed or WithRand and degrade to fixed values
// without one.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithTallies(builder.RandomTallies(500))},
//		builder.Grid(10, 10),
//	)
package builder
