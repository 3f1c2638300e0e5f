// Package seed chooses one starting unit per district from the ranked
// extremes of a lean score.
//
// Side-A districts are seeded from the units leaning hardest toward A and
// side-B districts from those leaning hardest toward B, so growth starts
// from the most decisive territory of each side.
package seed
