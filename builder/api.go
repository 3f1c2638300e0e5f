// SPDX-License-Identifier: MIT
// Package: redistrict/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against a single precinct.Builder, then freezes the graph.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Composed constructors continue the global unit index, so the default
//     decimal IDs never collide.

package builder

import (
	"fmt"

	"github.com/katalvlaran/redistrict/precinct"
)

// Constructor applies a deterministic mutation to a precinct builder using
// the resolved configuration. Constructors validate parameters first and
// return sentinel errors; they never panic.
type Constructor func(b *precinct.Builder, cfg builderConfig) error

// BuildGraph resolves bopts, applies every constructor in order and returns
// the frozen graph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of the constructors plus O(V + E log E) for freezing.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*precinct.Graph, error) {
	b := precinct.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return g, nil
}

// addUnits declares n units starting at the builder's current size and
// returns their IDs in order.
func addUnits(method string, b *precinct.Builder, cfg builderConfig, n int, idOf func(k int) string) ([]string, error) {
	base := b.Len()
	ids := make([]string, n)
	for k := 0; k < n; k++ {
		id := idOf(base + k)
		if err := b.AddUnit(cfg.unit(base+k, id)); err != nil {
			return nil, fmt.Errorf("%s: AddUnit(%s): %v: %w", method, id, err, ErrConstructFailed)
		}
		ids[k] = id
	}
	return ids, nil
}

// link adds one undirected edge with method context.
func link(method string, b *precinct.Builder, u, v string) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %v: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}
