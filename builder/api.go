// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(hopts, bopts, cons...). Creates h, resolves cfg, runs cons in order.
//   - Constructors only call core mutation primitives; they own no state.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical hypergraphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"github.com/pkg/errors"

	"github.com/3michele/hgraph/core"
)

// Constructor applies a deterministic hypergraph mutation using the resolved
// builderConfig. Constructors validate parameters before touching h.
type Constructor func(h *core.Hypergraph, cfg builderConfig) error

// Build creates a new core.Hypergraph with options hopts, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "Build" and returned
// immediately; no partial cleanup is attempted.
//
// Errors: builder sentinels (ErrTooFewVertices, ErrInvalidArity,
// ErrNeedRandSource, ErrConstructFailed) checked with errors.Is.
func Build(hopts []core.Option, bopts []Option, cons ...Constructor) (*core.Hypergraph, error) {
	h := core.New(hopts...)
	if err := Apply(h, bopts, cons...); err != nil {
		return nil, err
	}

	return h, nil
}

// Apply runs constructors against an existing hypergraph.
func Apply(h *core.Hypergraph, bopts []Option, cons ...Constructor) error {
	if h == nil {
		return errors.Wrap(ErrConstructFailed, "Build: nil hypergraph")
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrConstructFailed, "Build: nil constructor at index %d", i)
		}
		if err := fn(h, cfg); err != nil {
			return errors.Wrap(err, "Build")
		}
	}

	return nil
}
