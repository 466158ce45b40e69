// SPDX-License-Identifier: MIT
// Package: hgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with errors.Wrapf.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates that a node count is smaller than the allowed
// minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidArity indicates a hyperedge size outside the constructor's range
// (e.g. k < 1 or k > n).
var ErrInvalidArity = errors.New("builder: invalid hyperedge size")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as
// a nil constructor or a request too large to enumerate.
var ErrConstructFailed = errors.New("builder: construction failed")
