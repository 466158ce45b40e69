// SPDX-License-Identifier: MIT

package matrix

import "github.com/pkg/errors"

var (
	// ErrGraphNil is returned when a nil *core.Hypergraph is passed.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownNode is returned when a node has no row.
	ErrUnknownNode = errors.New("matrix: unknown node")

	// ErrDimensionMismatch is returned for an out-of-range row or column.
	ErrDimensionMismatch = errors.New("matrix: index out of range")
)
