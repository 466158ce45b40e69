// SPDX-License-Identifier: MIT

package core

import "github.com/pkg/errors"

// FilterOption narrows a query to hyperedges of a given arity.
type FilterOption func(f *Filter)

// ByOrder keeps hyperedges of order k (size k+1).
func ByOrder(k int) FilterOption {
	return func(f *Filter) {
		f.order, f.hasOrder = k, true
	}
}

// BySize keeps hyperedges of size k.
func BySize(k int) FilterOption {
	return func(f *Filter) {
		f.size, f.hasSize = k, true
	}
}

// UpTo turns the exact arity test into "arity up to k".
func UpTo() FilterOption {
	return func(f *Filter) { f.upTo = true }
}

// Filter is a resolved arity filter. The zero value matches every hyperedge.
type Filter struct {
	order, size       int
	hasOrder, hasSize bool
	upTo              bool
}

// ResolveFilter applies opts and validates the result.
//
// Errors:
//   - ErrInvalidFilterCombination if both an order and a size were given.
//   - ErrNegativeArity if the given order or size is negative.
func ResolveFilter(opts ...FilterOption) (Filter, error) {
	var f Filter
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	if f.hasOrder && f.hasSize {
		return Filter{}, errors.Wrapf(ErrInvalidFilterCombination, "order %d, size %d", f.order, f.size)
	}
	if (f.hasOrder && f.order < 0) || (f.hasSize && f.size < 0) {
		return Filter{}, errors.Wrapf(ErrNegativeArity, "order %d, size %d", f.order, f.size)
	}

	return f, nil
}

// resolveRequired is ResolveFilter for operations that need an arity.
func resolveRequired(opts ...FilterOption) (Filter, error) {
	f, err := ResolveFilter(opts...)
	if err != nil {
		return Filter{}, err
	}
	if !f.Active() {
		return Filter{}, ErrMissingFilter
	}

	return f, nil
}

// Active reports whether the filter restricts arity at all.
func (f Filter) Active() bool { return f.hasOrder || f.hasSize }

// Size returns the target size and whether one is set. Orders are
// translated to sizes (order+1).
func (f Filter) Size() (int, bool) {
	switch {
	case f.hasSize:
		return f.size, true
	case f.hasOrder:
		return f.order + 1, true
	default:
		return 0, false
	}
}

// Match reports whether a hyperedge of the given size passes the filter.
func (f Filter) Match(size int) bool {
	target, ok := f.Size()
	if !ok {
		return true
	}
	if f.upTo {
		return size <= target
	}

	return size == target
}
