// Package format renders a core.Hypergraph as deterministic, human-readable
// text.
//
// The layout lists the nodes ascending, then every hyperedge with its
// weight:
//
//	{
//		[1 2 3],
//		[
//			([1 2], 2.5),
//			([2 3], 1)
//		]
//	}
//
// Hyperedges are ordered by their node sequence (lexicographic, shorter
// prefix first) unless ByEdgeID is given. Output is byte-identical for equal
// hypergraphs regardless of insertion history.
//
// Options:
//
//   - WithEdgeIDs()        prefix each hyperedge with its fingerprint.
//   - ByEdgeID()           order hyperedges by EdgeID instead.
//   - WithFilter(opts...)  only list hyperedges matching a core filter.
//   - WithIndent(s)        indentation unit, default a tab.
package format
