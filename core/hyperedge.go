// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"slices"
)

// Hyperedge is a weighted node sequence of arbitrary arity.
//
// The node sequence keeps order and duplicates exactly as added. Identity is
// the sequence alone; the weight is not part of it. Records are owned by
// their Hypergraph and are read-only to callers.
type Hyperedge struct {
	nodes  []Node
	weight float64
}

// newHyperedge copies nodes so the record never aliases caller memory.
func newHyperedge(nodes []Node, weight float64) *Hyperedge {
	return &Hyperedge{nodes: slices.Clone(nodes), weight: weight}
}

// Nodes returns a copy of the node sequence.
func (e *Hyperedge) Nodes() []Node { return slices.Clone(e.nodes) }

// Weight returns the hyperedge weight (always 0 in unweighted hypergraphs).
func (e *Hyperedge) Weight() float64 { return e.weight }

// Size is the arity of the hyperedge: the length of its node sequence.
func (e *Hyperedge) Size() int { return len(e.nodes) }

// Order is Size()-1.
func (e *Hyperedge) Order() int { return len(e.nodes) - 1 }

// ID returns the fingerprint of the node sequence.
func (e *Hyperedge) ID() EdgeID { return Fingerprint(e.nodes) }

// Contains reports whether n occurs in the hyperedge.
func (e *Hyperedge) Contains(n Node) bool { return slices.Contains(e.nodes, n) }

// Equal reports whether both hyperedges have the same node sequence.
func (e *Hyperedge) Equal(other *Hyperedge) bool {
	if e == nil || other == nil {
		return e == other
	}

	return slices.Equal(e.nodes, other.nodes)
}

// containsOther reports whether the hyperedge holds a node different from n.
func (e *Hyperedge) containsOther(n Node) bool {
	for _, v := range e.nodes {
		if v != n {
			return true
		}
	}

	return false
}

// String renders the hyperedge as "([n1 n2 ...], weight)".
func (e *Hyperedge) String() string {
	return fmt.Sprintf("(%v, %v)", e.nodes, e.weight)
}
