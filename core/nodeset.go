// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// NodeSet is an ordered set of nodes. Iteration is always ascending, so
// traversal and component results print and compare the same way on every
// run regardless of map hashing.
//
// The zero value is an empty set ready to use. A NodeSet must not be copied
// by value after first use; pass *NodeSet.
type NodeSet struct {
	tree btree.Set[Node]
}

// NewNodeSet returns a set holding the given nodes.
func NewNodeSet(nodes ...Node) *NodeSet {
	s := &NodeSet{}
	for _, n := range nodes {
		s.tree.Insert(n)
	}

	return s
}

// Add inserts n and reports whether it was not already present.
func (s *NodeSet) Add(n Node) bool {
	if s.tree.Contains(n) {
		return false
	}
	s.tree.Insert(n)

	return true
}

// AddAll inserts every member of other.
func (s *NodeSet) AddAll(other *NodeSet) {
	if other == nil {
		return
	}
	other.tree.Scan(func(n Node) bool {
		s.tree.Insert(n)
		return true
	})
}

// Remove deletes n if present.
func (s *NodeSet) Remove(n Node) { s.tree.Delete(n) }

// Has reports membership. A nil set has no members.
func (s *NodeSet) Has(n Node) bool {
	if s == nil {
		return false
	}

	return s.tree.Contains(n)
}

// Len returns the number of members. A nil set has length 0.
func (s *NodeSet) Len() int {
	if s == nil {
		return 0
	}

	return s.tree.Len()
}

// Nodes returns the members in ascending order.
func (s *NodeSet) Nodes() []Node {
	out := make([]Node, 0, s.Len())
	for n := range s.All() {
		out = append(out, n)
	}

	return out
}

// All yields the members in ascending order.
func (s *NodeSet) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if s == nil {
			return
		}
		s.tree.Scan(func(n Node) bool { return yield(n) })
	}
}

// Equal reports whether both sets hold the same members.
func (s *NodeSet) Equal(other *NodeSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for n := range s.All() {
		if !other.Has(n) {
			return false
		}
	}

	return true
}

// Disjoint reports whether the sets share no member.
func (s *NodeSet) Disjoint(other *NodeSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for n := range small.All() {
		if large.Has(n) {
			return false
		}
	}

	return true
}

// String renders the set like a slice: "{1 2 3}".
func (s *NodeSet) String() string {
	nodes := s.Nodes()
	str := fmt.Sprint(nodes)

	return "{" + str[1:len(str)-1] + "}"
}
