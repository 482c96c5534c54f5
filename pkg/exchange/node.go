// Package exchange converts between exchange formats (DXF, STL, or any
// document-based format via the classifier) and a uniform tree of
// named, colored shape nodes. Every import path produces the same node
// shape, so downstream consumers never care which format a tree came
// from.
package exchange

import (
	"github.com/chazu/tenon/pkg/kernel"
)

// ShapeNode is one node of an imported scene graph. A node with a nil
// Shape is a group: its meaning lives entirely in its children. A node
// with a shape is always a leaf, though the shape itself may be a
// compound internally.
type ShapeNode struct {
	Shape    kernel.Shape `json:"-"`
	Color    string       `json:"color,omitempty"` // normalized #RRGGBB, empty if none
	Name     string       `json:"name"`
	Children []*ShapeNode `json:"children,omitempty"`
}

// IsGroup reports whether the node is a group node.
func (n *ShapeNode) IsGroup() bool { return n.Shape == nil }

// Walk visits the node and all descendants depth-first in child order.
// The walk is iterative so document nesting depth never translates
// into goroutine stack depth.
func (n *ShapeNode) Walk(visit func(*ShapeNode)) {
	if n == nil {
		return
	}
	work := []*ShapeNode{n}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		visit(cur)
		for i := len(cur.Children) - 1; i >= 0; i-- {
			work = append(work, cur.Children[i])
		}
	}
}
