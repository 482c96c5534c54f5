package document

import (
	"github.com/chazu/tenon/pkg/kernel"
)

// Store is a mutable in-memory Document. Importers build one up with
// the Node setters and then hand it to the classifier, which only sees
// the read-only Document/Label view.
type Store struct {
	main *Node
}

// Compile-time interface checks.
var (
	_ Document = (*Store)(nil)
	_ Label    = (*Node)(nil)
)

// NewStore returns an empty store with a root label.
func NewStore() *Store {
	return &Store{main: &Node{}}
}

// Main returns the root label.
func (s *Store) Main() Label { return s.main }

// Root returns the root node for mutation while building the document.
func (s *Store) Root() *Node { return s.main }

// Node is the in-memory Label implementation.
type Node struct {
	name     string
	hasName  bool
	colors   map[ColorType]string
	shape    kernel.Shape
	hasShape bool
	children []*Node
	ref      *Node
	free     bool
	subShape bool
}

// NewChild appends and returns a new child label.
func (n *Node) NewChild() *Node {
	child := &Node{}
	n.children = append(n.children, child)
	return child
}

// SetName sets the label's name attribute.
func (n *Node) SetName(name string) *Node {
	n.name = name
	n.hasName = true
	return n
}

// SetColor stores a color in the given slot.
func (n *Node) SetColor(slot ColorType, color string) *Node {
	if n.colors == nil {
		n.colors = make(map[ColorType]string)
	}
	n.colors[slot] = color
	return n
}

// SetShape attaches a geometric shape to the label.
func (n *Node) SetShape(s kernel.Shape) *Node {
	n.shape = s
	n.hasShape = true
	return n
}

// SetReference makes the label a reference to target.
func (n *Node) SetReference(target *Node) *Node {
	n.ref = target
	return n
}

// MarkFree flags the label as a free (top-level) shape.
func (n *Node) MarkFree() *Node {
	n.free = true
	return n
}

// MarkSubShape flags the label as a sub-shape of another label's shape.
func (n *Node) MarkSubShape() *Node {
	n.subShape = true
	return n
}

// --- Label interface ---

func (n *Node) Children() []Label {
	out := make([]Label, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) IsReference() bool { return n.ref != nil }

func (n *Node) Referred() (Label, bool) {
	if n.ref == nil {
		return nil, false
	}
	return n.ref, true
}

func (n *Node) IsFreeShape() bool { return n.free }

func (n *Node) IsSubShape() bool { return n.subShape }

func (n *Node) Name() (string, bool) { return n.name, n.hasName }

func (n *Node) Color(slot ColorType) (string, bool) {
	c, ok := n.colors[slot]
	return c, ok
}

func (n *Node) Shape() (kernel.Shape, bool) { return n.shape, n.hasShape }
