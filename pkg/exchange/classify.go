package exchange

import (
	"github.com/chazu/tenon/pkg/document"
	"github.com/chazu/tenon/pkg/kernel"
)

// colorSlots is the lookup priority for label colors: first hit wins.
var colorSlots = []document.ColorType{
	document.ColorSurface,
	document.ColorCurve,
	document.ColorGeneric,
}

// Classify walks the document's label tree and produces the uniform
// scene-graph tree. The main label is always a group node whose
// children are its free-shape children; below that, each label is
// classified as either a leaf mesh node carrying one concrete shape or
// a group node that recurses into free-shape children. Mesh shapes
// that are compounds are further decomposed by direct sub-shape
// iteration, so document-driven and topology-driven grouping compose
// transparently.
//
// The whole walk runs on an explicit work stack; document nesting
// depth never grows the goroutine stack.
func Classify(doc document.Document) *ShapeNode {
	main := doc.Main()
	root := newGroupNode(main)

	type frame struct {
		label  document.Label
		parent *ShapeNode
	}
	var work []frame
	children := main.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if isFreeShape(children[i]) {
			work = append(work, frame{children[i], root})
		}
	}

	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		if isMeshNode(f.label) {
			shape, _ := labelShape(f.label)
			node := decomposeShape(shape, f.label)
			f.parent.Children = append(f.parent.Children, node)
			continue
		}

		node := newGroupNode(f.label)
		f.parent.Children = append(f.parent.Children, node)
		sub := f.label.Children()
		for i := len(sub) - 1; i >= 0; i-- {
			if isFreeShape(sub[i]) {
				work = append(work, frame{sub[i], node})
			}
		}
	}
	return root
}

// isMeshNode decides whether a label stands for one concrete shape
// rather than a group of parts:
//
//  1. a label without children is a mesh node;
//  2. a label with a sub-shape child is a mesh node, taken whole
//     instead of descending into its structure;
//  3. a label whose children include no free shape is a mesh node;
//  4. anything else is a group.
func isMeshNode(label document.Label) bool {
	children := label.Children()
	if len(children) == 0 {
		return true
	}
	for _, child := range children {
		if child.IsSubShape() {
			return true
		}
	}
	for _, child := range children {
		if isFreeShape(child) {
			return false
		}
	}
	return true
}

// isFreeShape reports whether the label carries a shape and is flagged
// free (top-level, not a component of another label).
func isFreeShape(label document.Label) bool {
	if _, ok := labelShape(label); !ok {
		return false
	}
	return label.IsFreeShape()
}

// decomposeShape turns a mesh label's shape into its node. Compounds
// and composite solids become group nodes whose children are the
// direct sub-shapes, decomposed the same way; everything else is a
// leaf. Only the top node carries the label's name and color: nested
// sub-shapes have no labels of their own to resolve against.
func decomposeShape(shape kernel.Shape, label document.Label) *ShapeNode {
	name := labelName(label)
	color, _ := labelColor(label)

	if shape == nil {
		return &ShapeNode{Name: name, Color: color}
	}
	if !isAggregate(shape) {
		return &ShapeNode{Shape: shape, Name: name, Color: color}
	}

	top := &ShapeNode{Name: name, Color: color}
	type frame struct {
		shape  kernel.Shape
		parent *ShapeNode
	}
	var work []frame
	sub := shape.SubShapes()
	for i := len(sub) - 1; i >= 0; i-- {
		work = append(work, frame{sub[i], top})
	}
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]
		if isAggregate(f.shape) {
			node := &ShapeNode{}
			f.parent.Children = append(f.parent.Children, node)
			nested := f.shape.SubShapes()
			for i := len(nested) - 1; i >= 0; i-- {
				work = append(work, frame{nested[i], node})
			}
			continue
		}
		f.parent.Children = append(f.parent.Children, &ShapeNode{Shape: f.shape})
	}
	return top
}

func isAggregate(s kernel.Shape) bool {
	return s.Kind() == kernel.KindCompound || s.Kind() == kernel.KindCompSolid
}

// labelShape fetches the label's shape, following a reference chain if
// the label itself carries none.
func labelShape(label document.Label) (kernel.Shape, bool) {
	for label != nil {
		if s, ok := label.Shape(); ok {
			return s, true
		}
		ref, ok := label.Referred()
		if !ok {
			return nil, false
		}
		label = ref
	}
	return nil, false
}

// labelName resolves the label's name, following references before
// giving up.
func labelName(label document.Label) string {
	for label != nil {
		if label.IsReference() {
			ref, _ := label.Referred()
			label = ref
			continue
		}
		name, _ := label.Name()
		return name
	}
	return ""
}

// labelColor resolves the label's color: slots are tried in priority
// order on the label itself first, then on the referred label if the
// label is a reference. The result is normalized to #RRGGBB.
func labelColor(label document.Label) (string, bool) {
	for label != nil {
		for _, slot := range colorSlots {
			if c, ok := label.Color(slot); ok {
				return NormalizeColor(c)
			}
		}
		ref, ok := label.Referred()
		if !ok {
			return "", false
		}
		label = ref
	}
	return "", false
}

// newGroupNode builds a group node carrying the label's resolved name
// and color.
func newGroupNode(label document.Label) *ShapeNode {
	color, _ := labelColor(label)
	return &ShapeNode{Name: labelName(label), Color: color}
}
