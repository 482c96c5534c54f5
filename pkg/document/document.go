// Package document defines the read-only query interface onto a CAD
// document's label tree, the structure STEP and IGES importers populate
// with named, colored, shared sub-shapes. The scene-graph classifier
// consumes documents exclusively through this interface; the in-memory
// Store is one implementation, a real exchange reader would be another.
package document

import (
	"github.com/chazu/tenon/pkg/kernel"
)

// ColorType selects one of a label's color slots.
type ColorType int

const (
	ColorSurface ColorType = iota
	ColorCurve
	ColorGeneric
)

// Label is one node in a document's label tree. A label either carries
// attributes directly or is a reference to another label; references
// are resolved explicitly with Referred, never implicitly.
type Label interface {
	// Children returns the direct child labels in document order.
	Children() []Label

	// IsReference reports whether the label refers to another label.
	IsReference() bool

	// Referred resolves a reference label to the label it refers to.
	// ok is false when the label is not a reference.
	Referred() (ref Label, ok bool)

	// IsFreeShape reports whether the label is a top-level shape,
	// i.e. not referenced as a component of any other label.
	IsFreeShape() bool

	// IsSubShape reports whether the label stands for a sub-shape of
	// another label's shape.
	IsSubShape() bool

	// Name returns the label's name attribute, if any.
	Name() (string, bool)

	// Color returns the color stored in the given slot, if any.
	Color(ColorType) (string, bool)

	// Shape returns the geometric shape attached to the label, if any.
	Shape() (kernel.Shape, bool)
}

// Document is the read-only view of a CAD document consumed by the
// classifier.
type Document interface {
	// Main returns the root label of the document's shape section.
	Main() Label
}
