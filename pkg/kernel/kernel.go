// Package kernel defines the abstract geometry kernel interface.
// Implementations (brep) provide curve and topology construction behind
// this interface. The kernel abstraction allows swapping backends
// without changing the codecs built on top of it.
package kernel

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Point is a 3D cartesian point. It aliases the sdfx vector type so
// kernel consumers get vector arithmetic for free.
type Point = v3.Vec

// ShapeKind classifies a shape's topological type.
type ShapeKind int

const (
	KindEdge ShapeKind = iota
	KindWire
	KindFace
	KindShell
	KindSolid
	KindCompSolid
	KindCompound
)

// String returns the conventional upper-case kind name.
func (k ShapeKind) String() string {
	switch k {
	case KindEdge:
		return "EDGE"
	case KindWire:
		return "WIRE"
	case KindFace:
		return "FACE"
	case KindShell:
		return "SHELL"
	case KindSolid:
		return "SOLID"
	case KindCompSolid:
		return "COMPSOLID"
	case KindCompound:
		return "COMPOUND"
	}
	return "UNKNOWN"
}

// CurveKind classifies the curve underlying an edge.
type CurveKind int

const (
	CurveLine CurveKind = iota
	CurveCircle
	CurveTrimmedCircle
	CurveOther
)

// Curve is a parametric 3D curve.
type Curve interface {
	Kind() CurveKind
	// Value evaluates the curve at parameter u.
	Value(u float64) Point
}

// CircleCurve exposes the geometry of a circular curve.
type CircleCurve interface {
	Curve
	Center() Point
	Normal() Point
	Radius() float64
}

// TrimmedCurve is a curve restricted to a parameter interval of a
// basis curve.
type TrimmedCurve interface {
	Curve
	Basis() Curve
	FirstParameter() float64
	LastParameter() float64
}

// Shape is an opaque handle to a geometry kernel shape.
// Implementations wrap their internal representation.
type Shape interface {
	Kind() ShapeKind
	// SubShapes returns the direct sub-shapes in construction order.
	// It returns nil for shapes with no sub-structure.
	SubShapes() []Shape
}

// Edge is a bounded piece of a curve.
type Edge interface {
	Shape
	Curve() Curve
	// Bounds returns the parametric range of the edge on its curve.
	Bounds() (first, last float64)
}

// Wire is a connected sequence of edges.
type Wire interface {
	Shape
	// OrderedEdges returns the wire's edges in connection order.
	OrderedEdges() []Edge
}

// Face is a surface patch bounded by a wire.
type Face interface {
	Shape
	// Boundary returns the outer boundary edges in wire order.
	Boundary() []Edge
}

// Kernel is the abstract geometry kernel interface.
// Implementations (brep) provide topology construction behind this
// interface.
type Kernel interface {
	// MakeEdgeFromLine builds a straight edge from p1 to p2.
	MakeEdgeFromLine(p1, p2 Point) (Shape, error)

	// MakeEdgeFromCircle builds a circular edge around center with the
	// given plane normal and radius, trimmed to [startParam, endParam]
	// in radians. A full parameter range yields a circle edge, a
	// partial one an arc.
	MakeEdgeFromCircle(center, normal Point, radius, startParam, endParam float64) (Shape, error)

	// MakeWireFromPoints chains the points into straight edges,
	// appending a closing edge back to the first point when closed is
	// set.
	MakeWireFromPoints(points []Point, closed bool) (Shape, error)

	// MakeFaceFromPolygon builds a planar face bounded by the closed
	// polygon through the points.
	MakeFaceFromPolygon(points []Point) (Shape, error)

	// MakeCompound aggregates shapes into a compound, preserving order.
	MakeCompound(shapes []Shape) Shape
}

// Edges returns every edge reachable from s, in depth-first sub-shape
// order. The walk is iterative so deeply nested compounds cannot
// exhaust the goroutine stack.
func Edges(s Shape) []Edge {
	if s == nil {
		return nil
	}
	var edges []Edge
	work := []Shape{s}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		if e, ok := cur.(Edge); ok {
			edges = append(edges, e)
			continue
		}
		sub := cur.SubShapes()
		for i := len(sub) - 1; i >= 0; i-- {
			work = append(work, sub[i])
		}
	}
	return edges
}
