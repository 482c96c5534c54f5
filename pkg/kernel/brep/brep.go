// Package brep implements the kernel.Kernel interface with analytic
// curves and explicit topology. It models exactly the primitives the
// exchange codecs need: line and circle edges, wires of straight
// segments, planar polygonal faces and compounds.
package brep

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/tenon/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// pointTol is the distance below which two points are the same vertex.
const pointTol = 1e-9

// fullCircleTol decides whether a parameter range covers a whole circle.
const fullCircleTol = 1e-9

// Kernel implements kernel.Kernel with analytic geometry.
type Kernel struct{}

// New returns a new analytic B-rep kernel.
func New() *Kernel {
	return &Kernel{}
}

// --- Curves ---

// lineCurve is an unbounded straight line, parametrized by arc length
// from origin along a unit direction.
type lineCurve struct {
	origin kernel.Point
	dir    kernel.Point
}

func (c *lineCurve) Kind() kernel.CurveKind { return kernel.CurveLine }

func (c *lineCurve) Value(u float64) kernel.Point {
	return c.origin.Add(c.dir.MulScalar(u))
}

// circleCurve is a full circle, parametrized by angle in radians from
// the plane's x axis.
type circleCurve struct {
	center kernel.Point
	normal kernel.Point
	xAxis  kernel.Point
	yAxis  kernel.Point
	radius float64
}

func (c *circleCurve) Kind() kernel.CurveKind { return kernel.CurveCircle }

func (c *circleCurve) Value(u float64) kernel.Point {
	p := c.xAxis.MulScalar(c.radius * math.Cos(u))
	q := c.yAxis.MulScalar(c.radius * math.Sin(u))
	return c.center.Add(p).Add(q)
}

func (c *circleCurve) Center() kernel.Point { return c.center }
func (c *circleCurve) Normal() kernel.Point { return c.normal }
func (c *circleCurve) Radius() float64      { return c.radius }

// trimmedCurve restricts a basis curve to a parameter interval.
type trimmedCurve struct {
	basis       kernel.Curve
	first, last float64
}

func (c *trimmedCurve) Kind() kernel.CurveKind {
	if c.basis.Kind() == kernel.CurveCircle {
		return kernel.CurveTrimmedCircle
	}
	return kernel.CurveOther
}

func (c *trimmedCurve) Value(u float64) kernel.Point { return c.basis.Value(u) }
func (c *trimmedCurve) Basis() kernel.Curve          { return c.basis }
func (c *trimmedCurve) FirstParameter() float64      { return c.first }
func (c *trimmedCurve) LastParameter() float64       { return c.last }

// --- Shapes ---

type edge struct {
	curve       kernel.Curve
	first, last float64
}

func (e *edge) Kind() kernel.ShapeKind        { return kernel.KindEdge }
func (e *edge) SubShapes() []kernel.Shape     { return nil }
func (e *edge) Curve() kernel.Curve           { return e.curve }
func (e *edge) Bounds() (first, last float64) { return e.first, e.last }

type wire struct {
	edges []kernel.Edge
}

func (w *wire) Kind() kernel.ShapeKind { return kernel.KindWire }

func (w *wire) SubShapes() []kernel.Shape {
	sub := make([]kernel.Shape, len(w.edges))
	for i, e := range w.edges {
		sub[i] = e
	}
	return sub
}

func (w *wire) OrderedEdges() []kernel.Edge { return w.edges }

type face struct {
	outer *wire
}

func (f *face) Kind() kernel.ShapeKind    { return kernel.KindFace }
func (f *face) SubShapes() []kernel.Shape { return []kernel.Shape{f.outer} }
func (f *face) Boundary() []kernel.Edge   { return f.outer.OrderedEdges() }

type compound struct {
	shapes []kernel.Shape
}

func (c *compound) Kind() kernel.ShapeKind    { return kernel.KindCompound }
func (c *compound) SubShapes() []kernel.Shape { return c.shapes }

// --- Constructors ---

// MakeEdgeFromLine builds a straight edge from p1 to p2.
func (k *Kernel) MakeEdgeFromLine(p1, p2 kernel.Point) (kernel.Shape, error) {
	d := p2.Sub(p1)
	length := d.Length()
	if length < pointTol {
		return nil, errors.New("brep: degenerate line edge")
	}
	c := &lineCurve{origin: p1, dir: d.DivScalar(length)}
	return &edge{curve: c, first: 0, last: length}, nil
}

// MakeEdgeFromCircle builds a circular edge. The parameter range is in
// radians; an end at or past a full turn from the start yields a
// circle edge, otherwise an arc backed by a trimmed curve. An end
// below the start is taken to wrap through zero, as DXF arc angles do.
func (k *Kernel) MakeEdgeFromCircle(center, normal kernel.Point, radius, startParam, endParam float64) (kernel.Shape, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("brep: non-positive circle radius %v", radius)
	}
	n := normal
	nl := n.Length()
	if nl < pointTol {
		return nil, errors.New("brep: zero circle normal")
	}
	n = n.DivScalar(nl)

	// Build the plane frame the way gp_Ax2 does: project a reference
	// axis onto the plane to get x, complete right-handed with y.
	ref := kernel.Point{X: 1, Y: 0, Z: 0}
	if math.Abs(n.Dot(ref)) > 1-pointTol {
		ref = kernel.Point{X: 0, Y: 1, Z: 0}
	}
	x := ref.Sub(n.MulScalar(ref.Dot(n)))
	x = x.DivScalar(x.Length())
	y := n.Cross(x)

	if endParam <= startParam {
		endParam += 2 * math.Pi
	}
	circle := &circleCurve{center: center, normal: n, xAxis: x, yAxis: y, radius: radius}
	if endParam-startParam >= 2*math.Pi-fullCircleTol {
		return &edge{curve: circle, first: startParam, last: startParam + 2*math.Pi}, nil
	}
	trimmed := &trimmedCurve{basis: circle, first: startParam, last: endParam}
	return &edge{curve: trimmed, first: startParam, last: endParam}, nil
}

// MakeWireFromPoints chains the points into straight edges. Zero-length
// segments from repeated points are dropped. When closed is set, a
// final edge from the last point back to the first is appended.
func (k *Kernel) MakeWireFromPoints(points []kernel.Point, closed bool) (kernel.Shape, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("brep: wire needs at least 2 points, got %d", len(points))
	}
	var edges []kernel.Edge
	for i := 0; i < len(points)-1; i++ {
		s, err := k.MakeEdgeFromLine(points[i], points[i+1])
		if err != nil {
			continue // repeated point
		}
		edges = append(edges, s.(kernel.Edge))
	}
	if closed {
		if s, err := k.MakeEdgeFromLine(points[len(points)-1], points[0]); err == nil {
			edges = append(edges, s.(kernel.Edge))
		}
	}
	if len(edges) == 0 {
		return nil, errors.New("brep: wire has no non-degenerate segments")
	}
	return &wire{edges: edges}, nil
}

// MakeFaceFromPolygon builds a face bounded by the closed polygon
// through the points. The polygon is always closed back to its first
// point.
func (k *Kernel) MakeFaceFromPolygon(points []kernel.Point) (kernel.Shape, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("brep: polygon face needs at least 3 points, got %d", len(points))
	}
	w, err := k.MakeWireFromPoints(points, true)
	if err != nil {
		return nil, err
	}
	return &face{outer: w.(*wire)}, nil
}

// MakeCompound aggregates shapes into a compound, preserving order.
func (k *Kernel) MakeCompound(shapes []kernel.Shape) kernel.Shape {
	c := &compound{shapes: make([]kernel.Shape, len(shapes))}
	copy(c.shapes, shapes)
	return c
}
