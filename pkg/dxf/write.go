package dxf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/tenon/pkg/kernel"
)

// Write serializes shapes as ASCII DXF. The output carries a minimal
// HEADER ($ACADVER, $INSUNITS), a TABLES section with the single
// default layer "0", and an ENTITIES section with one record per
// classifiable curve. Output order follows input shape order, then
// kernel edge iteration order; nothing is sorted. Shapes whose curves
// classify as neither line, circle nor trimmed circle are skipped
// silently, matching the importer's non-fatal philosophy.
func Write(shapes []kernel.Shape) string {
	var b strings.Builder

	// HEADER
	putPair(&b, 0, "SECTION")
	putPair(&b, 2, "HEADER")
	putPair(&b, 9, "$ACADVER")
	putPair(&b, 1, "AC1015")
	putPair(&b, 9, "$INSUNITS")
	putPair(&b, 70, "4")
	putPair(&b, 0, "ENDSEC")

	// TABLES with the single default layer.
	putPair(&b, 0, "SECTION")
	putPair(&b, 2, "TABLES")
	putPair(&b, 0, "TABLE")
	putPair(&b, 2, "LAYER")
	putPair(&b, 0, "LAYER")
	putPair(&b, 2, DefaultLayer)
	putPair(&b, 70, "0")
	putPair(&b, 62, "7")
	putPair(&b, 6, "CONTINUOUS")
	putPair(&b, 0, "ENDTAB")
	putPair(&b, 0, "ENDSEC")

	// ENTITIES
	putPair(&b, 0, "SECTION")
	putPair(&b, 2, "ENTITIES")
	for _, shape := range shapes {
		writeShape(&b, shape)
	}
	putPair(&b, 0, "ENDSEC")
	putPair(&b, 0, "EOF")

	return b.String()
}

func writeShape(b *strings.Builder, shape kernel.Shape) {
	for _, e := range kernel.Edges(shape) {
		writeEdge(b, e)
	}
	if w, ok := shape.(kernel.Wire); ok && shape.Kind() == kernel.KindWire {
		writePolyline(b, w)
	}
	if f, ok := shape.(kernel.Face); ok && shape.Kind() == kernel.KindFace {
		writeFace(b, f)
	}
}

func writeEdge(b *strings.Builder, e kernel.Edge) {
	first, last := e.Bounds()
	switch c := e.Curve(); c.Kind() {
	case kernel.CurveLine:
		p1 := c.Value(first)
		p2 := c.Value(last)
		entityHeader(b, "LINE")
		putPoint(b, 10, p1)
		putPoint(b, 11, p2)
	case kernel.CurveCircle:
		circle := c.(kernel.CircleCurve)
		entityHeader(b, "CIRCLE")
		putPoint(b, 10, circle.Center())
		putFloat(b, 40, circle.Radius())
	case kernel.CurveTrimmedCircle:
		trimmed := c.(kernel.TrimmedCurve)
		circle := trimmed.Basis().(kernel.CircleCurve)
		entityHeader(b, "ARC")
		putPoint(b, 10, circle.Center())
		putFloat(b, 40, circle.Radius())
		putFloat(b, 50, trimmed.FirstParameter()*180/math.Pi)
		putFloat(b, 51, trimmed.LastParameter()*180/math.Pi)
	}
}

// writePolyline emits one LWPOLYLINE listing each wire edge's start
// point in wire order.
func writePolyline(b *strings.Builder, w kernel.Wire) {
	edges := w.OrderedEdges()
	var points []kernel.Point
	for _, e := range edges {
		first, _ := e.Bounds()
		points = append(points, e.Curve().Value(first))
	}
	if len(points) == 0 {
		return
	}
	entityHeader(b, "LWPOLYLINE")
	putPair(b, 90, strconv.Itoa(len(points)))
	if wireClosed(edges) {
		putPair(b, 70, "1")
	} else {
		putPair(b, 70, "0")
	}
	for _, p := range points {
		putPoint(b, 10, p)
	}
}

// writeFace emits one 3DFACE from up to the first four boundary
// points, using the corner code triples the importer reads back.
func writeFace(b *strings.Builder, f kernel.Face) {
	var points []kernel.Point
	for _, e := range f.Boundary() {
		first, _ := e.Bounds()
		points = append(points, e.Curve().Value(first))
	}
	if len(points) < 3 {
		return
	}
	if len(points) > 4 {
		points = points[:4]
	}
	entityHeader(b, "3DFACE")
	for i, p := range points {
		putFloat(b, 10+i, p.X)
		putFloat(b, 20+i, p.Y)
		putFloat(b, 30+i, p.Z)
	}
}

// wireClosed reports whether the last edge ends where the first one
// starts.
func wireClosed(edges []kernel.Edge) bool {
	if len(edges) < 2 {
		return false
	}
	f0, _ := edges[0].Bounds()
	_, l1 := edges[len(edges)-1].Bounds()
	start := edges[0].Curve().Value(f0)
	end := edges[len(edges)-1].Curve().Value(l1)
	return end.Sub(start).Length() < 1e-9
}

// entityHeader starts an entity record on the default layer.
func entityHeader(b *strings.Builder, entityType string) {
	putPair(b, 0, entityType)
	putPair(b, 8, DefaultLayer)
}

// putPair writes one code/value pair. Codes are right-aligned to three
// columns, the traditional fixed-width DXF layout.
func putPair(b *strings.Builder, code int, value string) {
	fmt.Fprintf(b, "%3d\n%s\n", code, value)
}

// putFloat writes a float value in shortest round-trippable form, so
// re-importing the output reproduces coordinates exactly.
func putFloat(b *strings.Builder, code int, v float64) {
	putPair(b, code, strconv.FormatFloat(v, 'g', -1, 64))
}

// putPoint writes the X/Y/Z triple for a point using baseCode,
// baseCode+10 and baseCode+20.
func putPoint(b *strings.Builder, baseCode int, p kernel.Point) {
	putFloat(b, baseCode, p.X)
	putFloat(b, baseCode+10, p.Y)
	putFloat(b, baseCode+20, p.Z)
}
