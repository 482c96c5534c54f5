package dxf

import (
	"math"
	"strconv"

	"github.com/chazu/tenon/pkg/kernel"
)

// Polyline flag bits (group code 70).
const (
	flagClosed     = 1 << 0 // closing edge from last vertex back to first
	flagPolyline3D = 1 << 3 // vertex Z values are real, not elevation 0
)

// zAxis is the implicit entity plane normal for 2D DXF entities.
var zAxis = kernel.Point{X: 0, Y: 0, Z: 1}

// BuildShape converts an entity record into a kernel shape. The second
// return is false for unmodeled entity types and for records missing
// required fields; such entities are skipped, never fatal.
func BuildShape(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	switch rec.Type {
	case "LINE":
		return buildLine(k, rec)
	case "CIRCLE":
		return buildCircle(k, rec)
	case "ARC":
		return buildArc(k, rec)
	case "POLYLINE", "LWPOLYLINE":
		return buildPolyline(k, rec)
	case "3DFACE":
		return buildFace(k, rec)
	}
	return nil, false
}

func buildLine(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	x1, ok1 := rec.Float(10)
	y1, ok2 := rec.Float(20)
	x2, ok3 := rec.Float(11)
	y2, ok4 := rec.Float(21)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	s, err := k.MakeEdgeFromLine(
		kernel.Point{X: x1, Y: y1},
		kernel.Point{X: x2, Y: y2},
	)
	if err != nil {
		return nil, false
	}
	return s, true
}

func buildCircle(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	x, ok1 := rec.Float(10)
	y, ok2 := rec.Float(20)
	r, ok3 := rec.Float(40)
	if !ok1 || !ok2 || !ok3 {
		return nil, false
	}
	s, err := k.MakeEdgeFromCircle(kernel.Point{X: x, Y: y}, zAxis, r, 0, 2*math.Pi)
	if err != nil {
		return nil, false
	}
	return s, true
}

func buildArc(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	x, ok1 := rec.Float(10)
	y, ok2 := rec.Float(20)
	r, ok3 := rec.Float(40)
	start, ok4 := rec.Float(50)
	end, ok5 := rec.Float(51)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, false
	}
	s, err := k.MakeEdgeFromCircle(
		kernel.Point{X: x, Y: y}, zAxis, r,
		start*math.Pi/180, end*math.Pi/180,
	)
	if err != nil {
		return nil, false
	}
	return s, true
}

// buildPolyline assembles vertices by scanning the record's fields in
// file order: each code 10 starts a new vertex, 20 and 30 fill in the
// Y and Z of the vertex most recently started. Z is only honored when
// the 3D flag is set on a POLYLINE; LWPOLYLINE vertices are planar.
func buildPolyline(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	flags, _ := rec.Int(70)
	is3D := rec.Type == "POLYLINE" && flags&flagPolyline3D != 0

	type vertex struct {
		p    kernel.Point
		hasY bool
	}
	var verts []vertex
	for _, f := range rec.Fields {
		v, err := strconv.ParseFloat(f.Value, 64)
		if err != nil {
			continue
		}
		switch f.Code {
		case 10:
			verts = append(verts, vertex{p: kernel.Point{X: v}})
		case 20:
			if len(verts) > 0 {
				verts[len(verts)-1].p.Y = v
				verts[len(verts)-1].hasY = true
			}
		case 30:
			if len(verts) > 0 && is3D {
				verts[len(verts)-1].p.Z = v
			}
		}
	}

	var points []kernel.Point
	for _, v := range verts {
		if v.hasY {
			points = append(points, v.p)
		}
	}
	if len(points) < 2 {
		return nil, false
	}

	closed := rec.Type == "LWPOLYLINE" && len(points) > 2 && flags&flagClosed != 0
	s, err := k.MakeWireFromPoints(points, closed)
	if err != nil {
		return nil, false
	}
	return s, true
}

// buildFace reads up to four corners from code triples 10/20/30,
// 11/21/31, 12/22/32 and 13/23/33. Three corners make a triangle, four
// a quad with the last edge closed automatically.
func buildFace(k kernel.Kernel, rec Record) (kernel.Shape, bool) {
	var points []kernel.Point
	for i := 0; i < 4; i++ {
		x, ok1 := rec.Float(10 + i)
		y, ok2 := rec.Float(20 + i)
		z, ok3 := rec.Float(30 + i)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		points = append(points, kernel.Point{X: x, Y: y, Z: z})
	}
	if len(points) < 3 {
		return nil, false
	}
	s, err := k.MakeFaceFromPolygon(points)
	if err != nil {
		return nil, false
	}
	return s, true
}
