package exchange

import (
	"fmt"
	"io"

	"github.com/chazu/tenon/pkg/kernel"
	"github.com/chazu/tenon/pkg/stl"
)

// FromSTL parses STL bytes into a single shape node named "STL Shape":
// one triangular face per facet, aggregated into a compound. Like DXF,
// STL carries no assembly structure, so the node has no children.
// Degenerate facets are skipped.
func FromSTL(data []byte, k kernel.Kernel) (*ShapeNode, error) {
	mesh, err := stl.Read(data)
	if err != nil {
		return nil, fmt.Errorf("stl import: %w", err)
	}

	var faces []kernel.Shape
	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		f, err := k.MakeFaceFromPolygon([]kernel.Point{a, b, c})
		if err != nil {
			continue
		}
		faces = append(faces, f)
	}
	return &ShapeNode{Shape: k.MakeCompound(faces), Name: "STL Shape"}, nil
}

// ToSTL triangulates the faces of shapes and writes them as ASCII STL.
func ToSTL(w io.Writer, shapes []kernel.Shape) error {
	mesh := &kernel.Mesh{}
	for _, s := range shapes {
		meshShape(mesh, s)
	}
	return stl.Write(w, mesh)
}

// meshShape fan-triangulates every face reachable from s into mesh.
// Non-face geometry (bare edges, wires) has no surface to triangulate
// and contributes nothing.
func meshShape(mesh *kernel.Mesh, s kernel.Shape) {
	work := []kernel.Shape{s}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		f, ok := cur.(kernel.Face)
		if !ok {
			sub := cur.SubShapes()
			for i := len(sub) - 1; i >= 0; i-- {
				work = append(work, sub[i])
			}
			continue
		}
		points := boundaryPoints(f)
		if len(points) < 3 {
			continue
		}
		for i := 1; i < len(points)-1; i++ {
			mesh.AddTriangle(points[0], points[i], points[i+1], kernel.Point{})
		}
	}
}

// boundaryPoints returns the start point of each boundary edge in
// wire order.
func boundaryPoints(f kernel.Face) []kernel.Point {
	var points []kernel.Point
	for _, e := range f.Boundary() {
		first, _ := e.Bounds()
		points = append(points, e.Curve().Value(first))
	}
	return points
}
