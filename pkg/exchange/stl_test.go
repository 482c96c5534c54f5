package exchange

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/tenon/pkg/kernel"
	"github.com/chazu/tenon/pkg/kernel/brep"
)

const asciiTriangle = `solid one
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid one
`

func TestFromSTL(t *testing.T) {
	node, err := FromSTL([]byte(asciiTriangle), brep.New())
	if err != nil {
		t.Fatalf("FromSTL() error: %v", err)
	}
	if node.Name != "STL Shape" {
		t.Errorf("node name = %q, want %q", node.Name, "STL Shape")
	}
	if node.IsGroup() || len(node.Children) != 0 {
		t.Fatal("STL import must be a single leaf node")
	}
	sub := node.Shape.SubShapes()
	if len(sub) != 1 {
		t.Fatalf("compound has %d faces, want 1", len(sub))
	}
	if sub[0].Kind() != kernel.KindFace {
		t.Errorf("sub-shape kind = %v, want FACE", sub[0].Kind())
	}
}

func TestFromSTLBadInput(t *testing.T) {
	if _, err := FromSTL([]byte("not an stl"), brep.New()); err == nil {
		t.Error("FromSTL() succeeded on garbage")
	}
}

func TestToSTLTriangulatesFaces(t *testing.T) {
	k := brep.New()
	quad, err := k.MakeFaceFromPolygon([]kernel.Point{
		{}, {X: 2}, {X: 2, Y: 2}, {Y: 2},
	})
	if err != nil {
		t.Fatalf("MakeFaceFromPolygon() error: %v", err)
	}

	var buf bytes.Buffer
	if err := ToSTL(&buf, []kernel.Shape{quad}); err != nil {
		t.Fatalf("ToSTL() error: %v", err)
	}
	// A quad fans into two facets.
	if got := strings.Count(buf.String(), "endfacet"); got != 2 {
		t.Errorf("output has %d facets, want 2\n%s", got, buf.String())
	}
}

func TestToSTLIgnoresWireGeometry(t *testing.T) {
	k := brep.New()
	w, _ := k.MakeWireFromPoints([]kernel.Point{{X: 0}, {X: 1}}, false)

	var buf bytes.Buffer
	if err := ToSTL(&buf, []kernel.Shape{w}); err != nil {
		t.Fatalf("ToSTL() error: %v", err)
	}
	if strings.Contains(buf.String(), "facet") {
		t.Error("wire geometry produced facets")
	}
}

func TestSTLDXFShareNodeShape(t *testing.T) {
	// Both importers produce the same uniform node shape: a leaf with a
	// compound. Consumers never branch on the source format.
	k := brep.New()
	stlNode, err := FromSTL([]byte(asciiTriangle), k)
	if err != nil {
		t.Fatalf("FromSTL() error: %v", err)
	}
	dxfNode, err := FromDXF([]byte(twoEntityDXF), k)
	if err != nil {
		t.Fatalf("FromDXF() error: %v", err)
	}
	for _, node := range []*ShapeNode{stlNode, dxfNode} {
		if node.IsGroup() {
			t.Errorf("%s: import node must be a leaf with a shape", node.Name)
		}
		if node.Shape.Kind() != kernel.KindCompound {
			t.Errorf("%s: shape kind = %v, want COMPOUND", node.Name, node.Shape.Kind())
		}
	}
}
