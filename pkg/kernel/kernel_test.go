package kernel

import "testing"

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshAddTriangle(t *testing.T) {
	m := &Mesh{}
	a := Point{X: 0}
	b := Point{X: 1}
	c := Point{Y: 1}
	m.AddTriangle(a, b, c, Point{Z: 1})

	if got := m.TriangleCount(); got != 1 {
		t.Fatalf("TriangleCount() = %d, want 1", got)
	}
	if got := m.VertexCount(); got != 3 {
		t.Fatalf("VertexCount() = %d, want 3", got)
	}
	ga, gb, gc := m.Triangle(0)
	if ga != a || gb != b || gc != c {
		t.Errorf("Triangle(0) = %v %v %v, want %v %v %v", ga, gb, gc, a, b, c)
	}
	if m.Normals[2] != 1 {
		t.Errorf("normal z = %v, want 1", m.Normals[2])
	}
}

func TestMeshIsEmpty(t *testing.T) {
	t.Run("empty mesh", func(t *testing.T) {
		m := &Mesh{}
		if !m.IsEmpty() {
			t.Error("IsEmpty() = false for empty mesh, want true")
		}
	})
	t.Run("non-empty mesh", func(t *testing.T) {
		m := &Mesh{Vertices: []float32{1, 2, 3}}
		if m.IsEmpty() {
			t.Error("IsEmpty() = true for non-empty mesh, want false")
		}
	})
}

func TestShapeKindString(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want string
	}{
		{KindEdge, "EDGE"},
		{KindWire, "WIRE"},
		{KindFace, "FACE"},
		{KindCompSolid, "COMPSOLID"},
		{KindCompound, "COMPOUND"},
		{ShapeKind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ShapeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

// --- Edge exploration over stub shapes ---

// stubEdge is a minimal Edge implementation.
type stubEdge struct{}

func (stubEdge) Kind() ShapeKind               { return KindEdge }
func (stubEdge) SubShapes() []Shape            { return nil }
func (stubEdge) Curve() Curve                  { return nil }
func (stubEdge) Bounds() (first, last float64) { return 0, 1 }

// stubCompound is a minimal aggregate shape.
type stubCompound struct{ sub []Shape }

func (c stubCompound) Kind() ShapeKind    { return KindCompound }
func (c stubCompound) SubShapes() []Shape { return c.sub }

func TestEdges(t *testing.T) {
	t.Run("nil shape", func(t *testing.T) {
		if got := Edges(nil); got != nil {
			t.Errorf("Edges(nil) = %v, want nil", got)
		}
	})
	t.Run("single edge", func(t *testing.T) {
		if got := len(Edges(stubEdge{})); got != 1 {
			t.Errorf("Edges() found %d edges, want 1", got)
		}
	})
	t.Run("nested compounds", func(t *testing.T) {
		inner := stubCompound{sub: []Shape{stubEdge{}, stubEdge{}}}
		outer := stubCompound{sub: []Shape{stubEdge{}, inner}}
		if got := len(Edges(outer)); got != 3 {
			t.Errorf("Edges() found %d edges, want 3", got)
		}
	})
	t.Run("empty compound", func(t *testing.T) {
		if got := len(Edges(stubCompound{})); got != 0 {
			t.Errorf("Edges() found %d edges, want 0", got)
		}
	})
}
