// Package stl reads and writes STL triangle meshes, in both the ASCII
// "solid/facet/vertex" grammar and the little-endian binary layout
// (80-byte header, triangle count, 50-byte records).
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chazu/tenon/pkg/kernel"
)

// binHeaderLen is the byte offset of the triangle count in binary STL.
const binHeaderLen = 80

// binTriangleLen is the size of one binary triangle record: 4 floats
// of 12 bytes (normal + 3 vertices) plus a 2-byte attribute count.
const binTriangleLen = 50

// Read parses STL bytes into a triangle mesh, auto-detecting the ASCII
// and binary variants.
func Read(data []byte) (*kernel.Mesh, error) {
	if looksASCII(data) {
		return readASCII(data)
	}
	return readBinary(data)
}

// looksASCII applies the conventional heuristic: an ASCII file starts
// with "solid" and actually contains a facet keyword. Binary files may
// also start with "solid" in their free-form header, so the keyword
// check is required.
func looksASCII(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	trimmed := bytes.TrimLeft(head, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(head, []byte("facet"))
}

func readASCII(data []byte) (*kernel.Mesh, error) {
	mesh := &kernel.Mesh{}

	var verts []kernel.Point
	var normal kernel.Point
	rest := data
	line := 0
	// Lines are split directly off the input slice; length is
	// unbounded and iteration always reaches the last byte.
	for len(rest) > 0 {
		var raw []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			raw, rest = rest[:i], rest[i+1:]
		} else {
			raw, rest = rest, nil
		}
		line++
		fields := strings.Fields(string(raw))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 && mesh.Name == "" {
				mesh.Name = fields[1]
			}
		case "facet":
			verts = verts[:0]
			normal = kernel.Point{}
			if len(fields) == 5 && fields[1] == "normal" {
				n, err := parsePoint(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("stl: bad facet normal at line %d: %w", line, err)
				}
				normal = n
			}
		case "vertex":
			if len(fields) != 4 {
				return nil, fmt.Errorf("stl: bad vertex at line %d", line)
			}
			p, err := parsePoint(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("stl: bad vertex at line %d: %w", line, err)
			}
			verts = append(verts, p)
		case "endfacet":
			if len(verts) != 3 {
				return nil, fmt.Errorf("stl: facet ending at line %d has %d vertices", line, len(verts))
			}
			mesh.AddTriangle(verts[0], verts[1], verts[2], facetNormal(normal, verts))
		}
	}
	return mesh, nil
}

func parsePoint(fields []string) (kernel.Point, error) {
	var coords [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return kernel.Point{}, err
		}
		coords[i] = v
	}
	return kernel.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func readBinary(data []byte) (*kernel.Mesh, error) {
	if len(data) < binHeaderLen+4 {
		return nil, errors.New("stl: binary input shorter than header")
	}
	count := binary.LittleEndian.Uint32(data[binHeaderLen:])
	body := data[binHeaderLen+4:]
	if uint64(len(body)) < uint64(count)*binTriangleLen {
		return nil, fmt.Errorf("stl: binary input truncated: %d triangles declared", count)
	}

	mesh := &kernel.Mesh{}
	for i := uint32(0); i < count; i++ {
		rec := body[i*binTriangleLen:]
		pts := make([]kernel.Point, 4) // normal + 3 vertices
		for j := range pts {
			pts[j] = kernel.Point{
				X: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[j*12:]))),
				Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[j*12+4:]))),
				Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[j*12+8:]))),
			}
		}
		mesh.AddTriangle(pts[1], pts[2], pts[3], facetNormal(pts[0], pts[1:]))
	}
	return mesh, nil
}

// facetNormal returns the stored normal, or recomputes it from the
// winding when the file carries a zero normal.
func facetNormal(stored kernel.Point, verts []kernel.Point) kernel.Point {
	if stored.Length() > 0 {
		return stored
	}
	n := verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0]))
	l := n.Length()
	if l == 0 {
		return kernel.Point{}
	}
	return n.DivScalar(l)
}

// Write serializes the mesh as ASCII STL.
func Write(w io.Writer, m *kernel.Mesh) error {
	name := m.Name
	if name == "" {
		name = "mesh"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := facetNormal(kernel.Point{}, []kernel.Point{a, b, c})
		fmt.Fprintf(bw, "  facet normal %s %s %s\n", ftoa(n.X), ftoa(n.Y), ftoa(n.Z))
		fmt.Fprintf(bw, "    outer loop\n")
		for _, p := range []kernel.Point{a, b, c} {
			fmt.Fprintf(bw, "      vertex %s %s %s\n", ftoa(p.X), ftoa(p.Y), ftoa(p.Z))
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
