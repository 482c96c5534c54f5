package exchange

import (
	"fmt"

	"github.com/chazu/tenon/pkg/dxf"
	"github.com/chazu/tenon/pkg/kernel"
)

// FromDXF parses ASCII DXF bytes into a single shape node. Unlike
// document-based formats, DXF has no assembly tree: the result is one
// synthetic leaf whose shape is a compound of every recognized entity
// and whose name encodes the recognized entity count. Unrecognized or
// incomplete entities are skipped; a parse with zero recognized
// entities still returns a node with an empty compound, and whether
// that constitutes failure is the caller's policy.
func FromDXF(data []byte, k kernel.Kernel) (*ShapeNode, error) {
	records, err := dxf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dxf import: %w", err)
	}

	var shapes []kernel.Shape
	for _, rec := range records {
		if s, ok := dxf.BuildShape(k, rec); ok {
			shapes = append(shapes, s)
		}
	}
	return &ShapeNode{
		Shape: k.MakeCompound(shapes),
		Name:  fmt.Sprintf("DXF Import (%d entities)", len(shapes)),
	}, nil
}

// ToDXF serializes shapes as ASCII DXF text. Export always produces a
// buffer; shapes that classify into no supported entity are omitted.
func ToDXF(shapes []kernel.Shape) string {
	return dxf.Write(shapes)
}
