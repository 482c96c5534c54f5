package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/tenon/pkg/dxf"
	"github.com/chazu/tenon/pkg/exchange"
	"github.com/chazu/tenon/pkg/kernel"
	"github.com/chazu/tenon/pkg/kernel/brep"
)

// Version is set at build time.
var Version = "0.1.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tenon",
		Short:   "Convert engineering drawings between DXF and STL",
		Version: Version,
		Long: `tenon converts geometry between exchange formats.

DXF entities (LINE, CIRCLE, ARC, POLYLINE, LWPOLYLINE, 3DFACE) and STL
triangle meshes are imported into one uniform shape tree and can be
written back out as DXF or STL.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newInfoCmd())
	return rootCmd
}

func newConvertCmd() *cobra.Command {
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a drawing file; formats are chosen by extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := args[0], args[1]
			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}

			k := brep.New()
			node, err := importFile(input, data, k)
			if err != nil {
				return err
			}

			shapes := leafShapes(node)
			if len(shapes) == 0 && !allowEmpty {
				return fmt.Errorf("%s: no recognized entities", input)
			}
			return exportFile(output, shapes)
		},
	}
	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "write output even when the input has no recognized entities")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input>",
		Short: "Summarize a DXF file's entity records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			records, err := dxf.Parse(data)
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			layers := make(map[string]bool)
			for _, rec := range records {
				counts[rec.Type]++
				layers[rec.Layer] = true
			}
			types := make([]string, 0, len(counts))
			for t := range counts {
				types = append(types, t)
			}
			sort.Strings(types)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "TYPE\tCOUNT\n")
			for _, t := range types {
				fmt.Fprintf(w, "%s\t%d\n", t, counts[t])
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d records, %d layers\n", len(records), len(layers))
			return nil
		},
	}
}

// importFile picks the importer by file extension.
func importFile(path string, data []byte, k kernel.Kernel) (*exchange.ShapeNode, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".dxf":
		return exchange.FromDXF(data, k)
	case ".stl":
		return exchange.FromSTL(data, k)
	default:
		return nil, fmt.Errorf("unsupported input format %q", ext)
	}
}

// exportFile picks the exporter by file extension.
func exportFile(path string, shapes []kernel.Shape) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".dxf":
		return os.WriteFile(path, []byte(exchange.ToDXF(shapes)), 0o644)
	case ".stl":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return exchange.ToSTL(f, shapes)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// leafShapes collects the concrete shapes of the tree's leaf nodes.
// For DXF and STL imports this unwraps the single compound so the
// exporter sees the individual entities.
func leafShapes(node *exchange.ShapeNode) []kernel.Shape {
	var shapes []kernel.Shape
	node.Walk(func(n *exchange.ShapeNode) {
		if n.Shape == nil {
			return
		}
		if sub := n.Shape.SubShapes(); n.Shape.Kind() == kernel.KindCompound {
			shapes = append(shapes, sub...)
			return
		}
		shapes = append(shapes, n.Shape)
	})
	return shapes
}
