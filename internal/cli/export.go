package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/editor"
	"github.com/matzehuels/vtdesigner/pkg/errors"
	"github.com/matzehuels/vtdesigner/pkg/export"
	"github.com/matzehuels/vtdesigner/pkg/pool"
	"github.com/matzehuels/vtdesigner/pkg/render/nodelink"
)

// Dump formats.
const (
	dumpYAML = "yaml"
	dumpJSON = "json"
)

// exportCommand writes a pool as a raw pool, project, C header or dump.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		asIOP     bool
		asProject bool
		asHeader  bool
		dump      string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a pool as a raw pool, project, C header or YAML/JSON dump",
		Long: `Export the pool in another format. Exactly one of --iop, --project,
--header or --dump is required. Headers and dumps go to stdout unless
--output is set; raw pools and projects default to the input name with the
new extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chosen := 0
			for _, b := range []bool{asIOP, asProject, asHeader, dump != ""} {
				if b {
					chosen++
				}
			}
			if chosen != 1 {
				return errors.New(errors.ErrCodeInvalidInput, "choose exactly one of --iop, --project, --header or --dump")
			}

			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}

			switch {
			case asIOP, asProject:
				ext := ".iop"
				if asProject {
					ext = ".aitp"
				}
				if output == "" {
					output = replaceExt(args[0], ext)
				}
				if output == args[0] {
					return errors.New(errors.ErrCodeInvalidInput, "refusing to overwrite the input file")
				}
				if asIOP != editor.IsRawPool(output) {
					return errors.New(errors.ErrCodeInvalidInput, "output %s does not match the export format", output)
				}
				return saveDocument(doc, output)
			case asHeader:
				return writeOutput(cmd, output, func(w io.Writer) error {
					return export.Header(w, doc.Pool(), doc.Name)
				})
			default:
				return writeDump(cmd, doc, dump, output)
			}
		},
	}

	cmd.Flags().BoolVar(&asIOP, "iop", false, "write a raw object pool")
	cmd.Flags().BoolVar(&asProject, "project", false, "write a project file")
	cmd.Flags().BoolVar(&asHeader, "header", false, "write a C header with one #define per object")
	cmd.Flags().StringVar(&dump, "dump", "", "write a readable dump (yaml or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func writeDump(cmd *cobra.Command, doc *document.Document, format, output string) error {
	notes := func(id pool.ObjectID) string {
		info, _ := doc.Info(id)
		return info.Notes
	}
	entries := export.Dump(doc.Pool(), doc.Name, notes)
	switch strings.ToLower(format) {
	case dumpYAML:
		return writeOutput(cmd, output, func(w io.Writer) error { return export.YAML(w, entries) })
	case dumpJSON:
		return writeOutput(cmd, output, func(w io.Writer) error { return export.JSON(w, entries) })
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown dump format %q (want yaml or json)", format)
}

// graphCommand draws the structural hierarchy as DOT or SVG.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		shared   bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Draw the object hierarchy with Graphviz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := openDocument(args[0])
			if err != nil {
				return err
			}
			dot := nodelink.ToDOT(doc.Pool(), nodelink.Options{
				Name:     doc.Name,
				Shared:   shared,
				Detailed: detailed,
			})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				spinner := newSpinnerWithContext(cmd.Context(), "Rendering SVG...")
				spinner.Start()
				data, err = nodelink.RenderSVG(cmd.Context(), dot)
				spinner.Stop()
				if err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown graph format %q (want dot or svg)", format)
			}

			return writeOutput(cmd, output, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format (dot or svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&shared, "shared", false, "include attribute, variable and macro references")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show IDs and types in node labels")
	return cmd
}

// writeOutput renders with fn to path, or to the command's stdout when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(cmd.OutOrStdout())
	}
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	printFile(path)
	return nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
