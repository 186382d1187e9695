package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/vtdesigner/pkg/pool"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Name returns the label of an object. Nil labels objects by ID.
	Name func(pool.ObjectID) string

	// Shared includes references to shared objects as dashed edges.
	Shared bool

	// Detailed adds the type and ID below each name.
	Detailed bool
}

// ToDOT converts the pool to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(p *pool.Pool, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, o := range p.Objects() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", o.ObjectID().String(), fmtLabel(o, opts))
	}

	missing := make(map[pool.ObjectID]bool)
	buf.WriteString("\n")
	for _, o := range p.Objects() {
		for _, r := range pool.References(o) {
			if r.Edge == pool.EdgeShared && !opts.Shared {
				continue
			}
			if !p.Has(r.ID) {
				missing[r.ID] = true
			}
			attrs := ""
			if r.Edge == pool.EdgeShared {
				attrs = " [style=dashed, color=grey40]"
			}
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", o.ObjectID().String(), r.ID.String(), attrs)
		}
	}

	if len(missing) > 0 {
		buf.WriteString("\n")
		for _, id := range sortedIDs(missing) {
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,dashed\", fontcolor=red];\n",
				id.String(), fmt.Sprintf("missing object\n%d", id))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(o pool.Object, opts Options) string {
	name := o.ObjectID().String()
	if opts.Name != nil {
		name = opts.Name(o.ObjectID())
	}
	if !opts.Detailed {
		return name
	}
	return fmt.Sprintf("%s\n%d (%s)", name, o.ObjectID(), o.Type())
}

func sortedIDs(set map[pool.ObjectID]bool) []pool.ObjectID {
	return slices.Sorted(maps.Keys(set))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from its
// origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
