// Package export renders diagrams through Graphviz: groups become nested
// cluster subgraphs, nodes become boxes colored by service kind, and the
// DOT text can be rendered to SVG in-process.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/archpad/archpad/pkg/model"
)

// ToDOT converts a diagram to Graphviz DOT. Each root group opens a
// cluster subgraph; child groups nest inside their parent's cluster, so
// a cluster's opening line always precedes everything it contains.
func ToDOT(d *model.Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == "" {
			writeNode(&buf, &d.Nodes[i], 1)
		}
	}
	for i := range d.Groups {
		if d.Groups[i].ParentID == "" {
			writeCluster(&buf, d, &d.Groups[i], 1)
		}
	}

	buf.WriteString("\n")
	for _, e := range d.Edges {
		if d.Node(e.From) == nil || d.Node(e.To) == nil {
			continue
		}
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, d *model.Diagram, g *model.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, g.ID)
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, g.Name)
	if g.Color != "" {
		fmt.Fprintf(buf, "%s  color=%q;\n", indent, g.Color)
	}
	if g.Border() != model.BorderSolid {
		fmt.Fprintf(buf, "%s  style=%q;\n", indent, g.Border())
	}

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == g.ID {
			writeNode(buf, &d.Nodes[i], depth+1)
		}
	}
	for i := range d.Groups {
		if d.Groups[i].ParentID == g.ID {
			writeCluster(buf, d, &d.Groups[i], depth+1)
		}
	}

	fmt.Fprintf(buf, "%s}\n", indent)
}

func writeNode(buf *bytes.Buffer, n *model.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	attrs := []string{fmt.Sprintf("label=%q", n.Label())}
	if n.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", n.Color))
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(attrs, ", "))
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
	return buf.Bytes(), nil
}
