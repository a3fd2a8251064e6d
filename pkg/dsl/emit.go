package dsl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/archpad/archpad/pkg/model"
)

var identRe = regexp.MustCompile(`[^A-Za-z0-9]`)

// sanitizeIdent replaces non-alphanumeric characters so a display label
// or entity id is usable as a DSL identifier.
func sanitizeIdent(s string) string {
	return identRe.ReplaceAllString(s, "_")
}

// Emit renders a diagram as DSL text: parentless nodes first as
// top-level declarations, then each root group recursively (open line,
// directly contained nodes, child groups, close brace), then all edges.
//
// Every group is visited exactly once, and a group's opening line
// strictly precedes every line for anything it transitively contains;
// its closing line strictly follows all of them. Depth controls
// indentation only, never ordering.
func Emit(d *model.Diagram) string {
	var b strings.Builder

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == "" {
			writeNodeLine(&b, &d.Nodes[i], 0)
		}
	}

	for i := range d.Groups {
		if d.Groups[i].ParentID == "" {
			emitGroup(&b, d, &d.Groups[i], 0)
		}
	}

	for i := range d.Edges {
		e := &d.Edges[i]
		from := d.Node(e.From)
		to := d.Node(e.To)
		if from == nil || to == nil {
			continue
		}
		if e.Label != "" {
			fmt.Fprintf(&b, "%s > %s : %q\n", nodeIdent(from), nodeIdent(to), e.Label)
		} else {
			fmt.Fprintf(&b, "%s > %s\n", nodeIdent(from), nodeIdent(to))
		}
	}

	return b.String()
}

func emitGroup(b *strings.Builder, d *model.Diagram, g *model.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s [label: %q, icon: %s] {\n", indent, sanitizeIdent(g.Name), g.Name, groupIcon(d, g))

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == g.ID {
			writeNodeLine(b, &d.Nodes[i], depth+1)
		}
	}
	for i := range d.Groups {
		if d.Groups[i].ParentID == g.ID {
			emitGroup(b, d, &d.Groups[i], depth+1)
		}
	}

	fmt.Fprintf(b, "%s}\n", indent)
}

func writeNodeLine(b *strings.Builder, n *model.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s [label: %q, icon: %s]\n", indent, nodeIdent(n), n.Label(), IconForService(n.BaseName))
}

func nodeIdent(n *model.Node) string {
	return sanitizeIdent(n.Label())
}

// groupIcon picks a representative icon for a group: from its name when
// the container catalog recognizes it, otherwise from the group's first
// contained node, otherwise the generic container icon.
func groupIcon(d *model.Diagram, g *model.Group) string {
	if kind := ClassifyContainer(g.Name); kind.Kind != GenericContainer.Kind {
		return kind.Icon
	}
	for i := range d.Nodes {
		if d.Nodes[i].ParentID == g.ID {
			return IconForService(d.Nodes[i].BaseName)
		}
	}
	return GenericContainer.Icon
}
