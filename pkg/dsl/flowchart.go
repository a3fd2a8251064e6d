package dsl

import (
	"fmt"
	"strings"

	"github.com/archpad/archpad/pkg/model"
)

// EmitFlowchart renders a diagram as a mermaid-style flowchart. The
// traversal is structurally identical to [Emit] - root groups first,
// directly contained nodes, then child groups, then the block close -
// but wrapped in subgraph blocks, with edges as arrows and a trailing
// style directive carrying each node's color.
func EmitFlowchart(d *model.Diagram) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == "" {
			writeFlowNode(&b, &d.Nodes[i], 1)
		}
	}

	for i := range d.Groups {
		if d.Groups[i].ParentID == "" {
			flowGroup(&b, d, &d.Groups[i], 1)
		}
	}

	for i := range d.Edges {
		e := &d.Edges[i]
		if d.Node(e.From) == nil || d.Node(e.To) == nil {
			continue
		}
		if e.Label != "" {
			fmt.Fprintf(&b, "  %s -->|%s| %s\n", sanitizeIdent(e.From), e.Label, sanitizeIdent(e.To))
		} else {
			fmt.Fprintf(&b, "  %s --> %s\n", sanitizeIdent(e.From), sanitizeIdent(e.To))
		}
	}

	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.Color != "" {
			fmt.Fprintf(&b, "  style %s fill:%s\n", sanitizeIdent(n.ID), n.Color)
		}
	}

	return b.String()
}

func flowGroup(b *strings.Builder, d *model.Diagram, g *model.Group, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%ssubgraph %s[%q]\n", indent, sanitizeIdent(g.ID), g.Name)

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == g.ID {
			writeFlowNode(b, &d.Nodes[i], depth+1)
		}
	}
	for i := range d.Groups {
		if d.Groups[i].ParentID == g.ID {
			flowGroup(b, d, &d.Groups[i], depth+1)
		}
	}

	fmt.Fprintf(b, "%send\n", indent)
}

func writeFlowNode(b *strings.Builder, n *model.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s[%q]\n", indent, sanitizeIdent(n.ID), n.Label())
}
