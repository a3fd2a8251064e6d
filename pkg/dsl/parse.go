// Package dsl converts between diagrams and the nested-group textual
// diagram language: a line-oriented format where groups open with a
// brace, nodes declare a label and an icon, and edges connect two
// previously declared nodes.
//
//	cloud [label: "AWS Cloud", icon: aws-cloud] {
//	  web [label: "Web", icon: aws-ec2]
//	  db [label: "DB", icon: aws-rds]
//	}
//	web > db : "query"
//
// The package also emits two textual renderings of a diagram (the DSL
// itself and a mermaid-style flowchart) and detects which interchange
// format a piece of pasted text is in.
//
// Parsing is best-effort and partial: malformed lines, unmatched braces,
// and edges with unresolvable endpoints are silently skipped, never
// reported. One bad line must not fail a whole pasted import.
package dsl

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/archpad/archpad/pkg/model"
)

// Layout applied to imported entities. The DSL carries no geometry, so
// positions are synthesized: nodes fan out on a fixed grid, groups are
// offset and shrunk per nesting level with a floor on size.
const (
	gridCols    = 4
	cellWidth   = 180.0
	cellHeight  = 140.0
	baseOffset  = 80.0
	depthOffset = 40.0

	groupBaseWidth  = 640.0
	groupBaseHeight = 440.0
	groupShrinkW    = 80.0
	groupShrinkH    = 60.0
	groupMinWidth   = 240.0
	groupMinHeight  = 180.0
)

var (
	groupOpenRe = regexp.MustCompile(`^([\w.-]+)\s*\[\s*label:\s*"([^"]*)"\s*,\s*icon:\s*([\w-]+)\s*\]\s*\{$`)
	nodeRe      = regexp.MustCompile(`^([\w.-]+)\s*\[\s*label:\s*"([^"]*)"\s*,\s*icon:\s*([\w-]+)\s*\]$`)
	edgeRe      = regexp.MustCompile(`^([\w.-]+)\s*>\s*([\w.-]+)\s*(?::\s*"([^"]*)")?$`)
)

// newID generates entity ids for imported entities. Package-level so
// tests can substitute a deterministic sequence.
var newID = uuid.NewString

// Parse converts DSL text into a diagram. It never fails: lines that
// match no production are skipped and the rest of the input is still
// imported. Nodes, groups, and edges appear in first-seen order. No
// post-pass validation is performed.
//
// The scan is a single left-to-right pass over the lines, maintaining an
// explicit stack of currently open groups (innermost last) and a table
// mapping the DSL's in-text node identifiers to the generated node ids.
// Group identifiers never enter that table, so an edge naming a group is
// unresolvable and dropped. In-text identifiers are distinct from the
// generated entity ids.
func Parse(text string) *model.Diagram {
	d := model.New()

	var stack []string // open group ids, innermost last
	nodeIDs := make(map[string]string)
	itemCount := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "direction"):
			continue

		case line == "}":
			// Extra closing braces are tolerated.
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case groupOpenRe.MatchString(line):
			m := groupOpenRe.FindStringSubmatch(line)
			g := openGroup(m[2], len(stack))
			if len(stack) > 0 {
				g.ParentID = stack[len(stack)-1]
			}
			d.Groups = append(d.Groups, *g)
			stack = append(stack, g.ID)

		case nodeRe.MatchString(line):
			m := nodeRe.FindStringSubmatch(line)
			n := placeNode(m[2], m[3], itemCount, len(stack))
			if len(stack) > 0 {
				n.ParentID = stack[len(stack)-1]
			}
			d.Nodes = append(d.Nodes, *n)
			nodeIDs[m[1]] = n.ID
			itemCount++

		case edgeRe.MatchString(line):
			m := edgeRe.FindStringSubmatch(line)
			from, okFrom := nodeIDs[m[1]]
			to, okTo := nodeIDs[m[2]]
			// Groups cannot be edge endpoints; undefined idents are
			// dropped with the line.
			if !okFrom || !okTo {
				continue
			}
			d.Edges = append(d.Edges, model.Edge{
				ID:    newID(),
				From:  from,
				To:    to,
				Label: m[3],
			})
		}
	}
	return d
}

// openGroup creates a group for a group-open line. Visual attributes
// come from the container catalog; geometry from nesting depth.
func openGroup(label string, depth int) *model.Group {
	kind := ClassifyContainer(label)
	return &model.Group{
		ID:          newID(),
		Name:        label,
		Color:       kind.Color,
		BorderStyle: kind.Border,
		X:           baseOffset + float64(depth)*depthOffset,
		Y:           baseOffset + float64(depth)*depthOffset,
		Width:       max(groupBaseWidth-float64(depth)*groupShrinkW, groupMinWidth),
		Height:      max(groupBaseHeight-float64(depth)*groupShrinkH, groupMinHeight),
	}
}

// placeNode creates a node for a node line. The display override is only
// set when the literal label differs from the canonical service name.
func placeNode(label, icon string, counter, depth int) *model.Node {
	svc := ClassifyService(label, icon)
	n := &model.Node{
		ID:       newID(),
		BaseName: svc.Name,
		Color:    svc.Color,
		Category: svc.Category,
		X:        baseOffset + float64(depth)*depthOffset + float64(counter%gridCols)*cellWidth,
		Y:        baseOffset + float64(depth)*depthOffset + float64(counter/gridCols)*cellHeight,
	}
	if label != svc.Name {
		n.DisplayName = label
	}
	return n
}
