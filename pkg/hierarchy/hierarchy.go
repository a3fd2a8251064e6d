// Package hierarchy resolves the containment tree formed by nested
// groups: geometric containment queries, innermost-parent inference,
// cycle prevention for the self-referential parent relation, recursive
// descendant collection, nesting depth, and auto-fit resizing.
//
// Geometric containment is derived from coordinates on every call, never
// stored; the stored ParentID relation can diverge from live geometry
// until a containment pass is re-run. All predicates here are pure and
// never fail - callers check the returned values before mutating state.
package hierarchy

import (
	"math"

	"github.com/archpad/archpad/pkg/model"
)

// Auto-fit geometry. Padding is added around the union of a group's
// rectangle and its children's bounding box; the result never shrinks
// below the size floor.
const (
	FitPadding = 20.0
	MinWidth   = 200.0
	MinHeight  = 150.0
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// NodeRect returns the nominal footprint of a node. Nodes store only a
// position; containment checks use the fixed model footprint.
func NodeRect(n *model.Node) Rect {
	return Rect{X: n.X, Y: n.Y, W: model.NodeWidth, H: model.NodeHeight}
}

// GroupRect returns the group's rectangle.
func GroupRect(g *model.Group) Rect {
	return Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height}
}

// IsContained reports whether r lies entirely within the group's
// rectangle. All four comparisons are non-strict, so a rectangle flush
// against the border still counts as contained.
func IsContained(r Rect, g *model.Group) bool {
	return r.X >= g.X &&
		r.Y >= g.Y &&
		r.X+r.W <= g.X+g.Width &&
		r.Y+r.H <= g.Y+g.Height
}

// FindParent returns the smallest group (by area) that fully contains r,
// or nil if none does. Ties keep the earlier group in collection order.
// excludeID skips one group, used when the rectangle being placed is that
// group itself (moving or resizing it).
//
// Smallest enclosing area is taken as the most specific match, so a
// rectangle inside a subnet inside a VPC resolves to the subnet rather
// than the outermost ancestor.
func FindParent(d *model.Diagram, r Rect, excludeID string) *model.Group {
	var best *model.Group
	bestArea := math.Inf(1)
	for i := range d.Groups {
		g := &d.Groups[i]
		if g.ID == excludeID || !IsContained(r, g) {
			continue
		}
		if area := g.Width * g.Height; area < bestArea {
			best, bestArea = g, area
		}
	}
	return best
}

// CollectDescendants returns every node and group transitively parented
// under groupID, recursing through child groups. Assumes the parent
// relation is acyclic; WouldCreateCycle guards every write that could
// break that assumption.
func CollectDescendants(d *model.Diagram, groupID string) ([]*model.Node, []*model.Group) {
	var nodes []*model.Node
	var groups []*model.Group

	for i := range d.Nodes {
		if d.Nodes[i].ParentID == groupID {
			nodes = append(nodes, &d.Nodes[i])
		}
	}
	for i := range d.Groups {
		if d.Groups[i].ParentID == groupID {
			g := &d.Groups[i]
			groups = append(groups, g)
			cn, cg := CollectDescendants(d, g.ID)
			nodes = append(nodes, cn...)
			groups = append(groups, cg...)
		}
	}
	return nodes, groups
}

// WouldCreateCycle reports whether parenting childID under parentID would
// make childID its own ancestor. It walks parentID's ancestor chain and
// returns true if the walk reaches childID (or the two ids are equal).
//
// Callers must obey the result: a reparent that would create a cycle is
// refused as a silent no-op, not an error.
func WouldCreateCycle(d *model.Diagram, childID, parentID string) bool {
	if childID == parentID {
		return true
	}
	seen := make(map[string]bool)
	for cur := parentID; cur != "" && !seen[cur]; {
		seen[cur] = true
		g := d.Group(cur)
		if g == nil {
			return false
		}
		if g.ParentID == childID {
			return true
		}
		cur = g.ParentID
	}
	return false
}

// Reparent sets the group's ParentID after a cycle check. Returns true if
// the reparent was applied, false if it was refused. An empty parentID
// moves the group to the root and always succeeds.
func Reparent(d *model.Diagram, groupID, parentID string) bool {
	g := d.Group(groupID)
	if g == nil {
		return false
	}
	if parentID != "" && WouldCreateCycle(d, groupID, parentID) {
		return false
	}
	g.ParentID = parentID
	return true
}

// DepthOf returns 0 for a root group and 1 + DepthOf(parent) otherwise.
// Used to order rendering and linearization; never stored. A dangling or
// cyclic parent chain terminates at the first repeated id.
func DepthOf(d *model.Diagram, groupID string) int {
	depth := 0
	seen := make(map[string]bool)
	for cur := groupID; !seen[cur]; {
		seen[cur] = true
		g := d.Group(cur)
		if g == nil || g.ParentID == "" {
			return depth
		}
		depth++
		cur = g.ParentID
	}
	return depth
}

// AutoFit grows the group to the union of its current rectangle and the
// bounding box of its direct child nodes, padded by FitPadding and
// optionally snapped to gridSize (0 disables snapping). The result never
// shrinks below the size floor. Returns false when the group does not
// exist or already fits.
//
// After resizing, any node whose containment changed gets its ParentID
// recomputed via FindParent - the two-phase move-then-resolve behavior.
func AutoFit(d *model.Diagram, groupID string, gridSize float64) bool {
	g := d.Group(groupID)
	if g == nil {
		return false
	}

	bounds := GroupRect(g)
	grown := false
	for i := range d.Nodes {
		if d.Nodes[i].ParentID != groupID {
			continue
		}
		nr := NodeRect(&d.Nodes[i])
		padded := Rect{
			X: nr.X - FitPadding,
			Y: nr.Y - FitPadding,
			W: nr.W + 2*FitPadding,
			H: nr.H + 2*FitPadding,
		}
		bounds = union(bounds, padded)
	}

	if gridSize > 0 {
		bounds = snap(bounds, gridSize)
	}
	bounds.W = math.Max(bounds.W, MinWidth)
	bounds.H = math.Max(bounds.H, MinHeight)

	if bounds != GroupRect(g) {
		g.X, g.Y, g.Width, g.Height = bounds.X, bounds.Y, bounds.W, bounds.H
		grown = true
	}

	resolveContainment(d, g)
	return grown
}

// resolveContainment recomputes ParentID for nodes whose containment
// relative to g changed after a resize.
func resolveContainment(d *model.Diagram, g *model.Group) {
	for i := range d.Nodes {
		n := &d.Nodes[i]
		inside := IsContained(NodeRect(n), g)
		switch {
		case inside && n.ParentID != g.ID,
			!inside && n.ParentID == g.ID:
			if p := FindParent(d, NodeRect(n), ""); p != nil {
				n.ParentID = p.ID
			} else {
				n.ParentID = ""
			}
		}
	}
}

func union(a, b Rect) Rect {
	x1 := math.Min(a.X, b.X)
	y1 := math.Min(a.Y, b.Y)
	x2 := math.Max(a.X+a.W, b.X+b.W)
	y2 := math.Max(a.Y+a.H, b.Y+b.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func snap(r Rect, grid float64) Rect {
	x1 := math.Floor(r.X/grid) * grid
	y1 := math.Floor(r.Y/grid) * grid
	x2 := math.Ceil((r.X+r.W)/grid) * grid
	y2 := math.Ceil((r.Y+r.H)/grid) * grid
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}
