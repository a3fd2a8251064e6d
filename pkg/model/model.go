// Package model defines the diagram entities shared by every other
// component: nodes (placed services), groups (nested rectangular
// containers), edges (directed labeled connections), and the versioned
// Diagram envelope that holds them.
//
// The model is the canonical in-memory and JSON form. Codec, parser, and
// emitters all consume and produce it; none of them mutate a Diagram they
// were handed - use [Diagram.Clone] before transforming.
package model

import (
	"slices"
	"time"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// FormatVersion is the current diagram envelope version.
const FormatVersion = 2

// Border styles for groups. An empty BorderStyle is semantically solid.
const (
	BorderSolid  = "solid"
	BorderDashed = "dashed"
	BorderDotted = "dotted"
)

// DefaultZoom is the zoom level implied when settings omit one (percent).
const DefaultZoom = 100.0

// Nodes store a position but no size; geometric containment checks use
// this nominal footprint.
const (
	NodeWidth  = 120.0
	NodeHeight = 80.0
)

// =============================================================================
// Entities
// =============================================================================

// Node is a placed service instance on the canvas.
//
// DisplayName is an optional user override; when empty the node displays
// its BaseName. ParentID references the containing Group, or is empty for
// root-level nodes.
type Node struct {
	ID          string  `json:"id"`
	BaseName    string  `json:"baseName"`
	DisplayName string  `json:"displayName,omitempty"`
	Color       string  `json:"color,omitempty"`
	Category    string  `json:"category,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	ParentID    string  `json:"parentContainerId,omitempty"`
}

// Label returns the display name if an override is set, otherwise BaseName.
func (n *Node) Label() string {
	if n.DisplayName != "" {
		return n.DisplayName
	}
	return n.BaseName
}

// Group is a rectangular container. Groups nest through ParentID, which
// references another Group or is empty for root-level groups. The parent
// relation is an id reference only - cycle prevention is the caller's
// responsibility (see the hierarchy package).
type Group struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	BorderStyle string  `json:"borderStyle,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	ParentID    string  `json:"parentContainerId,omitempty"`
}

// Border returns the effective border style, treating empty as solid.
func (g *Group) Border() string {
	if g.BorderStyle == "" {
		return BorderSolid
	}
	return g.BorderStyle
}

// Edge is a directed connection between two nodes. Both endpoints must
// reference existing nodes at use time; the codec does not enforce this.
// An empty Label means the edge is unlabeled.
type Edge struct {
	ID    string `json:"id"`
	From  string `json:"fromNodeId"`
	To    string `json:"toNodeId"`
	Label string `json:"label,omitempty"`
}

// Settings holds per-diagram view settings.
type Settings struct {
	ZoomLevel float64 `json:"zoomLevel,omitempty"`
}

// Diagram is the versioned envelope for a complete diagram. Collections
// preserve insertion order; ids are unique within each collection but the
// envelope never deduplicates them.
type Diagram struct {
	FormatVersion int       `json:"formatVersion"`
	SavedAt       time.Time `json:"savedAt"`
	Nodes         []Node    `json:"nodes"`
	Groups        []Group   `json:"groups"`
	Edges         []Edge    `json:"edges"`
	Settings      *Settings `json:"settings,omitempty"`
}

// New creates an empty diagram stamped with the current format version.
func New() *Diagram {
	return &Diagram{
		FormatVersion: FormatVersion,
		SavedAt:       time.Now().UTC().Truncate(time.Second),
	}
}

// Zoom returns the effective zoom level, treating absent settings as the
// default.
func (d *Diagram) Zoom() float64 {
	if d.Settings == nil || d.Settings.ZoomLevel == 0 {
		return DefaultZoom
	}
	return d.Settings.ZoomLevel
}

// =============================================================================
// Lookups
// =============================================================================

// Node returns the node with the given id, or nil if not found.
func (d *Diagram) Node(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// Group returns the group with the given id, or nil if not found.
func (d *Diagram) Group(id string) *Group {
	for i := range d.Groups {
		if d.Groups[i].ID == id {
			return &d.Groups[i]
		}
	}
	return nil
}

// =============================================================================
// Lifecycle
// =============================================================================

// RemoveNode deletes the node and every edge referencing it.
func (d *Diagram) RemoveNode(id string) {
	d.Nodes = slices.DeleteFunc(d.Nodes, func(n Node) bool { return n.ID == id })
	d.Edges = slices.DeleteFunc(d.Edges, func(e Edge) bool { return e.From == id || e.To == id })
}

// RemoveGroup deletes the group, clears ParentID on nodes it directly
// contained, and removes child groups recursively.
func (d *Diagram) RemoveGroup(id string) {
	for i := range d.Nodes {
		if d.Nodes[i].ParentID == id {
			d.Nodes[i].ParentID = ""
		}
	}

	var children []string
	for i := range d.Groups {
		if d.Groups[i].ParentID == id {
			children = append(children, d.Groups[i].ID)
		}
	}

	d.Groups = slices.DeleteFunc(d.Groups, func(g Group) bool { return g.ID == id })
	for _, c := range children {
		d.RemoveGroup(c)
	}
}

// Clone returns a deep copy of the diagram. Collections are copied so the
// clone can be transformed without affecting the original.
func (d *Diagram) Clone() *Diagram {
	out := &Diagram{
		FormatVersion: d.FormatVersion,
		SavedAt:       d.SavedAt,
		Nodes:         slices.Clone(d.Nodes),
		Groups:        slices.Clone(d.Groups),
		Edges:         slices.Clone(d.Edges),
	}
	if d.Settings != nil {
		s := *d.Settings
		out.Settings = &s
	}
	return out
}
