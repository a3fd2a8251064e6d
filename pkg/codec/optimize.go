// Package codec turns diagrams into compact, URL-embeddable text and
// back. It has three layers:
//
//   - Optimize/Restore: an explicit default-elision pair. Optimize strips
//     field values that equal their documented defaults; Restore
//     reinstates every one of them. The round-trip law
//     Restore(Optimize(d)) == d is testable independently of compression.
//   - Compress/Decompress: optimized JSON through snappy, wrapped in the
//     base64 URL alphabet so the result survives a URL query parameter.
//     A legacy fixed-alphabet fallback keeps previously issued links
//     decodable.
//   - Share links: BuildShareLink/ParseShareLink glue the above onto a
//     ?data= query parameter, plus CheckSizeBudget for informational
//     size reporting.
//
// Write paths raise structured errors; every decode path returns nil
// instead of failing, since absent or corrupt share data is an expected
// case.
package codec

import (
	"strings"

	"github.com/archpad/archpad/pkg/model"
)

// Default table applied by Optimize and Restore:
//
//	displayName  dropped when equal to baseName (no override)
//	parentContainerId  dropped when empty (root level)
//	borderStyle  dropped when "solid"
//	label        dropped when empty or whitespace-only
//	settings     dropped when zoomLevel equals the default (100)

// Optimize returns an order-preserving copy of the diagram with every
// defaulted field stripped. The input is never mutated. Optimize is
// idempotent: Optimize(Optimize(d)) == Optimize(d).
func Optimize(d *model.Diagram) *model.Diagram {
	if d == nil {
		return nil
	}
	out := d.Clone()

	for i := range out.Nodes {
		n := &out.Nodes[i]
		if n.DisplayName == n.BaseName {
			n.DisplayName = ""
		}
	}
	for i := range out.Groups {
		g := &out.Groups[i]
		if g.BorderStyle == model.BorderSolid {
			g.BorderStyle = ""
		}
	}
	for i := range out.Edges {
		e := &out.Edges[i]
		if strings.TrimSpace(e.Label) == "" {
			e.Label = ""
		}
	}
	if out.Settings != nil && out.Settings.ZoomLevel == model.DefaultZoom {
		out.Settings = nil
	}
	return out
}

// Restore is the exact inverse of Optimize: it reinstates every default
// the optimizer may have dropped. The input is never mutated.
func Restore(d *model.Diagram) *model.Diagram {
	if d == nil {
		return nil
	}
	out := d.Clone()

	for i := range out.Groups {
		g := &out.Groups[i]
		if g.BorderStyle == "" {
			g.BorderStyle = model.BorderSolid
		}
	}
	if out.Settings == nil {
		out.Settings = &model.Settings{ZoomLevel: model.DefaultZoom}
	} else if out.Settings.ZoomLevel == 0 {
		out.Settings.ZoomLevel = model.DefaultZoom
	}
	return out
}
