package dsl

import (
	"strings"
	"testing"

	"github.com/archpad/archpad/pkg/model"
)

// nestedDiagram builds a two-level containment tree with a parentless
// node and a labeled edge.
func nestedDiagram() *model.Diagram {
	return &model.Diagram{
		FormatVersion: model.FormatVersion,
		Nodes: []model.Node{
			{ID: "n-web", BaseName: "EC2", DisplayName: "Web", ParentID: "g-vpc", Color: "#ED7100"},
			{ID: "n-db", BaseName: "RDS", DisplayName: "DB", ParentID: "g-sub", Color: "#527FFF"},
			{ID: "n-user", BaseName: "User", Color: "#5A6B86"},
		},
		Groups: []model.Group{
			{ID: "g-vpc", Name: "Main VPC"},
			{ID: "g-sub", Name: "Private Subnet", ParentID: "g-vpc"},
		},
		Edges: []model.Edge{
			{ID: "e1", From: "n-web", To: "n-db", Label: "query"},
			{ID: "e2", From: "n-user", To: "n-web"},
		},
	}
}

func TestEmitOrderingInvariant(t *testing.T) {
	out := Emit(nestedDiagram())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	idx := func(substr string) int {
		for i, l := range lines {
			if strings.Contains(l, substr) {
				return i
			}
		}
		t.Fatalf("no line containing %q in:\n%s", substr, out)
		return -1
	}

	vpcOpen := idx(`Main VPC`)
	subOpen := idx(`Private Subnet`)
	web := idx(`label: "Web"`)
	db := idx(`label: "DB"`)
	user := idx(`label: "User"`)

	if user > vpcOpen {
		t.Error("parentless node must be emitted before groups")
	}
	if !(vpcOpen < web && web < subOpen && subOpen < db) {
		t.Errorf("containment ordering violated: vpc=%d web=%d sub=%d db=%d", vpcOpen, web, subOpen, db)
	}

	// The subnet's close brace comes after its node and before the
	// vpc's close brace.
	var closes []int
	for i, l := range lines {
		if strings.TrimSpace(l) == "}" {
			closes = append(closes, i)
		}
	}
	if len(closes) != 2 {
		t.Fatalf("got %d close braces, want 2", len(closes))
	}
	if !(closes[0] > db && closes[1] > closes[0]) {
		t.Error("close braces out of order")
	}
}

func TestEmitGroupBlockScenario(t *testing.T) {
	d := &model.Diagram{
		Nodes:  []model.Node{{ID: "n", BaseName: "EC2", ParentID: "g"}},
		Groups: []model.Group{{ID: "g", Name: "Main VPC"}},
	}
	out := Emit(d)

	open := strings.Index(out, "{")
	node := strings.Index(out, "EC2")
	closeBrace := strings.Index(out, "}")
	if !(open < node && node < closeBrace) {
		t.Errorf("block ordering violated in:\n%s", out)
	}
}

func TestEmitEdges(t *testing.T) {
	out := Emit(nestedDiagram())

	if !strings.Contains(out, `Web > DB : "query"`) {
		t.Errorf("labeled edge missing:\n%s", out)
	}
	if !strings.Contains(out, "User > Web\n") {
		t.Errorf("unlabeled edge missing:\n%s", out)
	}
}

func TestEmitSanitizesIdentifiers(t *testing.T) {
	d := &model.Diagram{
		Nodes: []model.Node{{ID: "n", BaseName: "API Gateway"}},
	}
	out := Emit(d)
	if !strings.Contains(out, "API_Gateway [label: \"API Gateway\"") {
		t.Errorf("identifier not sanitized:\n%s", out)
	}
}

func TestEmitGroupIcon(t *testing.T) {
	d := nestedDiagram()
	out := Emit(d)
	if !strings.Contains(out, "icon: aws-vpc") {
		t.Errorf("vpc group icon not inferred from name:\n%s", out)
	}

	// A group whose name gives no signal borrows its first node's icon.
	d2 := &model.Diagram{
		Nodes:  []model.Node{{ID: "n", BaseName: "RDS", ParentID: "g"}},
		Groups: []model.Group{{ID: "g", Name: "Storage Tier"}},
	}
	if out := Emit(d2); !strings.Contains(out, "icon: aws-rds] {") {
		t.Errorf("group icon not borrowed from first node:\n%s", out)
	}
}

func TestEmitParseRoundTrip(t *testing.T) {
	d := nestedDiagram()
	got := Parse(Emit(d))

	if len(got.Nodes) != len(d.Nodes) || len(got.Groups) != len(d.Groups) || len(got.Edges) != len(d.Edges) {
		t.Fatalf("round trip changed counts: %d/%d/%d want %d/%d/%d",
			len(got.Nodes), len(got.Groups), len(got.Edges),
			len(d.Nodes), len(d.Groups), len(d.Edges))
	}

	// Containment structure survives: one root group with one child.
	roots := 0
	for _, g := range got.Groups {
		if g.ParentID == "" {
			roots++
		}
	}
	if roots != 1 {
		t.Errorf("got %d root groups, want 1", roots)
	}
}

func TestFlowchartStructure(t *testing.T) {
	out := EmitFlowchart(nestedDiagram())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "flowchart TD" {
		t.Errorf("missing header, got %q", lines[0])
	}

	subgraphs := strings.Count(out, "subgraph ")
	ends := strings.Count(out, "end\n") + boolToInt(strings.HasSuffix(out, "end"))
	if subgraphs != 2 {
		t.Errorf("got %d subgraphs, want 2 (each group exactly once)", subgraphs)
	}
	if ends < 2 {
		t.Errorf("got %d end lines, want 2", ends)
	}

	if !strings.Contains(out, "n_web -->|query| n_db") {
		t.Errorf("labeled arrow missing:\n%s", out)
	}
	if !strings.Contains(out, "n_user --> n_web") {
		t.Errorf("plain arrow missing:\n%s", out)
	}
	if !strings.Contains(out, "style n_web fill:#ED7100") {
		t.Errorf("style directive missing:\n%s", out)
	}

	// Nesting: outer subgraph opens before inner, inner end before outer end.
	outerOpen := strings.Index(out, `subgraph g_vpc`)
	innerOpen := strings.Index(out, `subgraph g_sub`)
	if !(outerOpen >= 0 && innerOpen > outerOpen) {
		t.Errorf("subgraph nesting order violated:\n%s", out)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
