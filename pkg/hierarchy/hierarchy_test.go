package hierarchy

import (
	"testing"

	"github.com/archpad/archpad/pkg/model"
)

func TestIsContained(t *testing.T) {
	g := &model.Group{X: 100, Y: 100, Width: 400, Height: 300}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"FullyInside", Rect{200, 200, 50, 50}, true},
		{"FlushAgainstEdges", Rect{100, 100, 400, 300}, true},
		{"OverflowRight", Rect{450, 200, 100, 50}, false},
		{"OverflowTop", Rect{200, 50, 50, 50}, false},
		{"Outside", Rect{600, 600, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContained(tt.r, g); got != tt.want {
				t.Errorf("IsContained(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFindParentSmallestArea(t *testing.T) {
	d := &model.Diagram{Groups: []model.Group{
		{ID: "big", X: 0, Y: 0, Width: 1000, Height: 1000},
		{ID: "small", X: 50, Y: 50, Width: 300, Height: 300},
	}}
	r := Rect{X: 100, Y: 100, W: 50, H: 50}

	got := FindParent(d, r, "")
	if got == nil || got.ID != "small" {
		t.Fatalf("FindParent = %v, want small (smaller of two overlapping groups)", got)
	}
}

func TestFindParentTieKeepsCollectionOrder(t *testing.T) {
	d := &model.Diagram{Groups: []model.Group{
		{ID: "first", X: 0, Y: 0, Width: 500, Height: 500},
		{ID: "second", X: 0, Y: 0, Width: 500, Height: 500},
	}}
	got := FindParent(d, Rect{10, 10, 10, 10}, "")
	if got == nil || got.ID != "first" {
		t.Fatalf("FindParent = %v, want first on equal area", got)
	}
}

func TestFindParentExcludeAndMiss(t *testing.T) {
	d := &model.Diagram{Groups: []model.Group{
		{ID: "only", X: 0, Y: 0, Width: 500, Height: 500},
	}}
	if got := FindParent(d, Rect{10, 10, 10, 10}, "only"); got != nil {
		t.Errorf("excluded group returned: %v", got)
	}
	if got := FindParent(d, Rect{900, 900, 10, 10}, ""); got != nil {
		t.Errorf("FindParent outside all groups = %v, want nil", got)
	}
}

// chainDiagram builds groups C parented under B parented under A.
func chainDiagram() *model.Diagram {
	return &model.Diagram{
		Groups: []model.Group{
			{ID: "A"},
			{ID: "B", ParentID: "A"},
			{ID: "C", ParentID: "B"},
		},
		Nodes: []model.Node{
			{ID: "n1", ParentID: "B"},
			{ID: "n2", ParentID: "C"},
		},
	}
}

func TestWouldCreateCycle(t *testing.T) {
	d := chainDiagram()

	tests := []struct {
		name          string
		child, parent string
		want          bool
	}{
		{"SelfParent", "A", "A", true},
		{"AncestorUnderDescendant", "A", "C", true},
		{"AncestorUnderChild", "A", "B", true},
		{"Downward", "C", "A", false},
		{"UnknownParent", "A", "missing", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WouldCreateCycle(d, tt.child, tt.parent); got != tt.want {
				t.Errorf("WouldCreateCycle(%s, %s) = %v, want %v", tt.child, tt.parent, got, tt.want)
			}
		})
	}
}

func TestReparentRefusesCycleSilently(t *testing.T) {
	d := chainDiagram()

	if Reparent(d, "A", "C") {
		t.Fatal("reparent A under C accepted, would create a cycle")
	}
	if d.Group("A").ParentID != "" {
		t.Fatal("refused reparent still mutated the group")
	}

	if !Reparent(d, "C", "A") {
		t.Fatal("valid reparent refused")
	}
	if d.Group("C").ParentID != "A" {
		t.Fatal("valid reparent not applied")
	}
}

func TestCollectDescendants(t *testing.T) {
	d := chainDiagram()

	nodes, groups := CollectDescendants(d, "A")
	if len(nodes) != 2 {
		t.Errorf("nodes = %d, want 2 (transitive through B and C)", len(nodes))
	}
	if len(groups) != 2 {
		t.Errorf("groups = %d, want 2", len(groups))
	}

	nodes, groups = CollectDescendants(d, "C")
	if len(nodes) != 1 || len(groups) != 0 {
		t.Errorf("C descendants = %d nodes %d groups, want 1/0", len(nodes), len(groups))
	}
}

func TestDepthOf(t *testing.T) {
	d := chainDiagram()

	for id, want := range map[string]int{"A": 0, "B": 1, "C": 2} {
		if got := DepthOf(d, id); got != want {
			t.Errorf("DepthOf(%s) = %d, want %d", id, got, want)
		}
	}
}

func TestAutoFitGrowsToChildren(t *testing.T) {
	d := &model.Diagram{
		Groups: []model.Group{{ID: "g", X: 0, Y: 0, Width: 300, Height: 200}},
		Nodes:  []model.Node{{ID: "n", X: 400, Y: 100, ParentID: "g"}},
	}

	if !AutoFit(d, "g", 0) {
		t.Fatal("AutoFit reported no change")
	}

	g := d.Group("g")
	wantRight := 400 + model.NodeWidth + FitPadding
	if g.X+g.Width < wantRight {
		t.Errorf("group right edge %v, want at least %v", g.X+g.Width, wantRight)
	}
	if !IsContained(NodeRect(d.Node("n")), g) {
		t.Error("node still outside group after auto-fit")
	}
}

func TestAutoFitMinimumFloor(t *testing.T) {
	d := &model.Diagram{
		Groups: []model.Group{{ID: "g", X: 0, Y: 0, Width: 10, Height: 10}},
	}
	AutoFit(d, "g", 0)

	g := d.Group("g")
	if g.Width < MinWidth || g.Height < MinHeight {
		t.Errorf("size %vx%v below floor %vx%v", g.Width, g.Height, MinWidth, MinHeight)
	}
}

func TestAutoFitGridSnap(t *testing.T) {
	d := &model.Diagram{
		Groups: []model.Group{{ID: "g", X: 13, Y: 27, Width: 305, Height: 222}},
	}
	AutoFit(d, "g", 20)

	g := d.Group("g")
	for name, v := range map[string]float64{"x": g.X, "y": g.Y, "w": g.Width, "h": g.Height} {
		if v != float64(int(v/20))*20 {
			t.Errorf("%s = %v not snapped to 20", name, v)
		}
	}
}

func TestAutoFitRecomputesContainment(t *testing.T) {
	// Node sits inside g's eventual bounds but is parented elsewhere;
	// after the resize the containment pass reassigns it.
	d := &model.Diagram{
		Groups: []model.Group{{ID: "g", X: 0, Y: 0, Width: 600, Height: 400}},
		Nodes: []model.Node{
			{ID: "inside", X: 100, Y: 100},
			{ID: "outside", X: 2000, Y: 2000, ParentID: "g"},
		},
	}
	AutoFit(d, "g", 0)

	if got := d.Node("inside").ParentID; got != "g" {
		t.Errorf("inside node parent = %q, want g", got)
	}
	// The fit grows the group around its child, so the far node stays
	// contained and parented after the pass.
	if got := d.Node("outside").ParentID; got != "g" {
		t.Errorf("outside node parent = %q, want g after grow", got)
	}
}
