package script

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/geometry"
	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

func TestOp_Validate(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		wantErr bool
	}{
		{"align to target", Op{Kind: KindAlign, Subject: "a", Edge: EdgeLeft, Target: "b", TargetEdge: EdgeRight}, false},
		{"align to parent", Op{Kind: KindAlign, Subject: "a", Edge: EdgeTop, Parent: true, TargetEdge: EdgeTop}, false},
		{"align mixed axes", Op{Kind: KindAlign, Subject: "a", Edge: EdgeLeft, Target: "b", TargetEdge: EdgeTop}, true},
		{"align bad edge", Op{Kind: KindAlign, Subject: "a", Edge: "middle", Target: "b", TargetEdge: EdgeLeft}, true},
		{"align no target", Op{Kind: KindAlign, Subject: "a", Edge: EdgeLeft, TargetEdge: EdgeLeft}, true},
		{"align target and parent", Op{Kind: KindAlign, Subject: "a", Edge: EdgeLeft, Target: "b", Parent: true, TargetEdge: EdgeLeft}, true},

		{"center in", Op{Kind: KindCenter, Subject: "a", In: "b"}, false},
		{"center in parent horizontally", Op{Kind: KindCenter, Subject: "a", InParent: true, Axis: AxisHorizontal, Margin: 4}, false},
		{"center between", Op{Kind: KindCenter, Subject: "a", Between: []string{"b", "c"}, Axis: AxisVertical}, false},
		{"center overlap", Op{Kind: KindCenter, Subject: "a", Overlap: []string{"b", "c"}}, false},
		{"center no reference", Op{Kind: KindCenter, Subject: "a"}, true},
		{"center two references", Op{Kind: KindCenter, Subject: "a", In: "b", InParent: true}, true},
		{"center between one id", Op{Kind: KindCenter, Subject: "a", Between: []string{"b"}}, true},
		{"center bad axis", Op{Kind: KindCenter, Subject: "a", In: "b", Axis: "diagonal"}, true},
		{"center both with margin", Op{Kind: KindCenter, Subject: "a", In: "b", Margin: 3}, true},

		{"move below", Op{Kind: KindMove, Subject: "a", Direction: DirBelow, Target: "b"}, false},
		{"move bad direction", Op{Kind: KindMove, Subject: "a", Direction: "behind", Target: "b"}, true},
		{"move no target", Op{Kind: KindMove, Subject: "a", Direction: DirAbove}, true},

		{"no subject", Op{Kind: KindMove, Direction: DirBelow, Target: "b"}, true},
		{"unknown kind", Op{Kind: "rotate", Subject: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidOp) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOp)
			}
		})
	}
}

func TestValidate_ReportsIndex(t *testing.T) {
	ops := []Op{
		{Kind: KindMove, Subject: "a", Direction: DirBelow, Target: "b"},
		{Kind: KindMove, Subject: "a", Direction: "sideways", Target: "b"},
	}
	err := Validate(ops)
	if !errors.Is(err, errors.ErrCodeInvalidOp) {
		t.Fatalf("Validate() error = %v", err)
	}
	if !strings.Contains(err.Error(), "op 1") {
		t.Errorf("Validate() error = %v, want the failing index", err)
	}
}

// menuScene is an 800×600 canvas with a header bar, a title and a button.
func menuScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New(800, 600)

	header := scene.NewNode("header", 800, 60)
	header.SetAnchorPosition(geometry.Pt(0.0, 540.0))
	title := scene.NewNode("title", 200, 40)
	play := scene.NewNode("play", 120, 40)
	quit := scene.NewNode("quit", 120, 40)

	for _, a := range []struct {
		n      *scene.Node
		parent string
	}{{header, ""}, {title, "header"}, {play, ""}, {quit, ""}} {
		if err := s.Add(a.n, a.parent); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

func box(t *testing.T, s *scene.Scene, id string) layout.Rect {
	t.Helper()
	n, err := s.Node(id)
	if err != nil {
		t.Fatal(err)
	}
	return n.BoundingBox()
}

func TestOp_Apply(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		id   string
		want layout.Point
	}{
		{
			name: "align right to parent right",
			op:   Op{Kind: KindAlign, Subject: "title", Edge: EdgeRight, Parent: true, TargetEdge: EdgeRight, Margin: 10},
			id:   "title",
			want: geometry.Pt(590.0, 0.0),
		},
		{
			name: "align top to parent top",
			op:   Op{Kind: KindAlign, Subject: "title", Edge: EdgeTop, Parent: true, TargetEdge: EdgeTop},
			id:   "title",
			want: geometry.Pt(0.0, 20.0),
		},
		{
			name: "align left to target right",
			op:   Op{Kind: KindAlign, Subject: "quit", Edge: EdgeLeft, Target: "play", TargetEdge: EdgeRight, Margin: 8},
			id:   "quit",
			want: geometry.Pt(128.0, 0.0),
		},
		{
			name: "align bottom to target top",
			op:   Op{Kind: KindAlign, Subject: "play", Edge: EdgeBottom, Target: "header", TargetEdge: EdgeTop},
			id:   "play",
			want: geometry.Pt(0.0, 600.0),
		},
		{
			name: "center in parent",
			op:   Op{Kind: KindCenter, Subject: "title", InParent: true},
			id:   "title",
			want: geometry.Pt(300.0, 10.0),
		},
		{
			name: "center in target horizontally",
			op:   Op{Kind: KindCenter, Subject: "play", In: "header", Axis: AxisHorizontal},
			id:   "play",
			want: geometry.Pt(340.0, 0.0),
		},
		{
			name: "center in target vertically with margin",
			op:   Op{Kind: KindCenter, Subject: "play", In: "header", Axis: AxisVertical, Margin: -5},
			id:   "play",
			want: geometry.Pt(0.0, 545.0),
		},
		{
			name: "move below",
			op:   Op{Kind: KindMove, Subject: "play", Direction: DirBelow, Target: "header", Margin: 20},
			id:   "play",
			want: geometry.Pt(0.0, 480.0),
		},
		{
			name: "move to right of",
			op:   Op{Kind: KindMove, Subject: "quit", Direction: DirRightOf, Target: "play", Margin: 10},
			id:   "quit",
			want: geometry.Pt(130.0, 0.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := menuScene(t)
			c := layout.NewComposer()
			if err := tt.op.Apply(c, s); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if err := c.Flush(); err != nil {
				t.Fatalf("Flush() error = %v", err)
			}
			if got := box(t, s, tt.id).Point; got != tt.want {
				t.Errorf("%s origin = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestOp_ApplyCenterBetween(t *testing.T) {
	s := menuScene(t)
	quit, _ := s.Lookup("quit")
	quit.SetPosition(geometry.Pt(400.0, 0.0))
	if err := s.Add(scene.NewNode("dot", 10, 10), ""); err != nil {
		t.Fatal(err)
	}

	op := Op{Kind: KindCenter, Subject: "dot", Between: []string{"play", "quit"}, Axis: AxisHorizontal}
	if err := op.Apply(layout.NewComposer(), s); err != nil {
		t.Fatal(err)
	}
	// the gap between play (right edge 120) and quit (left edge 400) is centered at 260
	if got := box(t, s, "dot").Center().X; got != 260 {
		t.Errorf("dot center X = %v, want 260", got)
	}
}

func TestOp_ApplyUnknownNode(t *testing.T) {
	s := menuScene(t)
	ops := []Op{
		{Kind: KindMove, Subject: "ghost", Direction: DirBelow, Target: "play"},
		{Kind: KindMove, Subject: "play", Direction: DirBelow, Target: "ghost"},
		{Kind: KindCenter, Subject: "play", In: "ghost"},
		{Kind: KindCenter, Subject: "play", Overlap: []string{"quit", "ghost"}},
		{Kind: KindAlign, Subject: "play", Edge: EdgeLeft, Target: "ghost", TargetEdge: EdgeLeft},
	}
	for _, op := range ops {
		if err := op.Apply(layout.NewComposer(), s); !errors.Is(err, errors.ErrCodeNodeNotFound) {
			t.Errorf("%s: Apply() error = %v, want %v", op.Describe(), err, errors.ErrCodeNodeNotFound)
		}
	}
}

func TestOp_ApplyRootHasNoParent(t *testing.T) {
	s := menuScene(t)
	op := Op{Kind: KindCenter, Subject: scene.RootID, InParent: true}
	if err := op.Apply(layout.NewComposer(), s); !errors.Is(err, errors.ErrCodeNoParent) {
		t.Errorf("Apply() error = %v, want %v", err, errors.ErrCodeNoParent)
	}
}

func TestApplyAll(t *testing.T) {
	s := menuScene(t)
	ops := []Op{
		{Kind: KindCenter, Subject: "title", InParent: true},
		{Kind: KindMove, Subject: "play", Direction: DirBelow, Target: "header", Margin: 40},
		{Kind: KindCenter, Subject: "play", In: scene.RootID, Axis: AxisHorizontal},
		{Kind: KindMove, Subject: "quit", Direction: DirBelow, Target: "play", Margin: 10},
		{Kind: KindAlign, Subject: "quit", Edge: EdgeLeft, Target: "play", TargetEdge: EdgeLeft},
	}

	n, err := ApplyAll(context.Background(), s, ops)
	if err != nil {
		t.Fatalf("ApplyAll() error = %v", err)
	}
	if n != len(ops) {
		t.Errorf("ApplyAll() applied %d, want %d", n, len(ops))
	}

	want := map[string]layout.Point{
		"title": geometry.Pt(300.0, 10.0),
		"play":  geometry.Pt(340.0, 460.0),
		"quit":  geometry.Pt(340.0, 410.0),
	}
	for id, p := range want {
		if got := box(t, s, id).Point; got != p {
			t.Errorf("%s origin = %v, want %v", id, got, p)
		}
	}
}

func TestApplyAll_StopsOnError(t *testing.T) {
	s := menuScene(t)
	ops := []Op{
		{Kind: KindMove, Subject: "play", Direction: DirBelow, Target: "header"},
		{Kind: KindMove, Subject: "quit", Direction: DirBelow, Target: "ghost"},
		{Kind: KindMove, Subject: "quit", Direction: DirBelow, Target: "play"},
	}

	n, err := ApplyAll(context.Background(), s, ops)
	if !errors.Is(err, errors.ErrCodeNodeNotFound) {
		t.Fatalf("ApplyAll() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ApplyAll() applied %d, want 1", n)
	}
	if !strings.Contains(err.Error(), "op 1") {
		t.Errorf("error %q does not name the op index", err)
	}
}

func TestApplyAll_InvalidOpAppliesNothing(t *testing.T) {
	s := menuScene(t)
	before := box(t, s, "play")
	ops := []Op{
		{Kind: KindMove, Subject: "play", Direction: DirBelow, Target: "header"},
		{Kind: "spin", Subject: "play"},
	}

	n, err := ApplyAll(context.Background(), s, ops)
	if !errors.Is(err, errors.ErrCodeInvalidOp) || n != 0 {
		t.Fatalf("ApplyAll() = %d, %v", n, err)
	}
	if box(t, s, "play") != before {
		t.Error("invalid op list still moved nodes")
	}
}

func TestApplyAll_Canceled(t *testing.T) {
	s := menuScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := ApplyAll(ctx, s, []Op{{Kind: KindCenter, Subject: "title", InParent: true}})
	if err != context.Canceled || n != 0 {
		t.Errorf("ApplyAll() = %d, %v, want 0, %v", n, err, context.Canceled)
	}
}

func TestOp_Describe(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{
			Op{Kind: KindAlign, Subject: "a", Edge: EdgeLeft, Target: "b", TargetEdge: EdgeRight, Margin: 5},
			"LeftEdge(a).MoveTo().RightEdge(b, 5)",
		},
		{
			Op{Kind: KindAlign, Subject: "a", Edge: EdgeTop, Parent: true, TargetEdge: EdgeTop, Margin: 2.5},
			"TopEdge(a).MoveTo().ParentTopEdge(2.5)",
		},
		{Op{Kind: KindCenter, Subject: "a", In: "b"}, "Center(a).In(b)"},
		{Op{Kind: KindCenter, Subject: "a", InParent: true, Axis: AxisHorizontal}, "Center(a).InParent().Horizontally(0)"},
		{Op{Kind: KindCenter, Subject: "a", Between: []string{"b", "c"}, Axis: AxisVertical, Margin: -1}, "Center(a).Between(b, c).Vertically(-1)"},
		{Op{Kind: KindCenter, Subject: "a", Overlap: []string{"b", "c"}}, "Center(a).Overlap(b, c)"},
		{Op{Kind: KindMove, Subject: "a", Direction: DirLeftOf, Target: "b", Margin: 3}, "Move(a).ToLeftOf(b, 3)"},
	}

	for _, tt := range tests {
		if got := tt.op.Describe(); got != tt.want {
			t.Errorf("Describe() = %q, want %q", got, tt.want)
		}
	}
}
