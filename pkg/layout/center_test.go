package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/observability"
)

func TestCenter_InClose(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 0, 10, 20)
	target := newTestNode("t", 100, 50, 40, 40)

	if err := c.Center(subject).In(target).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got, want := subject.box.Center(), target.box.Center(); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_AbandonedResolvesOnFlush(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", 100, 0, 20, 20)

	c.Center(subject).In(target)

	if c.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", c.Pending())
	}
	if subject.sets != 0 {
		t.Fatalf("subject moved before finalization")
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got, want := subject.box.Center(), target.box.Center(); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() after Flush = %d, want 0", c.Pending())
	}
}

func TestCenter_AbandonedResolvesBeforeNextExpression(t *testing.T) {
	var c Composer
	title := newTestNode("title", 0, 0, 10, 10)
	header := newTestNode("header", 0, 100, 100, 20)
	body := newTestNode("body", 0, 0, 100, 50)

	c.Center(title).In(header)
	if err := c.Move(body).Below(title, 0); err != nil {
		t.Fatal(err)
	}

	if got, want := title.box.Center(), header.box.Center(); got != want {
		t.Fatalf("title center = %v, want %v", got, want)
	}
	if got, want := body.box.Top(), title.box.Bottom(); got != want {
		t.Errorf("body top = %v, want %v (below the centered title)", got, want)
	}
}

func TestCenter_Compose(t *testing.T) {
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", -50, 30, 30, 10)

	err := Compose(func(c *Composer) error {
		c.Center(subject).In(target)
		return nil
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if got, want := subject.box.Center(), target.box.Center(); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_ComposeFinalizesOnPanic(t *testing.T) {
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", 100, 100, 10, 10)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = Compose(func(c *Composer) error {
			c.Center(subject).In(target)
			panic("boom")
		})
	}()

	if subject.box.Point != target.box.Point {
		t.Errorf("subject origin = %v, want %v", subject.box.Point, target.box.Point)
	}
}

func TestCenter_ComposeJoinsErrors(t *testing.T) {
	orphan := newTestNode("orphan", 0, 0, 10, 10)
	fnErr := errors.New(errors.ErrCodeInvalidOp, "op failed")

	err := Compose(func(c *Composer) error {
		c.Center(orphan).InParent()
		return fnErr
	})
	if !errors.Is(err, errors.ErrCodeInvalidOp) {
		t.Errorf("Compose() error = %v, want the function's error", err)
	}
	if !strings.Contains(err.Error(), string(errors.ErrCodeNoParent)) {
		t.Errorf("Compose() error = %v, want the flush error too", err)
	}
}

func TestCenter_Idempotent(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 3, 9, 10, 6)
	target := newTestNode("t", 40, 40, 25, 25)

	if err := c.Center(subject).In(target).Close(); err != nil {
		t.Fatal(err)
	}
	first := subject.Position()

	if err := c.Center(subject).In(target).Close(); err != nil {
		t.Fatal(err)
	}
	if delta := subject.Position().Sub(first); !delta.IsZero() {
		t.Errorf("second centering moved subject by %v, want zero", delta)
	}
}

func TestCenter_Horizontally(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 7, 10, 10)
	target := newTestNode("t", 100, 50, 40, 40)

	if err := c.Center(subject).In(target).Horizontally(3); err != nil {
		t.Fatal(err)
	}
	if got, want := subject.box.Center().X, target.box.Center().X+3; got != want {
		t.Errorf("center X = %v, want %v", got, want)
	}
	if subject.box.Bottom() != 7 {
		t.Errorf("bottom = %v, want 7 (unchanged)", subject.box.Bottom())
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if subject.sets != 1 {
		t.Errorf("SetPosition called %d times, want 1", subject.sets)
	}
}

func TestCenter_Vertically(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 7, 0, 10, 10)
	target := newTestNode("t", 100, 50, 40, 40)

	if err := c.Center(subject).In(target).Vertically(-2); err != nil {
		t.Fatal(err)
	}
	if got, want := subject.box.Center().Y, target.box.Center().Y-2; got != want {
		t.Errorf("center Y = %v, want %v", got, want)
	}
	if subject.box.Left() != 7 {
		t.Errorf("left = %v, want 7 (unchanged)", subject.box.Left())
	}
}

func TestCenter_ResolvesOnce(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", 100, 100, 40, 40)

	o := c.Center(subject).In(target)
	if err := o.Horizontally(0); err != nil {
		t.Fatal(err)
	}
	after := subject.Position()

	if err := o.Vertically(0); !errors.Is(err, errors.ErrCodeAlreadyResolved) {
		t.Errorf("second resolution error = %v, want %v", err, errors.ErrCodeAlreadyResolved)
	}
	if err := o.Close(); err != nil {
		t.Errorf("Close() after resolution error = %v, want nil", err)
	}
	if err := c.Flush(); err != nil {
		t.Errorf("Flush() error = %v", err)
	}
	if subject.Position() != after || subject.sets != 1 {
		t.Errorf("subject moved again: %v after %d sets", subject.Position(), subject.sets)
	}
	if !o.Resolved() {
		t.Error("Resolved() = false after resolution")
	}
}

func TestCenter_HeldBuilderIsSettledByNextEntry(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", 100, 100, 40, 40)
	other := newTestNode("o", 0, 0, 1, 1)

	o := c.Center(subject).In(target)
	_ = c.LeftEdge(other).MoveTo().ParentLeftEdge(0)

	if !o.Resolved() {
		t.Fatal("pending builder not settled by next entry call")
	}
	if err := o.Horizontally(0); !errors.Is(err, errors.ErrCodeAlreadyResolved) {
		t.Errorf("Horizontally() after settle error = %v, want %v", err, errors.ErrCodeAlreadyResolved)
	}
	if got, want := subject.box.Center(), target.box.Center(); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_InParent(t *testing.T) {
	var c Composer
	parent := newTestNode("parent", 300, 300, 200, 100)
	child := newTestNode("child", 0, 0, 20, 10)
	child.parent = parent

	if err := c.Center(child).InParent().Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := child.box.Center(), (Point{X: 100, Y: 50}); got != want {
		t.Errorf("child center = %v, want %v", got, want)
	}
}

func TestCenter_InParentWithoutParent(t *testing.T) {
	var c Composer
	orphan := newTestNode("orphan", 0, 0, 20, 10)

	o := c.Center(orphan).InParent()
	if err := o.Horizontally(0); !errors.Is(err, errors.ErrCodeNoParent) {
		t.Errorf("Horizontally() error = %v, want %v", err, errors.ErrCodeNoParent)
	}

	c.Center(orphan).InParent()
	if err := c.Flush(); !errors.Is(err, errors.ErrCodeNoParent) {
		t.Errorf("Flush() error = %v, want %v", err, errors.ErrCodeNoParent)
	}
	if err := c.Flush(); err != nil {
		t.Errorf("second Flush() error = %v, want nil", err)
	}
	if orphan.sets != 0 {
		t.Errorf("orphan moved %d times", orphan.sets)
	}
}

func TestCenter_Between(t *testing.T) {
	var c Composer
	left := newTestNode("left", 0, 0, 10, 10)
	right := newTestNode("right", 30, 0, 10, 10)
	subject := newTestNode("s", 0, 50, 4, 4)

	o := c.Center(subject).Between(left, right)
	if got, want := o.Box(), (Rect{Point: Point{X: 10, Y: 10}, Size: Size{Width: 20, Height: 0}}); got != want {
		t.Fatalf("Box() = %v, want %v", got, want)
	}
	if err := o.Horizontally(0); err != nil {
		t.Fatal(err)
	}
	if got := subject.box.Center().X; got != 20 {
		t.Errorf("center X = %v, want 20", got)
	}
	if subject.box.Bottom() != 50 {
		t.Errorf("bottom = %v, want 50", subject.box.Bottom())
	}
}

func TestCenter_BetweenOverlappingIsWellFormed(t *testing.T) {
	var c Composer
	a := newTestNode("a", 0, 0, 10, 10)
	b := newTestNode("b", 5, 5, 10, 10)
	subject := newTestNode("s", 0, 0, 2, 2)

	o := c.Center(subject).Between(a, b)
	if o.Box().Size != (Size{}) {
		t.Errorf("Box().Size = %v, want zero", o.Box().Size)
	}
	if err := o.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := subject.box.Center(), (Point{X: 10, Y: 10}); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_Overlap(t *testing.T) {
	var c Composer
	a := newTestNode("a", 0, 0, 20, 20)
	b := newTestNode("b", 10, 10, 20, 20)
	subject := newTestNode("s", 100, 100, 4, 4)

	if err := c.Center(subject).Overlap(a, b).Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := subject.box.Center(), (Point{X: 15, Y: 15}); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_InRect(t *testing.T) {
	var c Composer
	subject := newTestNode("s", 0, 0, 10, 10)
	box := Rect{Point: Point{X: 10, Y: 10}, Size: Size{Width: 100, Height: 50}}

	if err := c.Center(subject).InRect(box).Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := subject.box.Center(), box.Center(); got != want {
		t.Errorf("subject center = %v, want %v", got, want)
	}
}

func TestCenter_InvalidReferencesAreNoops(t *testing.T) {
	var c Composer
	var missing *testNode
	live := newTestNode("live", 1, 1, 10, 10)

	c.Center(live).In(missing)
	c.Center(live).Between(live, nil)
	c.Center(missing).In(live)
	c.Center(nil).InParent()

	if err := c.Flush(); err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
	if live.sets != 0 {
		t.Errorf("live node moved %d times, want 0", live.sets)
	}
}

type recordingHooks struct {
	observability.NoopLayoutHooks
	moves    []string
	skips    []string
	implicit []bool
}

func (r *recordingHooks) OnMove(op, node string, dx, dy float64) {
	r.moves = append(r.moves, op+":"+node)
}

func (r *recordingHooks) OnSkip(op, node, reason string) {
	r.skips = append(r.skips, reason)
}

func (r *recordingHooks) OnResolve(op, node string, implicit bool) {
	r.implicit = append(r.implicit, implicit)
}

func TestCenter_Hooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetLayoutHooks(hooks)
	t.Cleanup(observability.Reset)

	var c Composer
	subject := newTestNode("s", 0, 0, 10, 10)
	target := newTestNode("t", 50, 50, 10, 10)

	c.Center(subject).In(target)
	_ = c.Center(subject).In(target).Vertically(0)
	c.Center(subject).In(nil)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}

	if want := []bool{true, false}; len(hooks.implicit) != 2 || hooks.implicit[0] != want[0] || hooks.implicit[1] != want[1] {
		t.Errorf("OnResolve implicit = %v, want %v", hooks.implicit, want)
	}
	if len(hooks.moves) != 2 || hooks.moves[0] != "center.in:s" {
		t.Errorf("OnMove = %v", hooks.moves)
	}
	if len(hooks.skips) != 1 || hooks.skips[0] != "invalid target" {
		t.Errorf("OnSkip = %v", hooks.skips)
	}
}

func TestComposer_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := NewComposer(WithLogger(logger))

	subject := newTestNode("menu", 0, 0, 10, 10)
	target := newTestNode("bar", 100, 0, 10, 10)
	if err := c.Move(subject).ToRightOf(target, 2); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "moved node") || !strings.Contains(out, "menu") {
		t.Errorf("log output = %q, want a debug line naming the node", out)
	}
}

func TestCenter_ZeroValueBuildersAreNoops(t *testing.T) {
	target := newTestNode("target", 100, 100, 20, 20)

	var o Orientation
	if err := o.Close(); err != nil {
		t.Errorf("zero Orientation Close() error = %v, want nil", err)
	}
	if !o.Resolved() {
		t.Error("zero Orientation should be consumed after Close")
	}

	var ce Centering
	if err := ce.In(target).Horizontally(0); err != nil {
		t.Errorf("zero Centering In().Horizontally() error = %v, want nil", err)
	}
	if err := ce.InParent().Close(); err != nil {
		t.Errorf("zero Centering InParent().Close() error = %v, want nil", err)
	}

	var m Mover
	if err := m.Below(target, 0); err != nil {
		t.Errorf("zero Mover Below() error = %v, want nil", err)
	}

	var c *Composer
	if c.Pending() != 0 {
		t.Errorf("nil Composer Pending() = %d, want 0", c.Pending())
	}
	if err := c.Flush(); err != nil {
		t.Errorf("nil Composer Flush() error = %v, want nil", err)
	}
	if target.sets != 0 {
		t.Errorf("target moved %d times, want 0", target.sets)
	}
}

// sizedTestNode reports its parent's extent explicitly, like a child of a
// scaled parent whose box is larger than its content.
type sizedTestNode struct {
	*testNode
	parentSize Size
}

func (n sizedTestNode) ParentSize() Size { return n.parentSize }

func TestCenter_InParentPrefersParentSize(t *testing.T) {
	var c Composer
	parent := newTestNode("parent", 0, 0, 400, 200)
	child := sizedTestNode{testNode: newTestNode("child", 0, 0, 20, 10), parentSize: Size{Width: 200, Height: 100}}
	child.parent = parent

	if err := c.Center(child).InParent().Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := child.box.Center(), (Point{X: 100, Y: 50}); got != want {
		t.Errorf("child center = %v, want %v", got, want)
	}
}
