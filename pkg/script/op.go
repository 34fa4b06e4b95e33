package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

// Op kinds.
const (
	KindAlign  = "align"
	KindCenter = "center"
	KindMove   = "move"
)

// Edges.
const (
	EdgeLeft   = "left"
	EdgeRight  = "right"
	EdgeTop    = "top"
	EdgeBottom = "bottom"
)

// Centering axes.
const (
	AxisBoth       = "both"
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// Move directions.
const (
	DirBelow   = "below"
	DirAbove   = "above"
	DirLeftOf  = "left_of"
	DirRightOf = "right_of"
)

var horizontalEdges = map[string]bool{EdgeLeft: true, EdgeRight: true}
var verticalEdges = map[string]bool{EdgeTop: true, EdgeBottom: true}

var validAxes = map[string]bool{"": true, AxisBoth: true, AxisHorizontal: true, AxisVertical: true}

var validDirections = map[string]bool{DirBelow: true, DirAbove: true, DirLeftOf: true, DirRightOf: true}

// Op is one layout operation.
type Op struct {
	Kind    string  `toml:"kind" json:"kind"`
	Subject string  `toml:"subject" json:"subject"`
	Margin  float64 `toml:"margin,omitempty" json:"margin,omitempty"`

	// align
	Edge       string `toml:"edge,omitempty" json:"edge,omitempty"`
	Target     string `toml:"target,omitempty" json:"target,omitempty"`
	TargetEdge string `toml:"target_edge,omitempty" json:"target_edge,omitempty"`
	Parent     bool   `toml:"parent,omitempty" json:"parent,omitempty"`

	// center
	In       string   `toml:"in,omitempty" json:"in,omitempty"`
	InParent bool     `toml:"in_parent,omitempty" json:"in_parent,omitempty"`
	Between  []string `toml:"between,omitempty" json:"between,omitempty"`
	Overlap  []string `toml:"overlap,omitempty" json:"overlap,omitempty"`
	Axis     string   `toml:"axis,omitempty" json:"axis,omitempty"`

	// move
	Direction string `toml:"direction,omitempty" json:"direction,omitempty"`
}

// Validate checks that the op is well formed. It does not resolve node ids.
func (op Op) Validate() error {
	if op.Subject == "" {
		return errors.New(errors.ErrCodeInvalidOp, "%s: subject is required", op.kind())
	}
	switch op.Kind {
	case KindAlign:
		return op.validateAlign()
	case KindCenter:
		return op.validateCenter()
	case KindMove:
		return op.validateMove()
	default:
		return errors.New(errors.ErrCodeInvalidOp, "unknown kind %q (must be one of: align, center, move)", op.Kind)
	}
}

func (op Op) validateAlign() error {
	horizontal := horizontalEdges[op.Edge]
	if !horizontal && !verticalEdges[op.Edge] {
		return errors.New(errors.ErrCodeInvalidOp, "align: invalid edge %q", op.Edge)
	}
	if (horizontal && !horizontalEdges[op.TargetEdge]) || (!horizontal && !verticalEdges[op.TargetEdge]) {
		return errors.New(errors.ErrCodeInvalidOp, "align: target_edge %q cannot receive edge %q", op.TargetEdge, op.Edge)
	}
	if op.Parent && op.Target != "" {
		return errors.New(errors.ErrCodeInvalidOp, "align: target and parent are mutually exclusive")
	}
	if !op.Parent && op.Target == "" {
		return errors.New(errors.ErrCodeInvalidOp, "align: target or parent is required")
	}
	return nil
}

func (op Op) validateCenter() error {
	refs := 0
	if op.In != "" {
		refs++
	}
	if op.InParent {
		refs++
	}
	if op.Between != nil {
		refs++
		if len(op.Between) != 2 {
			return errors.New(errors.ErrCodeInvalidOp, "center: between needs exactly two ids, got %d", len(op.Between))
		}
	}
	if op.Overlap != nil {
		refs++
		if len(op.Overlap) != 2 {
			return errors.New(errors.ErrCodeInvalidOp, "center: overlap needs exactly two ids, got %d", len(op.Overlap))
		}
	}
	if refs != 1 {
		return errors.New(errors.ErrCodeInvalidOp, "center: exactly one of in, in_parent, between, overlap is required")
	}
	if !validAxes[op.Axis] {
		return errors.New(errors.ErrCodeInvalidOp, "center: invalid axis %q", op.Axis)
	}
	if op.centersBoth() && op.Margin != 0 {
		return errors.New(errors.ErrCodeInvalidOp, "center: margin requires a horizontal or vertical axis")
	}
	return nil
}

func (op Op) validateMove() error {
	if !validDirections[op.Direction] {
		return errors.New(errors.ErrCodeInvalidOp, "move: invalid direction %q", op.Direction)
	}
	if op.Target == "" {
		return errors.New(errors.ErrCodeInvalidOp, "move: target is required")
	}
	return nil
}

func (op Op) kind() string {
	if op.Kind == "" {
		return "op"
	}
	return op.Kind
}

func (op Op) centersBoth() bool {
	return op.Axis == "" || op.Axis == AxisBoth
}

// Validate checks every op and reports the first failure with its index.
func Validate(ops []Op) error {
	for i, op := range ops {
		if err := op.Validate(); err != nil {
			return errors.New(errors.ErrCodeInvalidOp, "op %d: %s", i, errors.UserMessage(err))
		}
	}
	return nil
}

// Apply runs op as a single expression on c, resolving ids against s.
func (op Op) Apply(c *layout.Composer, s *scene.Scene) error {
	if err := op.Validate(); err != nil {
		return err
	}
	subject, err := s.Node(op.Subject)
	if err != nil {
		return err
	}

	switch op.Kind {
	case KindAlign:
		return op.applyAlign(c, s, subject)
	case KindCenter:
		return op.applyCenter(c, s, subject)
	default:
		return op.applyMove(c, s, subject)
	}
}

func (op Op) applyAlign(c *layout.Composer, s *scene.Scene, subject *scene.Node) error {
	var target *scene.Node
	if !op.Parent {
		t, err := s.Node(op.Target)
		if err != nil {
			return err
		}
		target = t
	}

	if horizontalEdges[op.Edge] {
		var to layout.HorizontalTarget
		if op.Edge == EdgeLeft {
			to = c.LeftEdge(subject).MoveTo()
		} else {
			to = c.RightEdge(subject).MoveTo()
		}
		switch {
		case op.Parent && op.TargetEdge == EdgeLeft:
			return to.ParentLeftEdge(op.Margin)
		case op.Parent:
			return to.ParentRightEdge(op.Margin)
		case op.TargetEdge == EdgeLeft:
			return to.LeftEdge(target, op.Margin)
		default:
			return to.RightEdge(target, op.Margin)
		}
	}

	var to layout.VerticalTarget
	if op.Edge == EdgeTop {
		to = c.TopEdge(subject).MoveTo()
	} else {
		to = c.BottomEdge(subject).MoveTo()
	}
	switch {
	case op.Parent && op.TargetEdge == EdgeTop:
		return to.ParentTopEdge(op.Margin)
	case op.Parent:
		return to.ParentBottomEdge(op.Margin)
	case op.TargetEdge == EdgeTop:
		return to.TopEdge(target, op.Margin)
	default:
		return to.BottomEdge(target, op.Margin)
	}
}

func (op Op) applyCenter(c *layout.Composer, s *scene.Scene, subject *scene.Node) error {
	center := c.Center(subject)

	var o *layout.Orientation
	switch {
	case op.InParent:
		o = center.InParent()
	case op.In != "":
		t, err := s.Node(op.In)
		if err != nil {
			return err
		}
		o = center.In(t)
	default:
		ids := op.Between
		if ids == nil {
			ids = op.Overlap
		}
		a, err := s.Node(ids[0])
		if err != nil {
			return err
		}
		b, err := s.Node(ids[1])
		if err != nil {
			return err
		}
		if op.Between != nil {
			o = center.Between(a, b)
		} else {
			o = center.Overlap(a, b)
		}
	}

	switch op.Axis {
	case AxisHorizontal:
		return o.Horizontally(op.Margin)
	case AxisVertical:
		return o.Vertically(op.Margin)
	default:
		return o.Close()
	}
}

func (op Op) applyMove(c *layout.Composer, s *scene.Scene, subject *scene.Node) error {
	target, err := s.Node(op.Target)
	if err != nil {
		return err
	}
	m := c.Move(subject)
	switch op.Direction {
	case DirBelow:
		return m.Below(target, op.Margin)
	case DirAbove:
		return m.Above(target, op.Margin)
	case DirLeftOf:
		return m.ToLeftOf(target, op.Margin)
	default:
		return m.ToRightOf(target, op.Margin)
	}
}

// ApplyAll validates ops and applies them in order to s inside a single
// [layout.Compose]. It checks ctx before each op and returns the number of
// ops applied.
func ApplyAll(ctx context.Context, s *scene.Scene, ops []Op, opts ...layout.Option) (int, error) {
	if err := Validate(ops); err != nil {
		return 0, err
	}

	applied := 0
	err := layout.Compose(func(c *layout.Composer) error {
		for i, op := range ops {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := op.Apply(c, s); err != nil {
				return fmt.Errorf("op %d (%s): %w", i, op.Describe(), err)
			}
			applied++
		}
		return nil
	}, opts...)
	return applied, err
}

// Describe renders the op as the equivalent fluent expression.
func (op Op) Describe() string {
	switch op.Kind {
	case KindAlign:
		to := fmt.Sprintf("%s(%s, %s)", edgeMethod(op.TargetEdge), op.Target, num(op.Margin))
		if op.Parent {
			to = fmt.Sprintf("Parent%s(%s)", edgeMethod(op.TargetEdge), num(op.Margin))
		}
		return fmt.Sprintf("%s(%s).MoveTo().%s", edgeMethod(op.Edge), op.Subject, to)
	case KindCenter:
		var ref string
		switch {
		case op.InParent:
			ref = "InParent()"
		case op.In != "":
			ref = fmt.Sprintf("In(%s)", op.In)
		case op.Between != nil:
			ref = fmt.Sprintf("Between(%s)", strings.Join(op.Between, ", "))
		default:
			ref = fmt.Sprintf("Overlap(%s)", strings.Join(op.Overlap, ", "))
		}
		var axis string
		switch op.Axis {
		case AxisHorizontal:
			axis = fmt.Sprintf(".Horizontally(%s)", num(op.Margin))
		case AxisVertical:
			axis = fmt.Sprintf(".Vertically(%s)", num(op.Margin))
		}
		return fmt.Sprintf("Center(%s).%s%s", op.Subject, ref, axis)
	case KindMove:
		return fmt.Sprintf("Move(%s).%s(%s, %s)", op.Subject, directionMethod(op.Direction), op.Target, num(op.Margin))
	default:
		return fmt.Sprintf("%s(%s)", op.kind(), op.Subject)
	}
}

func edgeMethod(edge string) string {
	switch edge {
	case EdgeLeft:
		return "LeftEdge"
	case EdgeRight:
		return "RightEdge"
	case EdgeTop:
		return "TopEdge"
	case EdgeBottom:
		return "BottomEdge"
	default:
		return "Edge"
	}
}

func directionMethod(dir string) string {
	switch dir {
	case DirBelow:
		return "Below"
	case DirAbove:
		return "Above"
	case DirLeftOf:
		return "ToLeftOf"
	case DirRightOf:
		return "ToRightOf"
	default:
		return "Move"
	}
}

func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
