package io

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/geometry"
	"github.com/matzehuels/crosslayout/pkg/scene"
	"github.com/matzehuels/crosslayout/pkg/script"
)

// Document is a canvas, its nodes and the ops to run on them.
type Document struct {
	Canvas Canvas      `toml:"canvas" json:"canvas"`
	Nodes  []Node      `toml:"node" json:"nodes"`
	Ops    []script.Op `toml:"op,omitempty" json:"ops,omitempty"`
}

// Canvas is the size of the root node.
type Canvas struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Node describes one scene node.
type Node struct {
	ID           string  `toml:"id" json:"id"`
	Parent       string  `toml:"parent,omitempty" json:"parent,omitempty"`
	Label        string  `toml:"label,omitempty" json:"label,omitempty"`
	X            float64 `toml:"x" json:"x"`
	Y            float64 `toml:"y" json:"y"`
	Width        float64 `toml:"width" json:"width"`
	Height       float64 `toml:"height" json:"height"`
	AnchorX      float64 `toml:"anchor_x,omitempty" json:"anchor_x,omitempty"`
	AnchorY      float64 `toml:"anchor_y,omitempty" json:"anchor_y,omitempty"`
	ScaleX       *float64 `toml:"scale_x,omitempty" json:"scale_x,omitempty"`
	ScaleY       *float64 `toml:"scale_y,omitempty" json:"scale_y,omitempty"`
	IgnoreAnchor bool    `toml:"ignore_anchor,omitempty" json:"ignore_anchor,omitempty"`
}

// AssignIDs gives every node without an id a random UUID.
func (d *Document) AssignIDs() {
	for i := range d.Nodes {
		if d.Nodes[i].ID == "" {
			d.Nodes[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the canvas, the node geometry and the ops. It assigns ids
// to anonymous nodes first.
func (d *Document) Validate() error {
	if !finite(d.Canvas.Width, d.Canvas.Height) || d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "canvas must have a positive finite size, got %v×%v", d.Canvas.Width, d.Canvas.Height)
	}
	d.AssignIDs()
	for i, n := range d.Nodes {
		if err := n.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "node %d (%s)", i, n.ID)
		}
	}
	return script.Validate(d.Ops)
}

func (n Node) validate() error {
	if !finite(n.X, n.Y, n.Width, n.Height, n.AnchorX, n.AnchorY) {
		return fmt.Errorf("geometry must be finite")
	}
	if n.Width < 0 || n.Height < 0 {
		return fmt.Errorf("negative size %v×%v", n.Width, n.Height)
	}
	for _, v := range []*float64{n.ScaleX, n.ScaleY} {
		if v != nil && (!finite(*v) || *v <= 0) {
			return fmt.Errorf("scale must be positive and finite, got %v", *v)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Build validates the document and creates its scene. Parents must be
// declared before their children.
func (d *Document) Build() (*scene.Scene, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s := scene.New(d.Canvas.Width, d.Canvas.Height)
	for i, spec := range d.Nodes {
		n := scene.NewNode(spec.ID, spec.Width, spec.Height)
		n.SetLabel(spec.Label)
		n.SetAnchorPoint(geometry.Pt(spec.AnchorX, spec.AnchorY))
		n.SetScale(scaleOrOne(spec.ScaleX), scaleOrOne(spec.ScaleY))
		n.SetIgnoreAnchor(spec.IgnoreAnchor)
		n.SetAnchorPosition(geometry.Pt(spec.X, spec.Y))

		if err := s.Add(n, spec.Parent); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	return s, nil
}

// Snapshot captures the nodes of s, with their current positions, as a
// document carrying ops.
func Snapshot(s *scene.Scene, ops []script.Op) *Document {
	canvas := s.Canvas()
	d := &Document{
		Canvas: Canvas{Width: canvas.Width, Height: canvas.Height},
		Nodes:  make([]Node, 0, s.Len()),
		Ops:    ops,
	}

	for _, n := range s.Nodes() {
		spec := Node{
			ID:           n.ID(),
			X:            n.AnchorPosition().X,
			Y:            n.AnchorPosition().Y,
			Width:        n.ContentSize().Width,
			Height:       n.ContentSize().Height,
			AnchorX:      n.AnchorPoint().X,
			AnchorY:      n.AnchorPoint().Y,
			IgnoreAnchor: n.IgnoreAnchor(),
		}
		if n.Label() != n.ID() {
			spec.Label = n.Label()
		}
		if p := n.ParentNode(); p != nil && p != s.Root() {
			spec.Parent = p.ID()
		}
		if sx, sy := n.Scale(); sx != 1 || sy != 1 {
			spec.ScaleX, spec.ScaleY = &sx, &sy
		}
		d.Nodes = append(d.Nodes, spec)
	}
	return d
}

// scaleOrOne returns the scale in v, or 1 when it was left out.
func scaleOrOne(v *float64) float64 {
	if v == nil {
		return 1
	}
	return *v
}
