package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/crosslayout/pkg/scene"
)

const svgStyle = `
    .canvas { fill: #fafafa; stroke: #444; stroke-width: 1; }
    .grid { stroke: #ddd; stroke-width: 0.5; }
    .node { fill: #4a7bd1; fill-opacity: 0.15; stroke: #2b4f91; stroke-width: 1; }
    .label { font: 12px sans-serif; fill: #1b2a44; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	grid   float64
	labels bool
}

// WithGrid draws grid lines every step canvas units.
func WithGrid(step float64) SVGOption { return func(r *svgRenderer) { r.grid = step } }

// WithoutLabels omits node labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// SVG renders s as a standalone SVG document the size of the canvas.
func SVG(s *scene.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	canvas := s.Canvas()
	w, h := canvas.Width, canvas.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(w), num(h), num(w), num(h))
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", svgStyle)
	fmt.Fprintf(&buf, `  <rect class="canvas" x="0" y="0" width="%s" height="%s"/>`+"\n", num(w), num(h))

	if r.grid > 0 {
		for x := r.grid; x < w; x += r.grid {
			fmt.Fprintf(&buf, `  <line class="grid" x1="%s" y1="0" x2="%s" y2="%s"/>`+"\n", num(x), num(x), num(h))
		}
		for y := r.grid; y < h; y += r.grid {
			fmt.Fprintf(&buf, `  <line class="grid" x1="0" y1="%s" x2="%s" y2="%s"/>`+"\n", num(h-y), num(w), num(h-y))
		}
	}

	for _, it := range items(s) {
		b := it.box
		top := h - b.Top()
		fmt.Fprintf(&buf, `  <rect id="node-%s" class="node depth-%d" x="%s" y="%s" width="%s" height="%s"/>`+"\n",
			escape(it.node.ID()), it.depth, num(b.Left()), num(top), num(b.Size.Width), num(b.Size.Height))
		if r.labels {
			c := b.Center()
			fmt.Fprintf(&buf, `  <text class="label" x="%s" y="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				num(c.X), num(h-c.Y), escape(it.node.Label()))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
