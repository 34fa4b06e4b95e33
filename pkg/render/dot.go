package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

// pointsPerInch converts canvas units, taken as points, to Graphviz inches.
const pointsPerInch = 72.0

// DOT converts s to Graphviz source for the neato engine. Every node is a
// fixed-size box pinned at its world center, and two invisible points pin
// the canvas corners so the drawing keeps the canvas extent.
func DOT(s *scene.Scene) string {
	canvas := s.Canvas()

	var buf bytes.Buffer
	buf.WriteString("graph layout {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  bgcolor=\"#fafafa\";\n")
	buf.WriteString("  node [shape=box, fixedsize=true, style=filled, fillcolor=\"#dce6f7\", color=\"#2b4f91\", fontsize=10];\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %s [shape=point, style=invis, width=0.01, pos=\"0,0!\"];\n", dotQuote("__origin"))
	fmt.Fprintf(&buf, "  %s [shape=point, style=invis, width=0.01, pos=\"%s,%s!\"];\n", dotQuote("__extent"), num(canvas.Width), num(canvas.Height))

	for _, it := range items(s) {
		c := it.box.Center()
		fmt.Fprintf(&buf, "  %s [label=%s, pos=\"%s,%s!\", width=%s, height=%s];\n",
			dotQuote(it.node.ID()), dotQuote(it.node.Label()), num(c.X), num(c.Y),
			num(it.box.Size.Width/pointsPerInch), num(it.box.Size.Height/pointsPerInch))
	}

	buf.WriteString("}\n")
	return buf.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// dotQuote returns s as a DOT double-quoted string. Non-ASCII text is kept
// as is; DOT reads UTF-8.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

// Graphviz renders DOT source with the neato engine to FormatSVG or
// FormatPNG.
func Graphviz(ctx context.Context, dot string, format string) ([]byte, error) {
	var f graphviz.Format
	switch format {
	case FormatSVG:
		f = graphviz.SVG
	case FormatPNG:
		f = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graphviz cannot render %q (must be one of: svg, png)", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, f, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
