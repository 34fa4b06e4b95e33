package render

import (
	"strconv"

	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatText = "txt"
)

// item is a node prepared for drawing.
type item struct {
	node  *scene.Node
	box   layout.Rect
	depth int
}

// items returns the scene's nodes with their world boxes, parents before
// children.
func items(s *scene.Scene) []item {
	out := make([]item, 0, s.Len())
	_ = s.Walk(func(n *scene.Node, depth int) error {
		out = append(out, item{node: n, box: n.WorldBox(), depth: depth})
		return nil
	})
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
