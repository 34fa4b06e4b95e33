package render

import (
	"encoding/json"

	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

type jsonScene struct {
	Canvas jsonBox    `json:"canvas"`
	Nodes  []jsonNode `json:"nodes"`
}

type jsonNode struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Parent string  `json:"parent,omitempty"`
	Depth  int     `json:"depth"`
	Box    jsonBox `json:"box"`
	World  jsonBox `json:"world"`
}

type jsonBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func toJSONBox(r layout.Rect) jsonBox {
	return jsonBox{X: r.Point.X, Y: r.Point.Y, Width: r.Size.Width, Height: r.Size.Height}
}

// JSON renders the local and world bounding box of every node.
func JSON(s *scene.Scene) ([]byte, error) {
	out := jsonScene{
		Canvas: toJSONBox(s.Root().BoundingBox()),
		Nodes:  make([]jsonNode, 0, s.Len()),
	}
	for _, it := range items(s) {
		n := jsonNode{
			ID:    it.node.ID(),
			Label: it.node.Label(),
			Depth: it.depth,
			Box:   toJSONBox(it.node.BoundingBox()),
			World: toJSONBox(it.box),
		}
		if p := it.node.ParentNode(); p != s.Root() {
			n.Parent = p.ID()
		}
		out.Nodes = append(out.Nodes, n)
	}
	return json.MarshalIndent(out, "", "  ")
}
