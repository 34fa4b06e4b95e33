package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/crosslayout/pkg/scene"
)

var frameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7D56F4"))

// Text draws s on a character grid of cols×rows cells, one box outline per
// node with its label on the top border, framed with a rounded border.
// Nodes drawn later overwrite earlier ones, so children appear over parents.
func Text(s *scene.Scene, cols, rows int) string {
	return frameStyle.Render(strings.Join(Grid(s, cols, rows), "\n"))
}

// Grid draws s like [Text] without the frame and returns one string per row,
// top row first.
func Grid(s *scene.Scene, cols, rows int) []string {
	cols, rows = max(cols, 1), max(rows, 1)
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}

	canvas := s.Canvas()
	sx := float64(cols) / canvas.Width
	sy := float64(rows) / canvas.Height

	set := func(r, c int, ch rune) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			cells[r][c] = ch
		}
	}

	for _, it := range items(s) {
		b := it.box
		c0 := cell(math.Floor(b.Left()*sx), cols)
		c1 := cell(math.Ceil(b.Right()*sx)-1, cols)
		r0 := cell(float64(rows)-math.Ceil(b.Top()*sy), rows)
		r1 := cell(float64(rows)-1-math.Floor(b.Bottom()*sy), rows)
		c1, r1 = max(c1, c0), max(r1, r0)

		if c0 == c1 || r0 == r1 {
			for r := r0; r <= r1; r++ {
				for c := c0; c <= c1; c++ {
					set(r, c, '▪')
				}
			}
			continue
		}

		for c := c0 + 1; c < c1; c++ {
			set(r0, c, '─')
			set(r1, c, '─')
		}
		for r := r0 + 1; r < r1; r++ {
			set(r, c0, '│')
			set(r, c1, '│')
			for c := c0 + 1; c < c1; c++ {
				set(r, c, ' ')
			}
		}
		set(r0, c0, '┌')
		set(r0, c1, '┐')
		set(r1, c0, '└')
		set(r1, c1, '┘')

		label := []rune(it.node.Label())
		if room := c1 - c0 - 1; len(label) > room {
			label = label[:max(room, 0)]
		}
		for i, ch := range label {
			set(r0, c0+1+i, ch)
		}
	}

	out := make([]string, rows)
	for i, row := range cells {
		out[i] = string(row)
	}
	return out
}

// cell converts a grid coordinate to an index in [-1, limit]. Indices just
// outside the grid keep the edges of overflowing boxes off the canvas.
func cell(v float64, limit int) int {
	if math.IsNaN(v) {
		return -1
	}
	return int(math.Max(-1, math.Min(v, float64(limit))))
}
