package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/crosslayout/pkg/scene"
)

// inspectCommand creates the inspect command, which tabulates node boxes.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [document]",
		Short: "Show every node's box before and after the ops",
		Long: `Show every node's box before and after the ops.

Boxes are given in parent coordinates as {x,y w×h} with y pointing up.
Rows for nodes the ops moved are highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, out io.Writer) error {
	doc, err := loadDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	runner := c.newRunner(ctx)
	after, err := runner.Load(ctx, input, doc)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	before := after.Clone()
	applied, err := runner.Apply(ctx, after, doc.Ops)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	canvas := after.Canvas()
	printKeyValue("Document", input)
	printKeyValue("Canvas", fmt.Sprintf("%v×%v", canvas.Width, canvas.Height))
	printKeyValue("Ops", fmt.Sprintf("%d applied", applied))
	if len(doc.Ops) == 0 {
		printWarning("document has no operations")
	}

	_, err = fmt.Fprintln(out, inspectTable(before, after))
	return err
}

// inspectTable renders one row per node of after, comparing it with the
// node of the same id in before.
func inspectTable(before, after *scene.Scene) string {
	nodes := after.Nodes()
	rows := make([][]string, 0, len(nodes))
	moved := make([]bool, 0, len(nodes))

	for _, n := range nodes {
		parent := "—"
		if p := n.ParentNode(); p != nil && p != after.Root() {
			parent = p.ID()
		}

		box := n.BoundingBox()
		delta := "—"
		was := "—"
		changed := false
		if old, ok := before.Lookup(n.ID()); ok {
			oldBox := old.BoundingBox()
			was = oldBox.String()
			if d := box.Point.Sub(oldBox.Point); !d.IsZero() {
				delta = d.String()
				changed = true
			}
		}
		rows = append(rows, []string{n.ID(), parent, was, box.String(), delta})
		moved = append(moved, changed)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Parent", "Before", "After", "Moved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row >= 0 && row < len(moved) && moved[row] {
				return base.Inherit(StyleMoved)
			}
			return base.Inherit(StyleDim)
		})

	return t.Render()
}
