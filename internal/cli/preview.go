package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	docio "github.com/matzehuels/crosslayout/pkg/io"
	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/render"
	"github.com/matzehuels/crosslayout/pkg/script"
)

var (
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewOpStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	previewFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// previewCommand creates the preview command, an interactive op stepper.
func (c *CLI) previewCommand() *cobra.Command {
	var cols, rows int

	cmd := &cobra.Command{
		Use:   "preview [document]",
		Short: "Step through a document's ops in the terminal",
		Long: `Step through a document's ops in the terminal.

Each step shows the canvas after one more operation. Use the arrow keys
(or h/l) to step, home/end to jump and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return fmt.Errorf("load document %s: %w", args[0], err)
			}
			m, err := c.newPreviewModel(cmd.Context(), args[0], doc, cols, rows)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&cols, "cols", c.Config.Cols, "canvas width in characters")
	cmd.Flags().IntVar(&rows, "rows", c.Config.Rows, "canvas height in characters")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive op stepping
// =============================================================================

// previewFrame is the canvas after a number of ops.
type previewFrame struct {
	caption string
	grid    []string
}

// PreviewModel is the bubbletea model for stepping through ops. Frame 0 is
// the document as written, frame i the canvas after op i.
type PreviewModel struct {
	Source string
	Cursor int

	frames []previewFrame
	err    error // failure of the op after the last frame
}

// newPreviewModel applies doc's ops one at a time, capturing a frame after
// each. An op that fails ends the frames and is shown on the last one.
func (c *CLI) newPreviewModel(ctx context.Context, source string, doc *docio.Document, cols, rows int) (PreviewModel, error) {
	m := PreviewModel{Source: source}

	runner := c.newRunner(ctx)
	s, err := runner.Load(ctx, source, doc)
	if err != nil {
		return m, fmt.Errorf("load: %w", err)
	}
	m.frames = append(m.frames, previewFrame{
		caption: "as written",
		grid:    render.Grid(s, cols, rows),
	})

	for i, op := range doc.Ops {
		if _, err := script.ApplyAll(ctx, s, []script.Op{op}, layout.WithLogger(runner.Logger)); err != nil {
			m.err = fmt.Errorf("op %d: %w", i, err)
			break
		}
		m.frames = append(m.frames, previewFrame{
			caption: fmt.Sprintf("op %d: %s", i, op.Describe()),
			grid:    render.Grid(s, cols, rows),
		})
	}
	return m, nil
}

// Steps returns the number of frames.
func (m PreviewModel) Steps() int { return len(m.frames) }

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "k", "up":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "right", "l", "j", "down", " ":
			if m.Cursor < len(m.frames)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = len(m.frames) - 1
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	if len(m.frames) == 0 {
		return ""
	}
	frame := m.frames[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Preview " + m.Source))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor, len(m.frames)-1)))
	b.WriteString("\n")
	b.WriteString(previewOpStyle.Render(frame.caption))
	b.WriteString("\n")
	b.WriteString(previewFrameStyle.Render(strings.Join(frame.grid, "\n")))
	b.WriteString("\n")
	if m.err != nil && m.Cursor == len(m.frames)-1 {
		b.WriteString(previewErrorStyle.Render(iconError + " " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(previewHelpStyle.Render("←/→ step  home/end jump  q quit"))
	return b.String()
}
