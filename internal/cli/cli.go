package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/crosslayout/internal/config"
	"github.com/matzehuels/crosslayout/pkg/buildinfo"
	docio "github.com/matzehuels/crosslayout/pkg/io"
	"github.com/matzehuels/crosslayout/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "crosslayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a CLI writing logs to w. Environment defaults in cfg apply to
// every command; cfg.Verbose raises level to debug.
func New(w io.Writer, level log.Level, cfg config.Config) *CLI {
	if cfg.Verbose {
		level = log.DebugLevel
	}
	if cfg.NoColor {
		disableColor()
	}
	return &CLI{
		Logger: newLogger(w, level),
		Config: cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Crosslayout positions UI nodes with a fluent layout algebra",
		Long: `Crosslayout reads a layout document (a canvas, its nodes and a list of
align, center and move operations), applies the operations and renders the
result as SVG, PNG, Graphviz DOT, JSON or text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				disableColor()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVar(&noColor, "no-color", c.Config.NoColor, "disable colored output")

	root.AddCommand(c.applyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner logging through the command's logger.
func (c *CLI) newRunner(ctx context.Context) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(ctx, c.Logger))
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderDefaults returns pipeline options seeded from the environment.
func (c *CLI) renderDefaults() pipeline.Options {
	opts := pipeline.Options{
		Formats: c.Config.Formats,
		Cols:    c.Config.Cols,
		Rows:    c.Config.Rows,
		Logger:  c.Logger,
	}
	opts.SetRenderDefaults()
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// loadDocument imports the document at path.
func loadDocument(path string) (*docio.Document, error) {
	return docio.Import(path)
}

// basePath strips the extension from path.
func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
