package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/crosslayout/pkg/pipeline"
)

// renderCommand creates the render command for generating visual outputs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)
	opts := c.renderDefaults()

	cmd := &cobra.Command{
		Use:   "render [document]",
		Short: "Lay out a document and render it",
		Long: `Lay out a document and render it.

The render command loads a TOML or JSON layout document, applies its
operations and writes one file per requested format. Supported formats are
svg, png, dot, json and txt.

With a single format, -o names the output file. With several, -o is a base
path and each file gets the format as its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.Formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json, txt (comma-separated)")
	cmd.Flags().BoolVar(&opts.SkipOps, "skip-ops", false, "render node positions as written")
	cmd.Flags().Float64Var(&opts.Grid, "grid", 0, "draw an SVG grid with this step")
	cmd.Flags().BoolVar(&opts.NoLabels, "no-labels", false, "omit node labels from SVG")
	cmd.Flags().IntVar(&opts.Cols, "cols", opts.Cols, "text canvas width in characters")
	cmd.Flags().IntVar(&opts.Rows, "rows", opts.Rows, "text canvas height in characters")

	return cmd
}

// runRender runs the full pipeline on input and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	doc, err := loadDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()

	result, err := c.newRunner(ctx).Execute(ctx, input, doc, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.OpCount, result.Stats.Applied)
	printNextStep("Step through the ops", appName+" preview "+input)
	return nil
}

// writeArtifacts writes each format's artifact and returns the paths written.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(format, len(formats), input, output)
		if err := writeFile(path, artifacts[format]); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives where a format's artifact goes. A single format uses
// output as given; otherwise output, minus any known format extension, is a
// base path.
func outputPath(format string, count int, input, output string) string {
	if output != "" && count == 1 {
		return output
	}
	base := basePath(input)
	if output != "" {
		base = output
		if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			base = strings.TrimSuffix(output, ext)
		}
	}
	return base + "." + format
}
