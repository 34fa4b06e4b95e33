package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	docio "github.com/matzehuels/crosslayout/pkg/io"
)

// applyCommand creates the apply command, which writes the laid-out document.
func (c *CLI) applyCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "apply [document]",
		Short: "Apply a document's operations and write the laid-out document",
		Long: `Apply a document's operations and write the laid-out document.

The output carries every node at its final position along with the original
operations, so applying it again yields the same positions. It is written to
stdout unless -o is given; the output format follows the file extension, or
the input format when writing to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd.Context(), args[0], output, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "stdout format: toml, json (default: input format)")

	return cmd
}

// runApply loads input, applies its ops and writes the snapshot.
func (c *CLI) runApply(ctx context.Context, input, output, format string, stdout io.Writer) error {
	doc, err := loadDocument(input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	runner := c.newRunner(ctx)
	prog := newProgress(runner.Logger)
	s, err := runner.Load(ctx, input, doc)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	applied, err := runner.Apply(ctx, s, doc.Ops)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	prog.done("Applied %d ops to %d nodes", applied, s.Len())

	snapshot := docio.Snapshot(s, doc.Ops)
	if output != "" {
		if err := docio.Export(snapshot, output); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Layout applied")
		printFile(output)
		printNextStep("Render", appName+" render "+output)
		return nil
	}

	if format == "" {
		if format, err = docio.FormatFromPath(input); err != nil {
			return err
		}
	}
	return docio.Write(snapshot, stdout, format)
}

// writeFile writes data to path, creating or truncating it.
func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
