package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/crosslayout/pkg/render"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s *scene.Scene, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.SVG(s, svgOpts...)
		case FormatPNG:
			data, err = render.Graphviz(ctx, render.DOT(s), render.FormatPNG)
		case FormatDOT:
			data = []byte(render.DOT(s))
		case FormatJSON:
			data, err = render.JSON(s)
		case FormatText:
			data = []byte(render.Text(s, opts.Cols, opts.Rows) + "\n")
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption
	if opts.Grid > 0 {
		svgOpts = append(svgOpts, render.WithGrid(opts.Grid))
	}
	if opts.NoLabels {
		svgOpts = append(svgOpts, render.WithoutLabels())
	}
	return svgOpts
}
