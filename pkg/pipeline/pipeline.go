// Package pipeline provides the load → apply → render pipeline for
// crosslayout.
//
// This package implements the complete pipeline used by the CLI and the HTTP
// API. By centralizing this logic, both entry points share the same
// defaults, validation and logging.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Validate a layout document and build its scene
//  2. Apply: Run the document's layout operations against the scene
//  3. Render: Generate output in various formats (SVG, PNG, DOT, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	doc, err := io.Import("menu.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, "menu.toml", doc, pipeline.Options{
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	s, err := runner.Load(ctx, "menu.toml", doc)
//	applied, err := runner.Apply(ctx, s, doc.Ops)
//	artifacts, err := runner.Render(ctx, s, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/crosslayout/pkg/errors"
	docio "github.com/matzehuels/crosslayout/pkg/io"
	"github.com/matzehuels/crosslayout/pkg/render"
	"github.com/matzehuels/crosslayout/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultCols is the width of the text canvas in characters.
	DefaultCols = 80

	// DefaultRows is the height of the text canvas in characters.
	DefaultRows = 24

	// MaxCells bounds cols×rows of the text canvas.
	MaxCells = 500 * 500
)

// Format constants for output formats.
const (
	FormatSVG  = render.FormatSVG
	FormatPNG  = render.FormatPNG
	FormatDOT  = render.FormatDOT
	FormatJSON = render.FormatJSON
	FormatText = render.FormatText
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatText: true,
}

// ContentTypes maps output formats to MIME types.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatDOT:  "text/vnd.graphviz",
	FormatJSON: "application/json",
	FormatText: "text/plain; charset=utf-8",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Apply options
	SkipOps bool `json:"skip_ops,omitempty"` // Render the document as written

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Grid     float64  `json:"grid,omitempty"` // SVG grid step, 0 for none
	NoLabels bool     `json:"no_labels,omitempty"`
	Cols     int      `json:"cols,omitempty"` // Text canvas width
	Rows     int      `json:"rows,omitempty"` // Text canvas height

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the laid-out scene.
	Scene *scene.Scene

	// Document is a snapshot of the scene carrying the original ops.
	Document *docio.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	OpCount    int
	Applied    int
	LoadTime   time.Duration
	ApplyTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Grid < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "grid must not be negative, got %v", o.Grid)
	}
	if o.Cols < 0 || o.Rows < 0 || (o.Cols > 0 && o.Rows > MaxCells/o.Cols) {
		return errors.New(errors.ErrCodeInvalidInput, "text canvas %d×%d out of range (max %d cells)", o.Cols, o.Rows, MaxCells)
	}
	return nil
}

// WantsFormat reports whether format is among the requested formats.
func (o *Options) WantsFormat(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *Options) String() string {
	return fmt.Sprintf("formats=%v grid=%v text=%dx%d skip_ops=%v", o.Formats, o.Grid, o.Cols, o.Rows, o.SkipOps)
}
