package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	docio "github.com/matzehuels/crosslayout/pkg/io"
	"github.com/matzehuels/crosslayout/pkg/layout"
	"github.com/matzehuels/crosslayout/pkg/observability"
	"github.com/matzehuels/crosslayout/pkg/scene"
	"github.com/matzehuels/crosslayout/pkg/script"
)

// Runner encapsulates pipeline execution.
// Both CLI and API use this to avoid duplicating stage logic.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner with different documents.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → apply → render pipeline. source names
// the document in logs and hooks.
func (r *Runner) Execute(ctx context.Context, source string, doc *docio.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	s, err := r.Load(ctx, source, doc)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Scene = s
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = s.Len()
	result.Stats.OpCount = len(doc.Ops)

	// Stage 2: Apply
	if !opts.SkipOps {
		applyStart := time.Now()
		applied, err := r.Apply(ctx, s, doc.Ops)
		result.Stats.Applied = applied
		if err != nil {
			return nil, fmt.Errorf("apply: %w", err)
		}
		result.Stats.ApplyTime = time.Since(applyStart)
	}
	result.Document = docio.Snapshot(s, doc.Ops)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Load validates doc and builds its scene.
func (r *Runner) Load(ctx context.Context, source string, doc *docio.Document) (*scene.Scene, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	s, err := doc.Build()
	nodes := 0
	if s != nil {
		nodes = s.Len()
	}
	hooks.OnLoadComplete(ctx, source, nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("loaded document",
		"source", source,
		"nodes", nodes,
		"ops", len(doc.Ops),
		"duration", time.Since(start))
	return s, nil
}

// Apply runs ops against s in one composition and returns how many were
// applied.
func (r *Runner) Apply(ctx context.Context, s *scene.Scene, ops []script.Op) (int, error) {
	hooks := observability.Pipeline()
	hooks.OnApplyStart(ctx, len(ops))
	start := time.Now()

	applied, err := script.ApplyAll(ctx, s, ops, layout.WithLogger(r.Logger))
	hooks.OnApplyComplete(ctx, applied, time.Since(start), err)
	if err != nil {
		return applied, err
	}

	r.Logger.Info("applied layout",
		"ops", applied,
		"duration", time.Since(start))
	return applied, nil
}

// Render validates opts and generates artifacts for s.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, s, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", time.Since(start))
	return artifacts, nil
}
