// Package cli implements the crosslayout command-line interface.
//
// The commands load TOML or JSON layout documents, apply their align,
// center and move operations and write the results. The CLI is built with
// cobra; logs go through charmbracelet/log.
//
// # Commands
//
//   - apply: write the laid-out document
//   - render: write SVG, PNG, DOT, JSON or text renderings
//   - inspect: tabulate every node's box before and after the ops
//   - preview: step through the ops interactively in the terminal
//   - serve: expose the pipeline over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which
// includes one line per node moved. The logger is also attached to the
// command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger prefixed with the app name. Timestamps use
// "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and reports the outcome with the elapsed time
// as a field, e.g. "Applied 4 ops to 3 nodes elapsed=2ms".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(format string, args ...any) {
	p.logger.Info(fmt.Sprintf(format, args...), "elapsed", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command does this before every
// subcommand runs, so pipeline and composer debug lines share one logger.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or fallback when
// there is none. A nil fallback means log.Default().
func loggerFromContext(ctx context.Context, fallback *log.Logger) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok && l != nil {
		return l
	}
	if fallback != nil {
		return fallback
	}
	return log.Default()
}
