package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/crosslayout/pkg/buildinfo"
	cerrors "github.com/matzehuels/crosslayout/pkg/errors"
	docio "github.com/matzehuels/crosslayout/pkg/io"
	"github.com/matzehuels/crosslayout/pkg/pipeline"
)

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleLayout runs the posted document. Without a format it answers with
// the laid-out document, otherwise with the rendered artifact.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, opts, err := s.parseOptions(r.URL.Query())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	doc, err := docio.ReadJSON(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	source := "request " + RequestIDFromContext(ctx)
	sc, err := s.runner.Load(ctx, source, doc)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if !opts.SkipOps {
		if _, err := s.runner.Apply(ctx, sc, doc.Ops); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	if format == "" {
		var buf bytes.Buffer
		if err := docio.WriteJSON(docio.Snapshot(sc, doc.Ops), &buf); err != nil {
			s.fail(w, r, err)
			return
		}
		writeBody(w, http.StatusOK, pipeline.ContentTypes[pipeline.FormatJSON], buf.Bytes())
		return
	}

	artifacts, err := s.runner.Render(ctx, sc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeBody(w, http.StatusOK, pipeline.ContentTypes[format], artifacts[format])
}

// parseOptions reads render options from the query string. Missing canvas
// dimensions fall back to the server configuration.
func (s *Server) parseOptions(q url.Values) (string, pipeline.Options, error) {
	opts := pipeline.Options{
		Cols: s.cfg.Cols,
		Rows: s.cfg.Rows,
	}

	format := q.Get("format")
	if format != "" {
		if err := pipeline.ValidateFormat(format); err != nil {
			return "", opts, err
		}
		opts.Formats = []string{format}
	}

	var err error
	if opts.SkipOps, err = boolParam(q, "skip_ops"); err != nil {
		return "", opts, err
	}
	if opts.NoLabels, err = boolParam(q, "no_labels"); err != nil {
		return "", opts, err
	}
	if v := q.Get("grid"); v != "" {
		if opts.Grid, err = strconv.ParseFloat(v, 64); err != nil {
			return "", opts, cerrors.New(cerrors.ErrCodeInvalidInput, "grid: %q is not a number", v)
		}
	}
	if opts.Cols, err = intParam(q, "cols", opts.Cols); err != nil {
		return "", opts, err
	}
	if opts.Rows, err = intParam(q, "rows", opts.Rows); err != nil {
		return "", opts, err
	}
	return format, opts, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, cerrors.New(cerrors.ErrCodeInvalidInput, "%s: %q is not a boolean", key, v)
	}
	return b, nil
}

func intParam(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, cerrors.New(cerrors.ErrCodeInvalidInput, "%s: %q is not an integer", key, v)
	}
	return n, nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// fail maps err to a status, reports it and writes the error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFromContext(r.Context()), "err", err)
	}
	writeError(w, r, status, err)
}

// statusFor maps error codes to HTTP statuses.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}

	switch cerrors.GetCode(err) {
	case cerrors.ErrCodeInvalidInput,
		cerrors.ErrCodeInvalidScene,
		cerrors.ErrCodeInvalidOp,
		cerrors.ErrCodeInvalidFormat,
		cerrors.ErrCodeInvalidPath,
		cerrors.ErrCodeInvalidNodeID:
		return http.StatusBadRequest
	case cerrors.ErrCodeNodeNotFound,
		cerrors.ErrCodeNoParent,
		cerrors.ErrCodeAlreadyResolved,
		cerrors.ErrCodeUnsafeConversion:
		return http.StatusUnprocessableEntity
	case cerrors.ErrCodeNotFound, cerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case cerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	code := cerrors.GetCode(err)
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	observeError(r, err)
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      string(code),
		Message:   err.Error(),
		RequestID: RequestIDFromContext(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeBody(w, status, "application/json", append(data, '\n'))
}

func writeBody(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
