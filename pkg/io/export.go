package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/crosslayout/pkg/errors"
)

// WriteTOML encodes d as TOML and writes it to w.
// The output can be re-imported with [ReadTOML].
func WriteTOML(d *Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteJSON encodes d as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write encodes d in the given format.
func Write(d *Document, w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		return WriteTOML(d, w)
	case FormatJSON:
		return WriteJSON(d, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported document format: %q", format)
	}
}

// Export writes d to path, choosing the format by extension.
// This is a convenience wrapper around [Write] for file-based output.
func Export(d *Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(d, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
