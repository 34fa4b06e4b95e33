package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/crosslayout/pkg/errors"
)

// Document formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatFromPath returns the document format implied by path's extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer document format from %q (want .toml or .json)", path)
	}
}

// ReadTOML decodes a TOML document from r. Keys that do not map to a
// document field are an error.
//
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", undecoded[0].String())
	}
	return &doc, nil
}

// ReadJSON decodes a JSON document from r. Unknown fields are an error.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
	}
	return &doc, nil
}

// Read decodes a document in the given format.
func Read(r io.Reader, format string) (*Document, error) {
	switch format {
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format: %q", format)
	}
}

// Import reads the document at path, choosing the format by extension.
func Import(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
