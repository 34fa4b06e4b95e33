// Package io reads and writes layout documents.
//
// # Overview
//
// A layout document describes a canvas, the nodes placed on it and the
// layout operations to run against them. Documents are TOML or JSON; the
// format is chosen by file extension ([FormatFromPath]).
//
// # TOML Format
//
//	[canvas]
//	width = 800
//	height = 600
//
//	[[node]]
//	id = "header"
//	y = 540
//	width = 800
//	height = 60
//
//	[[node]]
//	id = "title"
//	parent = "header"
//	width = 200
//	height = 40
//	anchor_x = 0.5
//	anchor_y = 0.5
//
//	[[op]]
//	kind = "center"
//	subject = "title"
//	in_parent = true
//
// The JSON form uses the same keys with "nodes" and "ops" arrays.
//
// # Node Fields
//
// Required:
//   - width, height: Content size, before scaling
//
// Optional:
//   - id: Unique identifier; a UUID is assigned when omitted
//   - parent: Id of a node declared earlier (defaults to the canvas)
//   - x, y: Position of the anchor point in the parent's content space
//   - anchor_x, anchor_y: Fractional anchor point (defaults to 0, 0)
//   - scale_x, scale_y: Scale factors (0 or omitted means 1)
//   - ignore_anchor: Treat x, y as the bounding box origin
//   - label: Display label for renderers
//
// Operation fields are documented in package script.
//
// # Import
//
// Use [Import] to read a document from a file path, or [ReadTOML] and
// [ReadJSON] to read from any io.Reader. Unknown keys are rejected.
// [Document.Build] turns a document into a [scene.Scene].
//
// # Export
//
// [Snapshot] captures the current positions of a scene as a new document.
// Use [Export] to write it to a file, or [WriteTOML] and [WriteJSON] to
// write to any io.Writer. Written documents re-import to the same scene.
//
// [scene.Scene]: github.com/matzehuels/crosslayout/pkg/scene.Scene
package io
