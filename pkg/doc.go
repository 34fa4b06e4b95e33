// Package pkg provides the libraries behind crosslayout, a fluent layout
// algebra for rectangles in a scene tree.
//
// # Overview
//
// crosslayout positions nodes relative to each other by edges and centers
// instead of solving constraints. Every expression computes one translation
// and applies it immediately:
//
//	c.LeftEdge(button).MoveTo().RightEdge(label, 8)
//	c.Center(title).InParent().Horizontally(0)
//	c.Move(body).Below(header, 12)
//
// The pkg directory is organized into four areas:
//
//  1. [geometry] and [layout] - Value types and the layout algebra
//  2. [scene] and [script] - A reference node tree and declarative ops
//  3. [io] and [render] - Layout documents and their drawings
//  4. [pipeline] - Orchestration (load → apply → render)
//
// # Architecture
//
// The typical data flow:
//
//	TOML/JSON document
//	         ↓
//	    [io] package (decode, build scene)
//	         ↓
//	    [script] package (ops → composer expressions)
//	         ↓
//	    [layout] package (edge, center and stack moves)
//	         ↓
//	    [render] package (SVG/PNG/DOT/JSON/text)
//
// Hosts with their own node types implement [layout.Node] and use the
// [layout] package directly; nothing else is required.
//
// # Supporting Packages
//
//   - [errors]: Structured error codes shared by every layer
//   - [observability]: Hooks for layout moves, pipeline stages and HTTP
//   - [buildinfo]: Version information set at build time
//
// [geometry]: github.com/matzehuels/crosslayout/pkg/geometry
// [layout]: github.com/matzehuels/crosslayout/pkg/layout
// [layout.Node]: github.com/matzehuels/crosslayout/pkg/layout.Node
// [scene]: github.com/matzehuels/crosslayout/pkg/scene
// [script]: github.com/matzehuels/crosslayout/pkg/script
// [io]: github.com/matzehuels/crosslayout/pkg/io
// [render]: github.com/matzehuels/crosslayout/pkg/render
// [pipeline]: github.com/matzehuels/crosslayout/pkg/pipeline
// [errors]: github.com/matzehuels/crosslayout/pkg/errors
// [observability]: github.com/matzehuels/crosslayout/pkg/observability
// [buildinfo]: github.com/matzehuels/crosslayout/pkg/buildinfo
package pkg
