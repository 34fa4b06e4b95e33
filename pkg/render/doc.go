// Package render draws scenes.
//
// # Overview
//
// Every renderer draws the world boxes of a [scene.Scene] (see
// [scene.Node.WorldBox]), so nested and scaled nodes appear where they end
// up on the canvas. Scenes are Y-up; renderers whose target is Y-down flip
// the vertical axis.
//
//   - [SVG]: Standalone SVG with labels and an optional grid
//   - [DOT]: Graphviz source for the neato engine with every node pinned
//   - [Graphviz]: Renders DOT source to SVG or PNG
//   - [JSON]: Local and world boxes of every node
//   - [Text]: A character canvas framed for the terminal
//
// # Usage
//
//	svg := render.SVG(s, render.WithGrid(50))
//
//	dot := render.DOT(s)
//	png, err := render.Graphviz(ctx, dot, render.FormatPNG)
//
// [scene.Scene]: github.com/matzehuels/crosslayout/pkg/scene.Scene
// [scene.Node.WorldBox]: github.com/matzehuels/crosslayout/pkg/scene.Node.WorldBox
package render
