// Package scene provides a retained node tree that takes part in layout.
//
// A [Node] follows the conventions of common 2D scene graphs: its position
// is the location of its anchor point in the parent's content space, its
// content size is unscaled, and its scale stretches the content around the
// anchor. Coordinates are Y-up with the origin at the bottom left.
//
// [Node] implements [layout.Node]. The adapter converts between the anchor
// position the node stores and the bounding box origin the layout algebra
// reasons about, so
//
//	n.SetPosition(p)
//	n.BoundingBox().Point == p
//
// holds for any anchor point and scale.
//
// A [Scene] owns a root node sized to the canvas and indexes every node by
// id. Nodes added without a parent are children of the root.
package scene
