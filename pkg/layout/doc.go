// Package layout implements a constraint-free, fluent layout algebra.
//
// A [Composer] places one node relative to another by edge alignment,
// centering, or directional stacking. Every expression is evaluated
// immediately and mutates exactly one node's position; there is no
// constraint graph and nothing is cached between calls.
//
// # Nodes
//
// The algebra works on any type implementing [Node]: a bounding box in
// parent-relative, Y-up coordinates, a parent, and a position that can be read
// and written. Host frameworks implement the interface once; the
// [github.com/matzehuels/crosslayout/pkg/scene] package is a reference adapter.
//
// # Usage
//
//	var c layout.Composer
//
//	c.Center(bar).In(foo).Close()
//	c.Center(bar).InParent().Horizontally(0)
//	c.Center(foo).In(bar).Vertically(5)
//
//	c.LeftEdge(foo).MoveTo().LeftEdge(bar, 0)
//	c.LeftEdge(foo).MoveTo().LeftEdge(bar, 10)
//	c.TopEdge(foo).MoveTo().BottomEdge(bar, 0)
//	c.LeftEdge(foo).MoveTo().ParentLeftEdge(0)
//	c.TopEdge(foo).MoveTo().ParentTopEdge(8)
//
//	c.Move(foo).Below(bar, 4)
//	c.Move(foo).ToRightOf(bar, 4)
//
// # Implicit Centering
//
// A center builder that is abandoned without an axis call still resolves, by
// centering on both axes. Resolution happens exactly once, at the first of:
// an explicit [Orientation.Horizontally] or [Orientation.Vertically] call,
// [Orientation.Close], the next entry call on the same Composer, or
// [Composer.Flush]. [Compose] runs a function with a Composer and flushes it
// on every exit path:
//
//	err := layout.Compose(func(c *layout.Composer) error {
//	    c.Center(title).In(header)      // centered on both axes
//	    return c.Move(body).Below(header, 8)
//	})
//
// Holding an Orientation across another call on its Composer forfeits it: the
// pending builder is settled first and a later axis call reports
// ALREADY_RESOLVED.
//
// A Composer is not safe for concurrent use. It is meant for the single
// thread that owns the node tree.
package layout
