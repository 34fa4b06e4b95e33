package scene

import (
	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/layout"
)

// RootID is the id of the canvas node every scene starts with.
const RootID = "canvas"

// Scene is a node tree rooted at a canvas node.
type Scene struct {
	root  *Node
	index map[string]*Node
	order []*Node
}

// New creates a scene whose root has the given canvas size.
func New(width, height float64) *Scene {
	root := NewNode(RootID, width, height)
	return &Scene{
		root:  root,
		index: map[string]*Node{RootID: root},
	}
}

// Root returns the canvas node.
func (s *Scene) Root() *Node { return s.root }

// Canvas returns the size of the canvas.
func (s *Scene) Canvas() layout.Size { return s.root.contentSize }

// Add attaches n under the node with parentID, or under the root when
// parentID is empty. Ids must be valid and unique.
func (s *Scene) Add(n *Node, parentID string) error {
	if err := errors.ValidateNodeID(n.id); err != nil {
		return err
	}
	if _, dup := s.index[n.id]; dup {
		return errors.New(errors.ErrCodeInvalidScene, "duplicate node id %q", n.id)
	}
	if n.parent != nil {
		return errors.New(errors.ErrCodeInvalidScene, "node %q already has a parent", n.id)
	}

	parent := s.root
	if parentID != "" {
		p, err := s.Node(parentID)
		if err != nil {
			return err
		}
		parent = p
	}

	parent.attach(n)
	s.index[n.id] = n
	s.order = append(s.order, n)
	return nil
}

// Lookup returns the node with the given id.
func (s *Scene) Lookup(id string) (*Node, bool) {
	n, ok := s.index[id]
	return n, ok
}

// Node returns the node with the given id or a NODE_NOT_FOUND error.
func (s *Scene) Node(id string) (*Node, error) {
	n, ok := s.index[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNodeNotFound, "no node with id %q", id)
	}
	return n, nil
}

// Nodes returns every node except the root in insertion order.
func (s *Scene) Nodes() []*Node { return s.order }

// Len returns the number of nodes, excluding the root.
func (s *Scene) Len() int { return len(s.order) }

// Walk visits the root's descendants depth first, children in insertion
// order. depth is 1 for direct children of the root. Walk stops at the first
// error fn returns.
func (s *Scene) Walk(fn func(n *Node, depth int) error) error {
	return walk(s.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) error) error {
	for _, c := range n.children {
		if err := fn(c, depth+1); err != nil {
			return err
		}
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the scene.
func (s *Scene) Clone() *Scene {
	out := New(s.root.contentSize.Width, s.root.contentSize.Height)
	copies := map[*Node]*Node{s.root: out.root}
	for _, n := range s.order {
		c := &Node{
			id:           n.id,
			label:        n.label,
			position:     n.position,
			contentSize:  n.contentSize,
			anchor:       n.anchor,
			scaleX:       n.scaleX,
			scaleY:       n.scaleY,
			ignoreAnchor: n.ignoreAnchor,
		}
		copies[n] = c
		copies[n.parent].attach(c)
		out.index[c.id] = c
		out.order = append(out.order, c)
	}
	return out
}
