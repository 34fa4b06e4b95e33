package layout

// Mover stacks a node next to another. Each method is exactly the edge
// alignment it names, so results are identical to the manual call.
type Mover struct {
	c    *Composer
	node Node
}

// Below puts the node's top edge margin below target's bottom edge.
func (m Mover) Below(target Node, margin float64) error {
	return m.c.TopEdge(m.node).MoveTo().BottomEdge(target, margin)
}

// Above puts the node's bottom edge margin above target's top edge.
func (m Mover) Above(target Node, margin float64) error {
	return m.c.BottomEdge(m.node).MoveTo().TopEdge(target, margin)
}

// ToLeftOf puts the node's right edge margin left of target's left edge.
func (m Mover) ToLeftOf(target Node, margin float64) error {
	return m.c.RightEdge(m.node).MoveTo().LeftEdge(target, margin)
}

// ToRightOf puts the node's left edge margin right of target's right edge.
func (m Mover) ToRightOf(target Node, margin float64) error {
	return m.c.LeftEdge(m.node).MoveTo().RightEdge(target, margin)
}
