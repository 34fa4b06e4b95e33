package layout

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/observability"
)

// Composer is the entry point of the layout grammar. The zero value is ready
// to use and logs through log.Default(). Builders created without a Composer
// (their zero values) behave like builders of a nil Composer: they track
// nothing and skip resolution for their missing node.
type Composer struct {
	logger  *log.Logger
	pending []*Orientation
	errs    []error
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for debug output of every mutation.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// NewComposer creates a Composer with the given options.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LeftEdge selects the left edge of n.
func (c *Composer) LeftEdge(n Node) HorizontalEdge {
	c.settle()
	return HorizontalEdge{edge{c: c, node: n, corner: Point{X: 0, Y: 0}}}
}

// RightEdge selects the right edge of n.
func (c *Composer) RightEdge(n Node) HorizontalEdge {
	c.settle()
	return HorizontalEdge{edge{c: c, node: n, corner: Point{X: 1, Y: 0}}}
}

// TopEdge selects the top edge of n.
func (c *Composer) TopEdge(n Node) VerticalEdge {
	c.settle()
	return VerticalEdge{edge{c: c, node: n, corner: Point{X: 0, Y: 1}}}
}

// BottomEdge selects the bottom edge of n.
func (c *Composer) BottomEdge(n Node) VerticalEdge {
	c.settle()
	return VerticalEdge{edge{c: c, node: n, corner: Point{X: 0, Y: 0}}}
}

// Center starts a centering expression for n.
func (c *Composer) Center(n Node) Centering {
	c.settle()
	return Centering{c: c, node: n}
}

// Move starts a directional stacking expression for n.
func (c *Composer) Move(n Node) Mover {
	c.settle()
	return Mover{c: c, node: n}
}

// Pending returns the number of center builders awaiting resolution.
func (c *Composer) Pending() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, o := range c.pending {
		if !o.resolved {
			n++
		}
	}
	return n
}

// Flush resolves every pending center builder by full centering and returns
// the errors collected from implicit resolutions since the last Flush.
func (c *Composer) Flush() error {
	if c == nil {
		return nil
	}
	c.settle()
	errs := c.errs
	c.errs = nil
	return errors.Join(errs...)
}

// settle finalizes builders abandoned by earlier expressions.
func (c *Composer) settle() {
	if c == nil {
		return
	}
	pending := c.pending
	c.pending = nil
	for _, o := range pending {
		if err := o.Close(); err != nil {
			c.errs = append(c.errs, err)
		}
	}
}

func (c *Composer) track(o *Orientation) {
	if c == nil {
		return
	}
	c.pending = append(c.pending, o)
}

// moveBy is the single mutation point of the algebra.
func (c *Composer) moveBy(op string, n Node, delta Point) {
	MoveBy(n, delta)
	name := nodeName(n)
	c.log().Debug("moved node", "op", op, "node", name, "dx", delta.X, "dy", delta.Y)
	observability.Layout().OnMove(op, name, delta.X, delta.Y)
}

func (c *Composer) skip(op string, n Node, reason skipReason) {
	name := nodeName(n)
	c.log().Debug("skipped resolution", "op", op, "node", name, "reason", string(reason))
	observability.Layout().OnSkip(op, name, string(reason))
}

func (c *Composer) log() *log.Logger {
	if c == nil || c.logger == nil {
		return log.Default()
	}
	return c.logger
}

// Compose runs fn with a fresh Composer and flushes it when fn returns or
// panics, so abandoned center builders always resolve. Errors from fn and
// from the flush are joined.
func Compose(fn func(c *Composer) error, opts ...Option) (err error) {
	c := NewComposer(opts...)
	defer func() {
		if ferr := c.Flush(); ferr != nil {
			err = errors.Join(err, ferr)
		}
	}()
	return fn(c)
}
