package carousel

import (
	"errors"
	"log/slog"
)

// ErrReentrant is the panic value raised when a Recycler callback re-enters
// the engine during a layout pass.
var ErrReentrant = errors.New("carousel: reentrant layout call from recycler callback")

// View is a host view handle bound to an item index.
type View interface {
	// Measure returns the decorated extent of the view, margins included.
	Measure(width, height Constraint) Size
}

// Adapter reports the current item count. The engine reads it at the start
// of every operation and never keeps it across calls.
type Adapter interface {
	ItemCount() int
}

// AdapterFunc adapts a function to the Adapter interface.
type AdapterFunc func() int

// ItemCount implements Adapter.
func (f AdapterFunc) ItemCount() int { return f() }

// Recycler is the host view pool.
type Recycler interface {
	// Obtain returns a view bound to index, reused or freshly created.
	Obtain(index int) View
	// Release returns a view to the pool.
	Release(v View)
}

// Child is an attached view and its geometry.
type Child struct {
	Index int
	View  View
	Rect  Rect
}

type viewport struct {
	width, height int
	padding       Padding
}

// Engine lays out and recycles the views of a circular item strip.
// It is not safe for concurrent use; all calls must come from the goroutine
// driving the host's update loop.
type Engine struct {
	adapter  Adapter
	recycler Recycler
	orient   orientation
	vp       viewport
	children []Child
	extents  *extentCache
	logger   *slog.Logger
	busy     bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithAxis sets the scroll axis. The default is Horizontal.
func WithAxis(a Axis) Option {
	return func(e *Engine) {
		e.orient = orientation{axis: a}
	}
}

// WithLogger sets the logger used for layout pass traces.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithExtentCache enables memoization of item extents in Measure.
// Call InvalidateExtents whenever item content changes.
func WithExtentCache() Option {
	return func(e *Engine) {
		e.extents = newExtentCache()
	}
}

// New creates an engine over the given adapter and recycler.
func New(adapter Adapter, recycler Recycler, opts ...Option) *Engine {
	e := &Engine{
		adapter:  adapter,
		recycler: recycler,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Axis returns the scroll axis.
func (e *Engine) Axis() Axis {
	return e.orient.axis
}

// SetViewport records the surface size and padding. Attached views keep their
// geometry; callers normally follow with LayoutInitial.
func (e *Engine) SetViewport(width, height int, padding Padding) {
	e.vp = viewport{width: width, height: height, padding: padding}
}

// StartBound returns the leading viewport bound after padding.
func (e *Engine) StartBound() int {
	return e.orient.startAfterPadding(e.vp)
}

// EndBound returns the trailing viewport bound after padding.
func (e *Engine) EndBound() int {
	return e.orient.endAfterPadding(e.vp)
}

// CanScrollHorizontally reports whether the engine scrolls horizontally.
func (e *Engine) CanScrollHorizontally() bool {
	return e.orient.axis == Horizontal
}

// CanScrollVertically reports whether the engine scrolls vertically.
func (e *Engine) CanScrollVertically() bool {
	return e.orient.axis == Vertical
}

// CanScroll reports whether a is the scroll axis.
func (e *Engine) CanScroll(a Axis) bool {
	return e.orient.axis == a
}

// Children returns a copy of the attached views in attachment order.
func (e *Engine) Children() []Child {
	out := make([]Child, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of attached views.
func (e *Engine) ChildCount() int {
	return len(e.children)
}

// FirstVisibleIndex returns the item index of the first attached view, or -1.
func (e *Engine) FirstVisibleIndex() int {
	if len(e.children) == 0 {
		return -1
	}
	return e.children[0].Index
}

// ChildFor returns the first attached view for index.
func (e *Engine) ChildFor(index int) (Child, bool) {
	for _, c := range e.children {
		if c.Index == index {
			return c, true
		}
	}
	return Child{}, false
}

// LayoutInitial releases every attached view and fills forward from index 0
// at the start bound. The first view crossing the end bound stays attached.
func (e *Engine) LayoutInitial() {
	defer e.enter()()

	e.releaseAll()

	n := e.adapter.ItemCount()
	if n <= 0 {
		return
	}

	start := e.StartBound()
	end := e.EndBound()
	for i := range n {
		v := e.recycler.Obtain(i)
		if v == nil {
			e.logger.Warn("recycler returned nil view", "index", i)
			break
		}
		c := e.place(i, v, start, true)
		start = e.orient.decoratedEnd(c.Rect)
		if start > end {
			break
		}
	}

	e.logger.Debug("initial layout",
		"items", n,
		"attached", len(e.children),
		"start", e.StartBound(),
		"end", end)
}

// Teardown releases every attached view.
func (e *Engine) Teardown() {
	defer e.enter()()
	e.releaseAll()
}

func (e *Engine) releaseAll() {
	for _, c := range e.children {
		e.recycler.Release(c.View)
	}
	e.children = e.children[:0]
}

// place measures v and attaches it adjacent to edge: after it when forward,
// before it otherwise.
func (e *Engine) place(index int, v View, edge int, forward bool) Child {
	c := e.layout(index, v, edge, forward)
	e.attach(c, forward)
	return c
}

// layout measures v and computes its rectangle without attaching it.
func (e *Engine) layout(index int, v View, edge int, forward bool) Child {
	size := v.Measure(e.childConstraints())
	main := e.orient.measurement(size)
	cross := e.orient.measurementInOther(size)

	crossLead := e.orient.crossStart(e.vp)
	lead, trail := edge, edge+main
	if !forward {
		lead, trail = edge-main, edge
	}
	return Child{
		Index: index,
		View:  v,
		Rect:  e.orient.rect(lead, trail, crossLead, crossLead+cross),
	}
}

// childConstraints are the constraints an attached view is measured with:
// at most the padded viewport in both dimensions.
func (e *Engine) childConstraints() (width, height Constraint) {
	p := e.vp.padding
	return AtMostSize(max(e.vp.width-p.Left-p.Right, 0)),
		AtMostSize(max(e.vp.height-p.Top-p.Bottom, 0))
}

// enter marks the engine busy for the duration of an operation and panics
// if it already is.
func (e *Engine) enter() func() {
	if e.busy {
		panic(ErrReentrant)
	}
	e.busy = true
	return func() { e.busy = false }
}
