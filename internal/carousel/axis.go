// Package carousel implements an incremental layout and recycling engine for a
// circularly wrapping item strip.
//
// The host owns the surface and the view pool. It calls Measure when its size
// changes, LayoutInitial once, then ScrollBy for every drag or animation frame.
// The engine only touches views at the boundary of the viewport: views that
// leave are released to the Recycler before views for newly exposed indices are
// obtained from it.
package carousel

import "math"

// Axis is a layout direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the config name of the axis.
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis converts a config string to an Axis. Unknown values map to Horizontal.
func ParseAxis(s string) Axis {
	if s == "vertical" {
		return Vertical
	}
	return Horizontal
}

// Mode is a measurement mode for one dimension.
type Mode int

const (
	// Exact means the dimension is fixed by the parent.
	Exact Mode = iota
	// AtMost means the dimension may shrink down to its content.
	AtMost
	// Unspecified behaves like AtMost with an unbounded size.
	Unspecified
)

// Constraint is a (mode, size) pair for one dimension.
type Constraint struct {
	Mode Mode
	Size int
}

// ExactSize returns an Exact constraint.
func ExactSize(n int) Constraint { return Constraint{Mode: Exact, Size: n} }

// AtMostSize returns an AtMost constraint.
func AtMostSize(n int) Constraint { return Constraint{Mode: AtMost, Size: n} }

// Unbounded returns an Unspecified constraint.
func Unbounded() Constraint { return Constraint{Mode: Unspecified} }

// Limit returns the upper bound of c, math.MaxInt when unspecified.
func (c Constraint) Limit() int {
	if c.Mode == Unspecified {
		return math.MaxInt
	}
	return c.Size
}

// shrinkable reports whether the resolved size may be tighter than the constraint.
func (c Constraint) shrinkable() bool {
	return c.Mode == AtMost || c.Mode == Unspecified
}

// child derives the constraint handed to an item from its parent's, with
// padding removed. Items wrap their content, so Exact becomes AtMost.
func (c Constraint) child(padding int) Constraint {
	if c.Mode == Unspecified {
		return c
	}
	return AtMostSize(max(c.Size-padding, 0))
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a placed rectangle. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Padding insets the viewport on each side.
type Padding struct {
	Left, Top, Right, Bottom int
}

// Direction is a scroll direction hint.
type Direction int

const (
	NoPreference Direction = iota
	Forward
	Backward
)

// Sign returns -1, 0 or 1 for the direction.
func (d Direction) Sign() int {
	switch d {
	case Forward:
		return 1
	case Backward:
		return -1
	default:
		return 0
	}
}
