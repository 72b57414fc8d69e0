package carousel

// orientation maps scroll-axis and cross-axis accessors onto rectangles and
// sizes. It holds no state beyond the axis; bounds are recomputed from the
// current viewport on every call.
type orientation struct {
	axis Axis
}

func (o orientation) startAfterPadding(vp viewport) int {
	if o.axis == Vertical {
		return vp.padding.Top
	}
	return vp.padding.Left
}

func (o orientation) endAfterPadding(vp viewport) int {
	if o.axis == Vertical {
		return vp.height - vp.padding.Bottom
	}
	return vp.width - vp.padding.Right
}

// crossStart is where children begin on the cross axis.
func (o orientation) crossStart(vp viewport) int {
	if o.axis == Vertical {
		return vp.padding.Left
	}
	return vp.padding.Top
}

func (o orientation) decoratedStart(r Rect) int {
	if o.axis == Vertical {
		return r.Top
	}
	return r.Left
}

func (o orientation) decoratedEnd(r Rect) int {
	if o.axis == Vertical {
		return r.Bottom
	}
	return r.Right
}

func (o orientation) measurement(s Size) int {
	if o.axis == Vertical {
		return s.Height
	}
	return s.Width
}

func (o orientation) measurementInOther(s Size) int {
	if o.axis == Vertical {
		return s.Width
	}
	return s.Height
}

// rect builds a rectangle from scroll-axis and cross-axis spans.
func (o orientation) rect(lead, trail, crossLead, crossTrail int) Rect {
	if o.axis == Vertical {
		return Rect{Left: crossLead, Top: lead, Right: crossTrail, Bottom: trail}
	}
	return Rect{Left: lead, Top: crossLead, Right: trail, Bottom: crossTrail}
}

// offset translates r along the scroll axis.
func (o orientation) offset(r Rect, d int) Rect {
	if o.axis == Vertical {
		r.Top += d
		r.Bottom += d
		return r
	}
	r.Left += d
	r.Right += d
	return r
}

// split returns the (scroll, cross) pair of a width/height pair.
func (o orientation) split(width, height Constraint) (main, cross Constraint) {
	if o.axis == Vertical {
		return height, width
	}
	return width, height
}

// join is the inverse of split.
func (o orientation) join(main, cross int) Size {
	if o.axis == Vertical {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// crossPadding is the total padding across the cross axis.
func (o orientation) crossPadding(p Padding) int {
	if o.axis == Vertical {
		return p.Left + p.Right
	}
	return p.Top + p.Bottom
}

// mainPadding is the total padding along the scroll axis.
func (o orientation) mainPadding(p Padding) int {
	if o.axis == Vertical {
		return p.Top + p.Bottom
	}
	return p.Left + p.Right
}
