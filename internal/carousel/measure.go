package carousel

// Measure resolves the size of the strip for the given parent constraints.
//
// On the scroll axis an AtMost constraint resolves to the sum of item extents,
// capped at the constraint. On the cross axis it resolves to the largest item
// extent, capped likewise. Exact constraints pass through. Each item is
// measured through a transient view that is released before Measure returns.
func (e *Engine) Measure(width, height Constraint) Size {
	defer e.enter()()

	mainC, crossC := e.orient.split(width, height)
	main, cross := mainC.Size, crossC.Size
	sumNeeded, maxNeeded := mainC.shrinkable(), crossC.shrinkable()
	if !sumNeeded && !maxNeeded {
		return e.orient.join(main, cross)
	}

	childW, childH := width, height
	if e.orient.axis == Vertical {
		childW = width.child(e.orient.crossPadding(e.vp.padding))
	} else {
		childH = height.child(e.orient.crossPadding(e.vp.padding))
	}

	mainLimit, crossLimit := mainC.Limit(), crossC.Limit()
	sum, largest := 0, 0
	n := e.adapter.ItemCount()
	for i := range n {
		if (!sumNeeded || sum >= mainLimit) && (!maxNeeded || largest >= crossLimit) {
			break
		}
		size, ok := e.measureItem(i, childW, childH)
		if !ok {
			continue
		}
		sum += e.orient.measurement(size)
		largest = max(largest, e.orient.measurementInOther(size))
	}

	if sumNeeded {
		main = min(sum, mainLimit)
	}
	if maxNeeded {
		cross = min(largest, crossLimit)
	}

	e.logger.Debug("measure",
		"items", n,
		"width", width,
		"height", height,
		"main", main,
		"cross", cross)

	return e.orient.join(main, cross)
}

func (e *Engine) measureItem(index int, width, height Constraint) (Size, bool) {
	if size, ok := e.extents.get(index, width, height); ok {
		return size, true
	}
	v := e.recycler.Obtain(index)
	if v == nil {
		e.logger.Warn("recycler returned nil view", "index", index)
		return Size{}, false
	}
	size := v.Measure(width, height)
	e.recycler.Release(v)
	e.extents.put(index, width, height, size)
	return size, true
}

// InvalidateExtents drops memoized item extents. Hosts call it whenever item
// content or count changes.
func (e *Engine) InvalidateExtents() {
	e.extents.reset()
}
