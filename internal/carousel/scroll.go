package carousel

import "math"

// MaxScrollDelta bounds the magnitude of a single ScrollBy call. Larger
// deltas are clamped so edge arithmetic cannot overflow.
const MaxScrollDelta = math.MaxInt / 4

// cursor is the boundary the fill pass grows from: the index of the last
// placed item and its outer edge along the scroll axis.
type cursor struct {
	index int
	edge  int
	valid bool
}

// ScrollBy scrolls the content by delta along the scroll axis and returns the
// consumed amount. The strip is circular so there is no end to clamp against:
// the result is delta itself, limited to ±MaxScrollDelta. It returns 0 without
// touching the recycler when delta is 0, nothing is attached, or the adapter
// is empty.
//
// The recycler traffic of one call is bounded by the views needed to cover the
// viewport plus one lap of the items, whatever the size of delta.
func (e *Engine) ScrollBy(delta int) int {
	defer e.enter()()

	delta = max(min(delta, MaxScrollDelta), -MaxScrollDelta)
	if delta == 0 || len(e.children) == 0 {
		return 0
	}
	n := e.adapter.ItemCount()
	if n <= 0 {
		return 0
	}

	anchor := e.recycle(delta)
	filled := e.fill(delta, n, anchor)
	e.offsetChildren(-delta)

	e.logger.Debug("scroll",
		"delta", delta,
		"attached", len(e.children),
		"filled", filled,
		"first", e.FirstVisibleIndex())

	return delta
}

// exits reports whether r would lie entirely outside the viewport after
// scrolling by delta, on the side the content moves towards.
func (e *Engine) exits(r Rect, delta int) bool {
	if delta > 0 {
		return e.orient.decoratedEnd(r)-delta < e.StartBound()
	}
	return e.orient.decoratedStart(r)-delta > e.EndBound()
}

// recycle releases every attached view that leaves the viewport. When the
// whole window leaves, the outermost released view is returned as the anchor
// the fill pass continues from.
func (e *Engine) recycle(delta int) cursor {
	var anchor cursor
	kept := e.children[:0]
	for _, c := range e.children {
		if !e.exits(c.Rect, delta) {
			kept = append(kept, c)
			continue
		}
		e.recycler.Release(c.View)
		// The outermost view in the scroll direction is the last one for a
		// forward scroll and the first one otherwise.
		if delta > 0 {
			anchor = cursor{index: c.Index, edge: e.orient.decoratedEnd(c.Rect), valid: true}
		} else if !anchor.valid {
			anchor = cursor{index: c.Index, edge: e.orient.decoratedStart(c.Rect), valid: true}
		}
	}
	clear(e.children[len(kept):])
	e.children = kept
	return anchor
}

// boundary returns the fill cursor for the current scroll direction.
func (e *Engine) boundary(forward bool, anchor cursor) cursor {
	if len(e.children) == 0 {
		return anchor
	}
	if forward {
		last := e.children[len(e.children)-1]
		return cursor{index: last.Index, edge: e.orient.decoratedEnd(last.Rect), valid: true}
	}
	first := e.children[0]
	return cursor{index: first.Index, edge: e.orient.decoratedStart(first.Rect), valid: true}
}

// covered reports whether the boundary edge, projected by delta, already
// reaches past the viewport bound in the scroll direction.
func (e *Engine) covered(edge, delta int, forward bool) bool {
	if forward {
		return edge-delta > e.EndBound()
	}
	return edge-delta < e.StartBound()
}

// fill attaches views for newly exposed indices beyond the boundary until the
// projected boundary covers the viewport. It returns the number of views
// attached.
func (e *Engine) fill(delta, n int, anchor cursor) int {
	forward := delta > 0
	cur := e.boundary(forward, anchor)
	if !cur.valid {
		return 0
	}
	if len(e.children) == 0 {
		cur = e.skipLaps(cur, delta, n)
	}

	attached := 0
	// Items measuring zero along the scroll axis never advance the cursor.
	// A full lap without progress means nothing can cover the viewport.
	stalled := 0
	for !e.covered(cur.edge, delta, forward) && stalled < n {
		index := Next(cur.index, n)
		if !forward {
			index = Prev(cur.index, n)
		}

		v := e.recycler.Obtain(index)
		if v == nil {
			e.logger.Warn("recycler returned nil view", "index", index)
			break
		}

		c := e.layout(index, v, cur.edge, forward)
		next := cursor{index: index, edge: e.orient.decoratedEnd(c.Rect), valid: true}
		if !forward {
			next.edge = e.orient.decoratedStart(c.Rect)
		}
		if next.edge == cur.edge {
			stalled++
		} else {
			stalled = 0
		}
		cur = next

		// A delta larger than the viewport skips items that would be off
		// screen as soon as the offset pass runs.
		if e.exits(c.Rect, delta) {
			e.recycler.Release(v)
			continue
		}
		e.attach(c, forward)
		attached++
	}
	return attached
}

// skipLaps moves an anchor the whole window left behind past every full lap
// of items that would be obtained and released without ever being visible.
// Item extents repeat every n indices, so a lap can be skipped by adding its
// extent to the edge. At most one lap is measured.
func (e *Engine) skipLaps(cur cursor, delta, n int) cursor {
	forward := delta > 0
	// dist is how far the edge may advance with every passed view still
	// exiting the viewport.
	dist := e.StartBound() + delta - cur.edge
	if !forward {
		dist = cur.edge - delta - e.EndBound()
	}

	w, h := e.childConstraints()
	lap, index := 0, cur.index
	for range n {
		if lap >= dist {
			return cur
		}
		if forward {
			index = Next(index, n)
		} else {
			index = Prev(index, n)
		}
		size, ok := e.measureItem(index, w, h)
		if !ok {
			return cur
		}
		lap += e.orient.measurement(size)
	}
	if lap <= 0 || lap >= dist {
		return cur
	}

	skip := (dist - 1) / lap * lap
	if forward {
		cur.edge += skip
	} else {
		cur.edge -= skip
	}
	e.logger.Debug("skipped laps", "laps", skip/lap, "lap", lap)
	return cur
}

func (e *Engine) attach(c Child, forward bool) {
	if forward {
		e.children = append(e.children, c)
		return
	}
	e.children = append(e.children, Child{})
	copy(e.children[1:], e.children)
	e.children[0] = c
}

// offsetChildren translates every attached view along the scroll axis.
func (e *Engine) offsetChildren(d int) {
	for i := range e.children {
		e.children[i].Rect = e.orient.offset(e.children[i].Rect, d)
	}
}

// ScrollHint returns the direction to scroll to reach target: Backward when it
// precedes the first attached index, Forward otherwise, NoPreference when
// nothing is attached.
func (e *Engine) ScrollHint(target int) Direction {
	if len(e.children) == 0 {
		return NoPreference
	}
	if target < e.children[0].Index {
		return Backward
	}
	return Forward
}

// DistanceTo returns the delta that brings the leading edge of the attached
// view for index to the start bound. It reports false when index is not
// attached; callers then scroll by ScrollHint and ask again.
func (e *Engine) DistanceTo(index int) (int, bool) {
	c, ok := e.ChildFor(index)
	if !ok {
		return 0, false
	}
	return e.orient.decoratedStart(c.Rect) - e.StartBound(), true
}

// SnapDistance returns the delta that centers the attached view whose center
// is nearest the viewport center, or 0 when nothing is attached.
func (e *Engine) SnapDistance() int {
	_, d, _ := e.nearestCenter()
	return d
}

// SnapTarget returns the index of the view SnapDistance would center, or -1.
func (e *Engine) SnapTarget() int {
	c, _, ok := e.nearestCenter()
	if !ok {
		return -1
	}
	return c.Index
}

func (e *Engine) nearestCenter() (Child, int, bool) {
	if len(e.children) == 0 {
		return Child{}, 0, false
	}
	center := e.StartBound() + (e.EndBound()-e.StartBound())/2

	var best Child
	bestDist, bestAbs := 0, -1
	for _, c := range e.children {
		start := e.orient.decoratedStart(c.Rect)
		end := e.orient.decoratedEnd(c.Rect)
		d := start + (end-start)/2 - center
		abs := d
		if abs < 0 {
			abs = -abs
		}
		if bestAbs < 0 || abs < bestAbs {
			best, bestDist, bestAbs = c, d, abs
		}
	}
	return best, bestDist, true
}
