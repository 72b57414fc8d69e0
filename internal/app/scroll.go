package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/ui"
)

const (
	// easeDivisor sets how much of the remaining distance a frame covers.
	easeDivisor = 3
	// maxSeekFrames bounds the frames spent looking for a detached target.
	maxSeekFrames = 256
)

// scroller animates the strip towards a target card, or towards the snap
// point when target is negative.
type scroller struct {
	active bool
	target int
	dir    carousel.Direction // seek direction while the target is detached
	seeks  int
	gen    int
}

// extent is the length of the padded viewport along the scroll axis.
func (m Model) extent() int {
	return max(m.engine.EndBound()-m.engine.StartBound(), 1)
}

// cardExtent is the decorated card length along the scroll axis.
func (m Model) cardExtent() int {
	if m.engine.Axis() == carousel.Vertical {
		return m.dims.height + ui.CardGap
	}
	return m.dims.width + ui.CardGap
}

func (m *Model) scrollBy(delta int) {
	m.scrolled += abs(m.engine.ScrollBy(delta))
}

// alignDistance returns the delta that brings index to its resting place:
// centered with snapping, at the start bound otherwise. With few items the
// same index can be attached twice; dir picks the copy ahead in that
// direction, NoPreference the nearest one.
func (m Model) alignDistance(index int, dir carousel.Direction) (int, bool) {
	if !m.opts.Snap && dir == carousel.NoPreference {
		return m.engine.DistanceTo(index)
	}
	lo, hi := m.engine.StartBound(), m.engine.EndBound()
	best, found := 0, false
	for _, c := range m.engine.Children() {
		if c.Index != index {
			continue
		}
		start, end := c.Rect.Left, c.Rect.Right
		if m.engine.Axis() == carousel.Vertical {
			start, end = c.Rect.Top, c.Rect.Bottom
		}
		d := start - lo
		if m.opts.Snap {
			d = start + (end-start)/2 - (lo + (hi-lo)/2)
		}
		if !found || better(d, best, dir) {
			best, found = d, true
		}
	}
	// A copy behind is never the target of a directional scroll; keep
	// seeking until one appears ahead.
	if found && dir != carousel.NoPreference && best*dir.Sign() < 0 {
		return 0, false
	}
	return best, found
}

// better reports whether distance d beats the current best for dir.
func better(d, best int, dir carousel.Direction) bool {
	ahead := func(x int) bool { return x*dir.Sign() >= 0 }
	if dir != carousel.NoPreference && ahead(d) != ahead(best) {
		return ahead(d)
	}
	return abs(d) < abs(best)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// startScroll animates towards target. dir picks the seek direction while
// the target is not attached; NoPreference defers to the engine's hint.
// An animation already running is retargeted instead of restarted.
func (m *Model) startScroll(target int, dir carousel.Direction) tea.Cmd {
	m.settle++
	m.scroll.target = target
	m.scroll.dir = dir
	m.scroll.seeks = 0
	if m.scroll.active {
		return nil
	}
	m.scroll.active = true
	m.scroll.gen++
	return FrameCmd(m.opts.FrameInterval, m.scroll.gen)
}

// stopScroll cancels any running animation.
func (m *Model) stopScroll() {
	m.scroll.active = false
	m.scroll.gen++
}

// stepScroll advances the animation by one frame and reports whether it
// has finished.
func (m *Model) stepScroll() bool {
	s := &m.scroll
	if m.engine.ChildCount() == 0 {
		return true
	}

	var d int
	if s.target < 0 {
		d = m.engine.SnapDistance()
	} else {
		var ok bool
		d, ok = m.alignDistance(s.target, s.dir)
		if !ok {
			s.seeks++
			if s.seeks > maxSeekFrames {
				m.logger.Warn("smooth scroll target never attached", "target", s.target)
				return true
			}
			if s.dir == carousel.NoPreference {
				m.scrollBy(m.engine.ScrollHint(s.target).Sign() * m.extent())
				return false
			}
			m.scrollBy(s.dir.Sign() * max(m.cardExtent()/easeDivisor, 1))
			return false
		}
	}
	if d == 0 {
		return true
	}
	m.scrollBy(ease(d, m.extent()))
	return false
}

// ease returns the step for one frame: a fixed share of the remaining
// distance, at least one cell, at most limit.
func ease(d, limit int) int {
	step := d / easeDivisor
	if step == 0 {
		step = 1
		if d < 0 {
			step = -1
		}
	}
	return max(min(step, limit), -limit)
}

// manualScroll scrolls by a user step and schedules a snap.
func (m *Model) manualScroll(delta int) tea.Cmd {
	m.stopScroll()
	m.scrollBy(delta)
	m.settle++
	if !m.opts.Snap {
		m.savePosition()
		return nil
	}
	return SettleCmd(m.settle)
}

// jumpTo moves to index without animation, scrolling forward until the
// card is attached.
func (m *Model) jumpTo(index int) {
	n := m.deck.ItemCount()
	for range n + 1 {
		if d, ok := m.alignDistance(index, carousel.NoPreference); ok {
			if d != 0 {
				m.scrollBy(d)
			}
			return
		}
		if m.engine.ChildCount() == 0 {
			return
		}
		m.scrollBy(m.extent())
	}
}

// page scrolls one card forward or backward from the current one.
func (m *Model) page(dir carousel.Direction) tea.Cmd {
	n := m.deck.ItemCount()
	cur := m.current()
	if n == 0 || cur < 0 {
		return nil
	}
	// Continue from an in-flight target so repeated presses queue up.
	if m.scroll.active && m.scroll.target >= 0 {
		cur = m.scroll.target
	}
	target := carousel.Next(cur, n)
	if dir == carousel.Backward {
		target = carousel.Prev(cur, n)
	}
	return m.startScroll(target, dir)
}
