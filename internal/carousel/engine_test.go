package carousel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStrip builds an engine over n items of the given sizes in a viewport of
// width x height with no padding.
func newStrip(t *testing.T, n int, sizeOf func(int) Size, width, height int, opts ...Option) (*Engine, *fakeRecycler, *countAdapter) {
	t.Helper()
	adapter := &countAdapter{n: n}
	rec := newFakeRecycler(t, sizeOf)
	e := New(adapter, rec, opts...)
	e.SetViewport(width, height, Padding{})
	return e, rec, adapter
}

func assertNoOverlap(t *testing.T, e *Engine) {
	t.Helper()
	children := e.Children()
	for i := 1; i < len(children); i++ {
		prev := e.orient.decoratedEnd(children[i-1].Rect)
		next := e.orient.decoratedStart(children[i].Rect)
		assert.LessOrEqual(t, prev, next, "children overlap: %s", describe(children))
	}
}

func assertCovers(t *testing.T, e *Engine) {
	t.Helper()
	children := e.Children()
	require.NotEmpty(t, children)
	first := e.orient.decoratedStart(children[0].Rect)
	last := e.orient.decoratedEnd(children[len(children)-1].Rect)
	assert.LessOrEqual(t, first, e.StartBound(), "gap at start: %s", describe(children))
	assert.GreaterOrEqual(t, last, e.EndBound(), "gap at end: %s", describe(children))
}

func assertBalanced(t *testing.T, rec *fakeRecycler, e *Engine) {
	t.Helper()
	assert.Len(t, rec.obtained, len(rec.released)+e.ChildCount(), "obtain/release imbalance")
	assert.Len(t, rec.live, e.ChildCount(), "live views differ from attached views")
}

func TestLayoutInitial_FillsViewportWithOverhang(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)

	e.LayoutInitial()

	assert.Equal(t, []int{0, 1, 2, 3}, indices(e.Children()))
	want := []Rect{
		{Left: 0, Top: 0, Right: 100, Bottom: 20},
		{Left: 100, Top: 0, Right: 200, Bottom: 20},
		{Left: 200, Top: 0, Right: 300, Bottom: 20},
		{Left: 300, Top: 0, Right: 400, Bottom: 20},
	}
	for i, c := range e.Children() {
		assert.Equal(t, want[i], c.Rect, "child %d", i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, rec.obtained)
	assert.Empty(t, rec.released)
	assertCovers(t, e)
}

func TestLayoutInitial_StopsAtFirstCrossingView(t *testing.T) {
	e, rec, _ := newStrip(t, 20, uniform(100, 20), 250, 20)

	e.LayoutInitial()

	assert.Equal(t, []int{0, 1, 2}, indices(e.Children()))
	assert.Len(t, rec.obtained, 3)
}

func TestLayoutInitial_ReleasesPreviousWindow(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)

	e.LayoutInitial()
	e.ScrollBy(150)
	e.LayoutInitial()

	assert.Equal(t, []int{0, 1, 2, 3}, indices(e.Children()))
	assert.Equal(t, 0, e.Children()[0].Rect.Left)
	assertBalanced(t, rec, e)
}

func TestLayoutInitial_ContentShorterThanViewport(t *testing.T) {
	e, _, _ := newStrip(t, 2, uniform(100, 20), 300, 20)

	e.LayoutInitial()

	assert.Equal(t, []int{0, 1}, indices(e.Children()))
	assertNoOverlap(t, e)
}

func TestLayoutInitial_Empty(t *testing.T) {
	e, rec, _ := newStrip(t, 0, uniform(100, 20), 300, 20)

	e.LayoutInitial()

	assert.Zero(t, e.ChildCount())
	assert.Empty(t, rec.obtained)
	assert.Equal(t, -1, e.FirstVisibleIndex())
}

func TestLayoutInitial_Padding(t *testing.T) {
	adapter := &countAdapter{n: 4}
	rec := newFakeRecycler(t, uniform(100, 20))
	e := New(adapter, rec)
	e.SetViewport(320, 24, Padding{Left: 10, Top: 2, Right: 10, Bottom: 2})

	e.LayoutInitial()

	assert.Equal(t, 10, e.StartBound())
	assert.Equal(t, 310, e.EndBound())
	first := e.Children()[0].Rect
	assert.Equal(t, Rect{Left: 10, Top: 2, Right: 110, Bottom: 22}, first)
	assertCovers(t, e)
}

func TestScrollBy_NoopOnEmptyState(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
		for _, d := range []int{-500, -1, 1, 70, 10000} {
			assert.Zero(t, e.ScrollBy(d))
		}
		assert.Empty(t, rec.obtained)
		assert.Empty(t, rec.released)
	})

	t.Run("zero delta", func(t *testing.T) {
		e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
		e.LayoutInitial()
		rec.reset()

		assert.Zero(t, e.ScrollBy(0))
		assert.Empty(t, rec.obtained)
		assert.Empty(t, rec.released)
	})

	t.Run("item count dropped to zero", func(t *testing.T) {
		e, rec, adapter := newStrip(t, 4, uniform(100, 20), 300, 20)
		e.LayoutInitial()
		rec.reset()
		adapter.n = 0

		assert.Zero(t, e.ScrollBy(40))
		assert.Empty(t, rec.obtained)
		assert.Empty(t, rec.released)
	})
}

func TestScrollBy_Scenario(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()
	rec.reset()

	// Nothing fully leaves and the last view still reaches past the end.
	assert.Equal(t, 50, e.ScrollBy(50))
	assert.Empty(t, rec.released)
	assert.Empty(t, rec.obtained)
	assert.Equal(t, []int{0, 1, 2, 3}, indices(e.Children()))
	assert.Equal(t, -50, e.Children()[0].Rect.Left)

	// Index 0 leaves at the start and wraps around to the end.
	assert.Equal(t, 60, e.ScrollBy(60))
	assert.Equal(t, []int{0}, rec.released)
	assert.Equal(t, []int{0}, rec.obtained)
	assert.Equal(t, []int{1, 2, 3, 0}, indices(e.Children()))

	lefts := []int{-10, 90, 190, 290}
	for i, c := range e.Children() {
		assert.Equal(t, lefts[i], c.Rect.Left, "child %d", i)
		assert.Equal(t, lefts[i]+100, c.Rect.Right, "child %d", i)
	}
	assertCovers(t, e)
}

func TestScrollBy_BackwardWrapsToLastIndex(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()
	rec.reset()

	assert.Equal(t, -10, e.ScrollBy(-10))

	assert.Equal(t, []int{3}, rec.released)
	assert.Equal(t, []int{3}, rec.obtained)
	assert.Equal(t, []int{3, 0, 1, 2}, indices(e.Children()))
	assert.Equal(t, Rect{Left: -90, Top: 0, Right: 10, Bottom: 20}, e.Children()[0].Rect)
	assertCovers(t, e)
}

func TestScrollBy_ForwardWrapsAroundRepeatedly(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()

	for range 200 {
		require.Equal(t, 10, e.ScrollBy(10))
		assertNoOverlap(t, e)
		assertCovers(t, e)
	}

	// 2000px is five full laps of 400px. The view ending exactly on the
	// start bound is only released by the next forward step.
	require.NotEmpty(t, rec.obtained)
	for i := 1; i < len(rec.obtained); i++ {
		assert.Equal(t, Next(rec.obtained[i-1], 4), rec.obtained[i], "obtain order breaks circular sequence")
	}
	assert.Equal(t, []int{3, 0, 1, 2, 3}, indices(e.Children()))
	assert.Equal(t, 0, e.Children()[1].Rect.Left)
	assertBalanced(t, rec, e)
}

func TestScrollBy_LargeDeltaSkipsOffscreenItems(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()

	assert.Equal(t, 1000, e.ScrollBy(1000))

	assert.Equal(t, []int{1, 2, 3, 0, 1}, indices(e.Children()))
	assert.Equal(t, -100, e.Children()[0].Rect.Left)
	assertNoOverlap(t, e)
	assertCovers(t, e)
	assertBalanced(t, rec, e)
}

func TestScrollBy_LargeBackwardDelta(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()

	assert.Equal(t, -1000, e.ScrollBy(-1000))

	assertNoOverlap(t, e)
	assertCovers(t, e)
	assertBalanced(t, rec, e)
	assert.LessOrEqual(t, e.ChildCount(), 5)
}

func TestScrollBy_HugeDeltaBoundedWork(t *testing.T) {
	tests := []struct {
		name  string
		delta int
	}{
		{"forward", 10_000_000},
		{"backward", -10_000_000},
		{"forward uneven", 10_000_050},
		{"backward uneven", -10_000_050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
			e.LayoutInitial()
			rec.reset()

			assert.Equal(t, tt.delta, e.ScrollBy(tt.delta))

			// One lap measured, at most one lap passed over, then the
			// visible window.
			assert.LessOrEqual(t, len(rec.obtained), 2*4+5)
			assertNoOverlap(t, e)
			assertCovers(t, e)
			assert.Len(t, rec.live, e.ChildCount())
		})
	}
}

func TestScrollBy_HugeDeltaLandsOnLapBoundary(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()

	e.ScrollBy(10_000_000)

	assert.Equal(t, []int{3, 0, 1, 2, 3}, indices(e.Children()))
	assert.Equal(t, 0, e.Children()[1].Rect.Left)
	assertBalanced(t, rec, e)
}

func TestScrollBy_SkippingLapsMatchesShortScroll(t *testing.T) {
	sizes := []int{100, 70, 130, 90, 110, 60}
	lap := 560
	sizeOf := func(i int) Size { return Size{Width: sizes[i%len(sizes)], Height: 20} }

	for _, delta := range []int{250, -250, 40, -40} {
		long, _, _ := newStrip(t, len(sizes), sizeOf, 300, 20)
		short, _, _ := newStrip(t, len(sizes), sizeOf, 300, 20)
		long.LayoutInitial()
		short.LayoutInitial()

		sign := 1
		if delta < 0 {
			sign = -1
		}
		long.ScrollBy(delta + sign*7*lap)
		short.ScrollBy(delta)

		require.Equal(t, indices(short.Children()), indices(long.Children()), "delta %d", delta)
		for i, c := range long.Children() {
			assert.Equal(t, short.Children()[i].Rect, c.Rect, "delta %d child %d", delta, i)
		}
	}
}

func TestScrollBy_ClampsExtremeDeltas(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  int
	}{
		{"max int", math.MaxInt, MaxScrollDelta},
		{"min int", math.MinInt, -MaxScrollDelta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
			e.LayoutInitial()

			assert.Equal(t, tt.want, e.ScrollBy(tt.delta))
			assertNoOverlap(t, e)
			assertCovers(t, e)
			assertBalanced(t, rec, e)
		})
	}
}

func TestScrollBy_ZeroExtentItemsTerminate(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(0, 20), 300, 20)
	e.LayoutInitial()

	assert.Equal(t, 10, e.ScrollBy(10))
	assertBalanced(t, rec, e)
}

func TestScrollBy_ItemCountChangesBetweenCalls(t *testing.T) {
	e, rec, adapter := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()
	adapter.n = 2

	for range 50 {
		e.ScrollBy(15)
	}

	for _, c := range e.Children() {
		if c.Rect.Left > 100 {
			assert.Less(t, c.Index, 2, "new views must use the current item count")
		}
	}
	assertBalanced(t, rec, e)
}

func TestScrollBy_RandomizedInvariants(t *testing.T) {
	sizes := []int{100, 70, 130, 90, 110, 60}
	sizeOf := func(i int) Size { return Size{Width: sizes[i%len(sizes)], Height: 20} }
	e, rec, _ := newStrip(t, len(sizes), sizeOf, 300, 20)
	e.LayoutInitial()

	rng := rand.New(rand.NewSource(42))
	for step := range 2000 {
		delta := rng.Intn(601) - 300
		got := e.ScrollBy(delta)
		require.Equal(t, delta, got, "step %d", step)
		assertNoOverlap(t, e)
		assertCovers(t, e)
		assertBalanced(t, rec, e)
	}
}

func TestTeardown_ReleasesEverything(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	e.LayoutInitial()
	e.ScrollBy(250)

	e.Teardown()

	assert.Zero(t, e.ChildCount())
	assert.Empty(t, rec.live)
	assertBalanced(t, rec, e)
}

func TestScrollHint(t *testing.T) {
	e, _, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	assert.Equal(t, NoPreference, e.ScrollHint(2))

	e.LayoutInitial()
	assert.Equal(t, Forward, e.ScrollHint(0))
	assert.Equal(t, Forward, e.ScrollHint(3))

	e.ScrollBy(110)
	require.Equal(t, 1, e.FirstVisibleIndex())
	assert.Equal(t, Backward, e.ScrollHint(0))
	assert.Equal(t, Forward, e.ScrollHint(2))
	assert.Equal(t, -1, Backward.Sign())
	assert.Equal(t, 1, Forward.Sign())
	assert.Equal(t, 0, NoPreference.Sign())
}

func TestSnapDistance(t *testing.T) {
	e, _, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	assert.Zero(t, e.SnapDistance())
	assert.Equal(t, -1, e.SnapTarget())

	e.LayoutInitial()
	assert.Zero(t, e.SnapDistance())
	assert.Equal(t, 1, e.SnapTarget())

	e.ScrollBy(30)
	assert.Equal(t, -30, e.SnapDistance())
	assert.Equal(t, 1, e.SnapTarget())

	e.ScrollBy(e.SnapDistance())
	assert.Zero(t, e.SnapDistance())
}

func TestDistanceTo(t *testing.T) {
	e, _, _ := newStrip(t, 8, uniform(100, 20), 300, 20)
	e.LayoutInitial()
	e.ScrollBy(30)

	d, ok := e.DistanceTo(2)
	require.True(t, ok)
	assert.Equal(t, 170, d)

	_, ok = e.DistanceTo(6)
	assert.False(t, ok)

	e.ScrollBy(d)
	d, ok = e.DistanceTo(2)
	require.True(t, ok)
	assert.Zero(t, d)
}

func TestCanScroll(t *testing.T) {
	h := New(&countAdapter{}, newFakeRecycler(t, uniform(1, 1)))
	assert.True(t, h.CanScrollHorizontally())
	assert.False(t, h.CanScrollVertically())
	assert.True(t, h.CanScroll(Horizontal))
	assert.False(t, h.CanScroll(Vertical))

	v := New(&countAdapter{}, newFakeRecycler(t, uniform(1, 1)), WithAxis(Vertical))
	assert.False(t, v.CanScrollHorizontally())
	assert.True(t, v.CanScrollVertically())
	assert.Equal(t, Vertical, v.Axis())
}

func TestVerticalAxis(t *testing.T) {
	e, rec, _ := newStrip(t, 5, uniform(40, 10), 40, 30, WithAxis(Vertical))
	e.LayoutInitial()

	assert.Equal(t, []int{0, 1, 2, 3}, indices(e.Children()))
	assert.Equal(t, Rect{Left: 0, Top: 10, Right: 40, Bottom: 20}, e.Children()[1].Rect)

	e.ScrollBy(15)
	assert.Equal(t, []int{1, 2, 3, 4}, indices(e.Children()))
	assert.Equal(t, -5, e.Children()[0].Rect.Top)
	assertNoOverlap(t, e)
	assertCovers(t, e)
	assertBalanced(t, rec, e)
}

func TestReentrantCallPanics(t *testing.T) {
	e, rec, _ := newStrip(t, 4, uniform(100, 20), 300, 20)
	rec.onObtain = func(int) {
		e.ScrollBy(10)
	}

	assert.PanicsWithValue(t, ErrReentrant, func() {
		e.LayoutInitial()
	})

	// The guard is released once the outer call unwinds.
	rec.onObtain = nil
	assert.NotPanics(t, func() {
		e.LayoutInitial()
	})
}

func TestAdapterFunc(t *testing.T) {
	n := 3
	rec := newFakeRecycler(t, uniform(200, 20))
	e := New(AdapterFunc(func() int { return n }), rec)
	e.SetViewport(300, 20, Padding{})

	e.LayoutInitial()
	assert.Equal(t, []int{0, 1}, indices(e.Children()))
}
