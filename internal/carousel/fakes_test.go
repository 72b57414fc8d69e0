package carousel

import (
	"fmt"
	"testing"
)

type fakeView struct {
	id    int
	index int
	size  Size
}

func (v *fakeView) Measure(width, height Constraint) Size {
	s := v.size
	if width.Mode != Unspecified {
		s.Width = min(s.Width, width.Size)
	}
	if height.Mode != Unspecified {
		s.Height = min(s.Height, height.Size)
	}
	return s
}

// fakeRecycler records pool traffic and fails the test on double releases.
type fakeRecycler struct {
	t        *testing.T
	sizeOf   func(index int) Size
	nextID   int
	live     map[*fakeView]bool
	obtained []int
	released []int
	onObtain func(index int)
}

func newFakeRecycler(t *testing.T, sizeOf func(int) Size) *fakeRecycler {
	t.Helper()
	return &fakeRecycler{t: t, sizeOf: sizeOf, live: make(map[*fakeView]bool)}
}

func (r *fakeRecycler) Obtain(index int) View {
	if r.onObtain != nil {
		r.onObtain(index)
	}
	r.nextID++
	v := &fakeView{id: r.nextID, index: index, size: r.sizeOf(index)}
	r.live[v] = true
	r.obtained = append(r.obtained, index)
	return v
}

func (r *fakeRecycler) Release(v View) {
	fv, ok := v.(*fakeView)
	if !ok {
		r.t.Fatalf("released foreign view %T", v)
	}
	if !r.live[fv] {
		r.t.Fatalf("view %d (index %d) released twice", fv.id, fv.index)
	}
	delete(r.live, fv)
	r.released = append(r.released, fv.index)
}

func (r *fakeRecycler) reset() {
	r.obtained = nil
	r.released = nil
}

func uniform(w, h int) func(int) Size {
	return func(int) Size { return Size{Width: w, Height: h} }
}

type countAdapter struct{ n int }

func (a *countAdapter) ItemCount() int { return a.n }

func indices(children []Child) []int {
	out := make([]int, len(children))
	for i, c := range children {
		out[i] = c.Index
	}
	return out
}

func describe(children []Child) string {
	s := ""
	for _, c := range children {
		s += fmt.Sprintf("[%d %d..%d] ", c.Index, c.Rect.Left, c.Rect.Right)
	}
	return s
}
