// Package viewpool provides a bounded reuse pool for view objects.
package viewpool

import "errors"

// ErrNotLive is returned when releasing a view the pool did not hand out or
// that was already released.
var ErrNotLive = errors.New("viewpool: view is not live")

// DefaultMaxFree is the default number of idle views kept for reuse.
const DefaultMaxFree = 8

// Stats counts pool traffic.
type Stats struct {
	Created  int // views built by the factory
	Reused   int // obtains served from the free list
	Released int // successful releases
	Dropped  int // releases discarded because the free list was full
	Live     int // views currently handed out
	Free     int // idle views available for reuse
}

// Pool hands out views bound to item indices and takes them back for reuse.
// It is not safe for concurrent use.
type Pool[T comparable] struct {
	create  func() T
	bind    func(v T, index int)
	unbind  func(v T)
	free    []T
	live    map[T]struct{}
	maxFree int
	stats   Stats
}

// Option configures a Pool.
type Option[T comparable] func(*Pool[T])

// WithMaxFree bounds the free list. Releases beyond it are dropped.
func WithMaxFree[T comparable](n int) Option[T] {
	return func(p *Pool[T]) {
		if n >= 0 {
			p.maxFree = n
		}
	}
}

// WithUnbind sets a hook run on every released view, before it is stored or
// dropped.
func WithUnbind[T comparable](fn func(v T)) Option[T] {
	return func(p *Pool[T]) {
		p.unbind = fn
	}
}

// New creates a pool. create builds a fresh view; bind points a view at an
// item index and runs on every obtain, fresh or reused.
func New[T comparable](create func() T, bind func(v T, index int), opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		create:  create,
		bind:    bind,
		live:    make(map[T]struct{}),
		maxFree: DefaultMaxFree,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Obtain returns a view bound to index, reusing an idle one when available.
func (p *Pool[T]) Obtain(index int) T {
	var v T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		p.stats.Reused++
	} else {
		v = p.create()
		p.stats.Created++
	}
	p.bind(v, index)
	p.live[v] = struct{}{}
	return v
}

// Release takes a view back. Releasing a view that is not live returns
// ErrNotLive and leaves the pool unchanged.
func (p *Pool[T]) Release(v T) error {
	if _, ok := p.live[v]; !ok {
		return ErrNotLive
	}
	delete(p.live, v)
	if p.unbind != nil {
		p.unbind(v)
	}
	p.stats.Released++
	if len(p.free) >= p.maxFree {
		p.stats.Dropped++
		return nil
	}
	p.free = append(p.free, v)
	return nil
}

// Live reports whether v is currently handed out.
func (p *Pool[T]) Live(v T) bool {
	_, ok := p.live[v]
	return ok
}

// Drain discards every idle view.
func (p *Pool[T]) Drain() {
	clear(p.free)
	p.free = p.free[:0]
}

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() Stats {
	s := p.stats
	s.Live = len(p.live)
	s.Free = len(p.free)
	return s
}
