package app

import (
	"fmt"
	"log/slog"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/ui/card"
	"github.com/llehouerou/carousel/internal/viewpool"
)

// deck holds the banner items and reports their count to the engine.
type deck struct {
	items []card.Item
}

// ItemCount implements carousel.Adapter.
func (d *deck) ItemCount() int {
	return len(d.items)
}

// cardDims is the current card size, shared with the pool so reused cards
// pick up resizes when they are bound.
type cardDims struct {
	width, height int
	axis          carousel.Axis
}

// recycler adapts a card pool to the engine's obtain/release contract.
type recycler struct {
	pool   *viewpool.Pool[*card.Card]
	logger *slog.Logger
}

func newRecycler(d *deck, dims *cardDims, maxFree int, logger *slog.Logger) *recycler {
	if maxFree <= 0 {
		maxFree = viewpool.DefaultMaxFree
	}
	pool := viewpool.New(
		func() *card.Card {
			return card.New(dims.width, dims.height, dims.axis)
		},
		func(c *card.Card, index int) {
			c.Resize(dims.width, dims.height)
			c.Bind(index, d.items[index])
		},
		viewpool.WithMaxFree[*card.Card](maxFree),
		viewpool.WithUnbind(func(c *card.Card) { c.Unbind() }),
	)
	return &recycler{pool: pool, logger: logger}
}

// Obtain implements carousel.Recycler.
func (r *recycler) Obtain(index int) carousel.View {
	return r.pool.Obtain(index)
}

// Release implements carousel.Recycler.
func (r *recycler) Release(v carousel.View) {
	c, ok := v.(*card.Card)
	if !ok {
		r.logger.Warn("released foreign view", "type", fmt.Sprintf("%T", v))
		return
	}
	if err := r.pool.Release(c); err != nil {
		r.logger.Error(errmsg.Format(errmsg.OpViewReturn, err), "index", c.Index())
	}
}

// Stats returns the pool counters.
func (r *recycler) Stats() viewpool.Stats {
	return r.pool.Stats()
}
