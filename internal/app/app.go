// Package app implements the carousel banner as a bubbletea program.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/card"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/prompt"
)

// ThumbnailFunc renders the image at path into a cols x rows cell box.
type ThumbnailFunc func(path string, cols, rows int) (string, error)

// Options configures the banner.
type Options struct {
	Title            string
	Items            []card.Item
	Axis             carousel.Axis
	Padding          int
	CardWidth        int
	CardHeight       int
	ScrollStep       int
	AutoplayInterval time.Duration // 0 disables autoplay
	FrameInterval    time.Duration
	Snap             bool
	MeasureCache     bool
	PoolSize         int
	Thumbnails       ThumbnailFunc   // nil disables images
	State            state.Interface // nil disables persistence
	Logger           *slog.Logger
}

// OptionsFromConfig converts the loaded configuration into banner options.
// Items, thumbnails, state and logger are left to the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	w, h := cfg.GetCardSize()
	return Options{
		Title:            "carousel",
		Axis:             carousel.ParseAxis(cfg.Axis),
		Padding:          cfg.GetPadding(),
		CardWidth:        w,
		CardHeight:       h,
		ScrollStep:       cfg.GetScrollStep(),
		AutoplayInterval: cfg.GetAutoplayInterval(),
		FrameInterval:    cfg.GetFrameInterval(),
		Snap:             cfg.SnapEnabled(),
		MeasureCache:     cfg.MeasureCache,
		PoolSize:         cfg.GetPoolSize(),
	}
}

// ItemsFromConfig converts configured pages to card items.
func ItemsFromConfig(items []config.Item) []card.Item {
	out := make([]card.Item, len(items))
	for i, it := range items {
		out[i] = card.Item{Title: it.Title, Subtitle: it.Subtitle, Image: it.Image}
	}
	return out
}

// Model is the root banner model.
type Model struct {
	ui.Base
	opts     Options
	logger   *slog.Logger
	deck     *deck
	dims     *cardDims
	recycler *recycler
	engine   *carousel.Engine
	resolver *keymap.Resolver
	help     helpbindings.Model
	prompt   *prompt.Model

	scroll   scroller
	settle   int // generation of the pending snap after a manual scroll
	scrolled int // total cells scrolled, for the stats line

	autoplay    bool
	autoplayGen int

	thumbs   map[int]string
	thumbBox [2]int

	saved     *state.Position
	restored  bool
	showStats bool
	status    string
}

// New creates a banner over opts.Items.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 1
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 30
	}

	d := &deck{items: opts.Items}
	dims := &cardDims{width: opts.CardWidth, height: opts.CardHeight, axis: opts.Axis}
	rec := newRecycler(d, dims, opts.PoolSize, logger)

	engineOpts := []carousel.Option{
		carousel.WithAxis(opts.Axis),
		carousel.WithLogger(logger.With("component", "carousel")),
	}
	if opts.MeasureCache {
		engineOpts = append(engineOpts, carousel.WithExtentCache())
	}

	p := prompt.New()
	resolver := keymap.NewResolver(keymap.All)
	m := Model{
		opts:     opts,
		logger:   logger,
		deck:     d,
		dims:     dims,
		recycler: rec,
		engine:   carousel.New(d, rec, engineOpts...),
		resolver: resolver,
		help:     helpbindings.New(resolver),
		prompt:   &p,
		thumbs:   map[int]string{},
	}

	if opts.State != nil {
		pos, err := opts.State.GetPosition()
		if err != nil {
			m.status = errmsg.Format(errmsg.OpPositionLoad, err)
			logger.Warn("position restore failed", "err", err)
		}
		m.saved = pos
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Engine returns the layout engine.
func (m Model) Engine() *carousel.Engine {
	return m.engine
}

// Autoplay reports whether autoplay is running.
func (m Model) Autoplay() bool {
	return m.autoplay
}

// Status returns the status line message.
func (m Model) Status() string {
	return m.status
}

// current returns the index of the card the banner considers selected: the
// one nearest the center with snapping, otherwise the first one reaching
// past the start bound.
func (m Model) current() int {
	if m.opts.Snap {
		return m.engine.SnapTarget()
	}
	start := m.engine.StartBound()
	for _, c := range m.engine.Children() {
		end := c.Rect.Right
		if m.engine.Axis() == carousel.Vertical {
			end = c.Rect.Bottom
		}
		if end > start {
			return c.Index
		}
	}
	return m.engine.FirstVisibleIndex()
}
