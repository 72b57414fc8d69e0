package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/logging"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/thumbnail"
	"github.com/llehouerou/carousel/internal/ui/card"
)

// demoItems are shown when neither the config nor the command line name any
// pages.
var demoItems = []card.Item{
	{Title: "Welcome", Subtitle: "h/l to scroll"},
	{Title: "Pages wrap", Subtitle: "the last card leads to the first"},
	{Title: "Autoplay", Subtitle: "space to toggle"},
	{Title: "Go to", Subtitle: ": then a number"},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the banner and returns the process exit code. Resources are
// released through defers before main exits.
func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	logger, closer, err := logging.Open(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpLogOpen, err))
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	icons.Init(cfg.Icons)

	opts := app.OptionsFromConfig(cfg)
	opts.Logger = logger
	opts.Items = buildItems(cfg, args, logger)

	if stateMgr, err := state.Open(); err != nil {
		logger.Warn(errmsg.Format(errmsg.OpStateOpen, err))
	} else {
		defer stateMgr.Close()
		opts.State = stateMgr
	}

	cache, err := thumbnail.NewCache("")
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpCacheOpen, err))
	}
	opts.Thumbnails = thumbnail.NewRenderer(cache, thumbnail.ParseScaleType(cfg.ImageScale)).Render

	logger.Info("starting", "items", len(opts.Items), "axis", opts.Axis)

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	return 0
}

// buildItems picks the banner pages: image paths given on the command line,
// then the configured items, then the demo pages.
func buildItems(cfg *config.Config, args []string, logger *slog.Logger) []card.Item {
	if len(args) > 0 {
		items := make([]card.Item, 0, len(args))
		for _, path := range args {
			items = append(items, imageItem(path, logger))
		}
		return items
	}
	if len(cfg.Items) > 0 {
		return app.ItemsFromConfig(cfg.Items)
	}
	return demoItems
}

func imageItem(path string, logger *slog.Logger) card.Item {
	item := card.Item{
		Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Image: path,
	}
	if info, err := os.Stat(path); err == nil {
		item.Subtitle = humanize.Bytes(uint64(info.Size())) //nolint:gosec // size is never negative
	} else {
		logger.Warn("image stat failed", "path", path, "err", err)
	}
	return item
}
