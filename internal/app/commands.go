package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/ui/card"
)

// SettleDelay is how long manual scrolling must pause before snapping.
const SettleDelay = 250 * time.Millisecond

// FrameCmd returns a command that sends FrameMsg after one frame.
func FrameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

// SettleCmd returns a command that sends SettleMsg after SettleDelay.
func SettleCmd(gen int) tea.Cmd {
	return tea.Tick(SettleDelay, func(_ time.Time) tea.Msg {
		return SettleMsg{Gen: gen}
	})
}

// AutoplayCmd returns a command that sends AutoplayMsg after interval.
func AutoplayCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return AutoplayMsg{Gen: gen}
	})
}

// LoadThumbnailsCmd renders the images of all items off the update loop.
func LoadThumbnailsCmd(items []card.Item, cols, rows int, render ThumbnailFunc) tea.Cmd {
	if render == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	return func() tea.Msg {
		msg := ThumbnailsMsg{Cols: cols, Rows: rows, Images: map[int]string{}}
		for i, it := range items {
			if it.Image == "" {
				continue
			}
			out, err := render(it.Image, cols, rows)
			if err != nil {
				if msg.Err == "" {
					msg.Err = errmsg.FormatWith(errmsg.OpImageLoad, it.Image, err)
				}
				continue
			}
			msg.Images[i] = out
		}
		return msg
	}
}
