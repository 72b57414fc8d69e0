package app

// FrameMsg advances a smooth scroll by one frame.
type FrameMsg struct {
	Gen int
}

// SettleMsg fires after manual scrolling stops and starts the snap.
type SettleMsg struct {
	Gen int
}

// AutoplayMsg advances the banner to the next card.
type AutoplayMsg struct {
	Gen int
}

// ThumbnailsMsg carries rendered images for one card box size.
type ThumbnailsMsg struct {
	Cols, Rows int
	Images     map[int]string
	Err        string // first failure, formatted for the status line
}
