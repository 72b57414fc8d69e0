// Package thumbnail renders images as half-block terminal art sized to a
// cell box.
package thumbnail

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG decoder for banner images
	_ "image/png"  // PNG decoder for banner images
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ScaleType controls how an image is fitted into its cell box.
type ScaleType int

const (
	// ScaleNone draws the image at its own size, centered and clipped.
	ScaleNone ScaleType = iota
	// ScaleFitCenter shrinks or grows the image to fit inside the box,
	// keeping its aspect ratio, and centers it.
	ScaleFitCenter
	// ScaleCenterCrop fills the box, keeping the aspect ratio and cropping
	// the overflow evenly on both sides.
	ScaleCenterCrop
)

// ParseScaleType converts a config string. Unknown values map to ScaleFitCenter.
func ParseScaleType(s string) ScaleType {
	switch s {
	case "none":
		return ScaleNone
	case "center_crop":
		return ScaleCenterCrop
	default:
		return ScaleFitCenter
	}
}

func (s ScaleType) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleCenterCrop:
		return "center_crop"
	default:
		return "fit_center"
	}
}

// Decode reads a PNG or JPEG file.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Fit scales img into a cols x rows cell box. Each cell holds two vertical
// pixels, so the result is cols x rows*2 pixels. Uncovered pixels are
// transparent.
func Fit(img image.Image, cols, rows int, scale ScaleType) image.Image {
	bw, bh := cols, rows*2
	box := image.NewRGBA(image.Rect(0, 0, max(bw, 0), max(bh, 0)))
	if bw <= 0 || bh <= 0 {
		return box
	}

	src := img
	switch scale {
	case ScaleFitCenter:
		src = resize.Thumbnail(uint(bw), uint(bh), img, resize.Lanczos3) //nolint:gosec // box sizes are small
		if sb := src.Bounds(); sb.Dx() < bw && sb.Dy() < bh {
			// Thumbnail never enlarges.
			src = scaleBy(img, fitRatio(sb.Dx(), sb.Dy(), bw, bh, false))
		}
	case ScaleCenterCrop:
		ib := img.Bounds()
		src = scaleBy(img, fitRatio(ib.Dx(), ib.Dy(), bw, bh, true))
	case ScaleNone:
	}

	sb := src.Bounds()
	// Center src in the box: a negative offset crops, a positive one pads.
	dx := (bw - sb.Dx()) / 2
	dy := (bh - sb.Dy()) / 2
	dst := image.Rect(dx, dy, dx+sb.Dx(), dy+sb.Dy()).Intersect(box.Bounds())
	srcPt := sb.Min.Add(dst.Min.Sub(image.Pt(dx, dy)))
	draw.Draw(box, dst, src, srcPt, draw.Src)
	return box
}

// fitRatio returns the scale factor that makes a w x h image fit (or cover,
// when cover is set) a bw x bh box.
func fitRatio(w, h, bw, bh int, cover bool) float64 {
	if w == 0 || h == 0 {
		return 1
	}
	rw := float64(bw) / float64(w)
	rh := float64(bh) / float64(h)
	if cover {
		return max(rw, rh)
	}
	return min(rw, rh)
}

func scaleBy(img image.Image, ratio float64) image.Image {
	b := img.Bounds()
	w := max(int(float64(b.Dx())*ratio+0.5), 1)
	h := max(int(float64(b.Dy())*ratio+0.5), 1)
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3) //nolint:gosec // box sizes are small
}

// HalfBlocks renders img as rows of upper half blocks: the foreground carries
// the top pixel of each cell and the background the bottom one. Fully
// transparent pixels fall back to the terminal background.
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2

	lines := make([]string, 0, rows)
	for row := range rows {
		var sb strings.Builder
		y := b.Min.Y + row*2
		for x := b.Min.X; x < b.Max.X; x++ {
			top, topOK := hexColor(img.At(x, y))
			bottom, bottomOK := "", false
			if y+1 < b.Max.Y {
				bottom, bottomOK = hexColor(img.At(x, y+1))
			}
			sb.WriteString(cell(top, topOK, bottom, bottomOK))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func cell(top string, topOK bool, bottom string, bottomOK bool) string {
	switch {
	case !topOK && !bottomOK:
		return " "
	case !topOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(bottom)).Render("▄")
	case !bottomOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(top)).Render("▀")
	default:
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(top)).
			Background(lipgloss.Color(bottom)).
			Render("▀")
	}
}

func hexColor(c color.Color) (string, bool) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return "", false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return cf.Hex(), true
}

// Render decodes path and renders it into a cols x rows cell box.
func Render(path string, cols, rows int, scale ScaleType) (string, error) {
	img, err := Decode(path)
	if err != nil {
		return "", err
	}
	return HalfBlocks(Fit(img, cols, rows, scale)), nil
}
