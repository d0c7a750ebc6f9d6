package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

// Palette colors used by the PNG renderer.
var (
	BackgroundColor = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf5, A: 0xff}
	ItemColor       = color.NRGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff}
	BorderColor     = color.NRGBA{R: 0x1d, G: 0x4e, B: 0xd8, A: 0xff}
	SelectedColor   = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}
)

const borderWidth = 2

// MaxImageSize bounds both sides of a rendered image, scale included.
const MaxImageSize = 16384

// ErrImageTooLarge is returned when a frame does not fit in MaxImageSize.
var ErrImageTooLarge = errors.New("image too large")

// RenderOptions tunes Render.
type RenderOptions struct {
	// Selected outlines the item with this id in SelectedColor. Zero selects nothing.
	Selected int
	// Scale resizes the finished image. Zero or one keeps it at 1 px per CSS px.
	Scale float64
}

// Render draws the frame as an image: the container as a flat background and
// every box as a bordered rectangle.
func Render(frame Frame, opts RenderOptions) (*image.NRGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, okW := imageSide(frame.Width)
	h, okH := imageSide(frame.Height)
	sw, okSW := imageSide(float64(w) * scale)
	sh, okSH := imageSide(float64(h) * scale)
	if !okW || !okH || !okSW || !okSH {
		return nil, fmt.Errorf("%w: %vx%v px at scale %v (max %d)", ErrImageTooLarge, frame.Width, frame.Height, scale, MaxImageSize)
	}

	img := imaging.New(w, h, BackgroundColor)
	for _, b := range frame.Boxes {
		x0, y0 := pixel(b.X), pixel(b.Y)
		x1, y1 := pixel(b.X+b.Width), pixel(b.Y+b.Height)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		outer := image.Rect(x0, y0, x1, y1)

		border := BorderColor
		if b.ItemID == opts.Selected {
			border = SelectedColor
		}
		img = fill(img, outer, border)
		if outer.Dx() > 2*borderWidth && outer.Dy() > 2*borderWidth {
			img = fill(img, outer.Inset(borderWidth), ItemColor)
		}
	}

	if scale != 1 {
		img = imaging.Resize(img, sw, sh, imaging.NearestNeighbor)
	}
	return img, nil
}

// fill paints the part of r that lies inside img.
func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) *image.NRGBA {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return img
	}
	return imaging.Paste(img, imaging.New(r.Dx(), r.Dy(), c), r.Min)
}

func imageSide(v float64) (int, bool) {
	switch {
	case math.IsNaN(v) || v > MaxImageSize:
		return 0, false
	case v < 1:
		return 1, true
	}
	return int(math.Ceil(v)), true
}

// pixel rounds v to an int, clamped well outside any renderable image.
func pixel(v float64) int {
	const limit = 4 * MaxImageSize
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return int(math.Round(v))
}

// WritePNG renders the frame and encodes it as PNG.
func WritePNG(w io.Writer, frame Frame, opts RenderOptions) error {
	img, err := Render(frame, opts)
	if err != nil {
		return err
	}
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG renders the frame to path. The format follows the file extension.
func SavePNG(path string, frame Frame, opts RenderOptions) error {
	img, err := Render(frame, opts)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
