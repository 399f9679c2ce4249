package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// Raster is an in-memory RGBA surface with one pixel per logical unit.
type Raster struct {
	img *image.RGBA
}

// NewRaster creates a raster of the given pixel size.
func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Context2D implements Surface. An empty raster has no context.
func (r *Raster) Context2D() (Context, error) {
	if r == nil || r.img == nil || r.img.Rect.Empty() {
		return nil, ErrNoContext
	}
	return &rasterContext{img: r.img}, nil
}

// WritePNG encodes the current image as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

type rasterContext struct {
	img *image.RGBA
}

func (c *rasterContext) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *rasterContext) FillRect(r core.Rect, col color.Color) {
	draw.Draw(c.img, pixelRect(r), image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *rasterContext) StrokeRect(r core.Rect, lineWidth float64, col color.Color) {
	if lineWidth <= 0 {
		return
	}
	half := lineWidth / 2
	outer := core.NewRect(r.X-half, r.Y-half, r.W+lineWidth, r.H+lineWidth)

	c.FillRect(core.NewRect(outer.X, outer.Y, outer.W, lineWidth), col)                 // top
	c.FillRect(core.NewRect(outer.X, outer.Bottom()-lineWidth, outer.W, lineWidth), col) // bottom
	c.FillRect(core.NewRect(outer.X, outer.Y+lineWidth, lineWidth, outer.H-2*lineWidth), col)
	c.FillRect(core.NewRect(outer.Right()-lineWidth, outer.Y+lineWidth, lineWidth, outer.H-2*lineWidth), col)
}

// FillCircle fills every pixel whose center lies inside the circle,
// one horizontal span per row.
func (c *rasterContext) FillCircle(cx, cy, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	src := image.NewUniform(col)
	top := int(math.Floor(cy - radius))
	bottom := int(math.Ceil(cy + radius))

	for py := top; py < bottom; py++ {
		dy := float64(py) + 0.5 - cy
		if dy*dy > radius*radius {
			continue
		}
		dx := math.Sqrt(radius*radius - dy*dy)
		x0 := int(math.Ceil(cx - dx - 0.5))
		x1 := int(math.Floor(cx+dx-0.5)) + 1
		if x1 <= x0 {
			continue
		}
		draw.Draw(c.img, image.Rect(x0, py, x1, py+1), src, image.Point{}, draw.Over)
	}
}

// FillText draws text with the 7x13 bitmap face, scaled to style.Size.
func (c *rasterContext) FillText(text string, x, y float64, style TextStyle) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineH := metrics.Height.Ceil()

	d := &font.Drawer{Face: face}
	glyphW := d.MeasureString(text).Ceil()
	if style.Bold {
		glyphW++
	}

	// Rasterize at native size first, then scale into place.
	glyphs := image.NewRGBA(image.Rect(0, 0, glyphW, lineH))
	d.Dst = glyphs
	d.Src = image.NewUniform(textColor(style))
	d.Dot = fixed.P(0, ascent)
	d.DrawString(text)
	if style.Bold {
		d.Dot = fixed.P(1, ascent)
		d.DrawString(text)
	}

	size := style.Size
	if size <= 0 {
		size = float64(lineH)
	}
	scale := size / float64(lineH)
	w := float64(glyphW) * scale
	h := float64(lineH) * scale

	left := x
	if style.Align == AlignCenter {
		left = x - w/2
	}
	top := y - float64(ascent)*scale
	if style.Baseline == BaselineMiddle {
		top = y - h/2
	}

	dst := pixelRect(core.NewRect(left, top, w, h))
	draw.NearestNeighbor.Scale(c.img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}

func textColor(style TextStyle) color.Color {
	if style.Color == nil {
		return TextColor
	}
	return style.Color
}

// pixelRect rounds a logical rectangle to whole pixels.
func pixelRect(r core.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}
