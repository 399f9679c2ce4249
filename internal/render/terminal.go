package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// Smallest screen the terminal surface will draw on.
const (
	MinTerminalCols = 20
	MinTerminalRows = 8
)

// Glyphs used by the terminal surface.
const (
	GlyphFill = '█'
	GlyphBall = '●'
)

// Terminal is a surface backed by a character screen. Logical coordinates
// are scaled down to cells; each cell keeps a single foreground color.
type Terminal struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
}

// NewTerminal wraps screen as a surface with the given logical size.
func NewTerminal(screen *core.Screen, logicalW, logicalH float64) *Terminal {
	return &Terminal{screen: screen, logicalW: logicalW, logicalH: logicalH}
}

// Screen returns the underlying cell buffer.
func (t *Terminal) Screen() *core.Screen {
	return t.screen
}

// Context2D implements Surface.
func (t *Terminal) Context2D() (Context, error) {
	if t == nil || t.screen == nil {
		return nil, ErrNoContext
	}
	cols, rows := t.screen.Width(), t.screen.Height()
	if cols < MinTerminalCols || rows < MinTerminalRows {
		return nil, fmt.Errorf("%w: screen %dx%d is below %dx%d",
			ErrNoContext, cols, rows, MinTerminalCols, MinTerminalRows)
	}
	if t.logicalW <= 0 || t.logicalH <= 0 {
		return nil, fmt.Errorf("%w: logical size %gx%g", ErrNoContext, t.logicalW, t.logicalH)
	}
	return &termContext{
		screen:   t.screen,
		logicalW: t.logicalW,
		logicalH: t.logicalH,
		scaleX:   float64(cols) / t.logicalW,
		scaleY:   float64(rows) / t.logicalH,
	}, nil
}

type termContext struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
	scaleX   float64
	scaleY   float64
}

func (c *termContext) Size() (float64, float64) {
	return c.logicalW, c.logicalH
}

// cellSpan converts a logical rectangle to the half-open range of cells
// whose centers it covers.
func (c *termContext) cellSpan(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X * c.scaleX))
	y0 = int(math.Round(r.Y * c.scaleY))
	x1 = int(math.Round(r.Right() * c.scaleX))
	y1 = int(math.Round(r.Bottom() * c.scaleY))

	// Anything with area stays visible.
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (c *termContext) FillRect(r core.Rect, col color.Color) {
	x0, y0, x1, y1 := c.cellSpan(r)
	if isOpaque(col) {
		hex := toHex(col)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.screen.Set(x, y, GlyphFill, hex)
			}
		}
		return
	}

	// Translucent fills tint what is already there.
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := c.screen.GetCell(x, y)
			c.screen.SetColor(x, y, core.Color(Blend(cellColor(cell), col).Hex()))
		}
	}
}

// StrokeRect draws outlines only when the line is at least half a cell
// thick; thinner lines vanish at terminal resolution.
func (c *termContext) StrokeRect(r core.Rect, lineWidth float64, col color.Color) {
	if lineWidth*c.scaleX < 0.5 || lineWidth*c.scaleY < 0.5 {
		return
	}
	x0, y0, x1, y1 := c.cellSpan(r)
	hex := toHex(col)
	for x := x0; x < x1; x++ {
		c.screen.Set(x, y0, GlyphFill, hex)
		c.screen.Set(x, y1-1, GlyphFill, hex)
	}
	for y := y0; y < y1; y++ {
		c.screen.Set(x0, y, GlyphFill, hex)
		c.screen.Set(x1-1, y, GlyphFill, hex)
	}
}

func (c *termContext) FillCircle(cx, cy, radius float64, col color.Color) {
	hex := toHex(col)
	x0, y0, x1, y1 := c.cellSpan(core.SquareAround(cx, cy, radius))

	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Cell center back in logical space.
			lx := (float64(x) + 0.5) / c.scaleX
			ly := (float64(y) + 0.5) / c.scaleY
			if (lx-cx)*(lx-cx)+(ly-cy)*(ly-cy) <= radius*radius {
				c.screen.Set(x, y, GlyphBall, hex)
				drawn = true
			}
		}
	}
	if !drawn {
		c.screen.Set(int(math.Floor(cx*c.scaleX)), int(math.Floor(cy*c.scaleY)), GlyphBall, hex)
	}
}

// FillText writes text one rune per cell; size and weight are ignored.
func (c *termContext) FillText(text string, x, y float64, style TextStyle) {
	n := len([]rune(text))
	col := int(math.Round(x * c.scaleX))
	if style.Align == AlignCenter {
		col -= n / 2
	}
	row := int(math.Floor(y * c.scaleY))
	if style.Baseline == BaselineAlphabetic {
		// The baseline sits at the bottom of the glyph row.
		row = int(math.Ceil(y*c.scaleY)) - 1
	}
	c.screen.DrawText(col, max(row, 0), text, toHex(textColor(style)))
}

func isOpaque(col color.Color) bool {
	_, _, _, a := col.RGBA()
	return a == 0xffff
}

func toHex(col color.Color) core.Color {
	if cf, ok := col.(colorful.Color); ok {
		return core.Color(cf.Hex())
	}
	cf, _ := colorful.MakeColor(opaque(col))
	return core.Color(cf.Hex())
}

// cellColor returns the cell color, treating uncolored cells as black.
func cellColor(cell core.Cell) color.Color {
	if cell.Color.IsDefault() {
		return color.Black
	}
	cf, err := colorful.Hex(strings.ToLower(string(cell.Color)))
	if err != nil {
		return color.Black
	}
	return cf
}
