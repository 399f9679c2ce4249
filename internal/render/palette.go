package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Scene colors.
var (
	BackgroundColor  = mustHex("#1a1a1a")
	BrickBorderColor = mustHex("#333333")
	PaddleColor      = mustHex("#4caf50")
	BallColor        = mustHex("#2196f3")
	TextColor        = mustHex("#ffffff")

	// OverlayColor is black at 70% opacity.
	OverlayColor = color.NRGBA{R: 0, G: 0, B: 0, A: 178}
)

// Brick color wheel parameters: hue is spread evenly across rows.
const (
	brickSaturation = 0.7
	brickLightness  = 0.6
)

// BrickColor returns the color for bricks in row out of rows.
func BrickColor(row, rows int) colorful.Color {
	if rows <= 0 {
		rows = 1
	}
	hue := math.Mod(float64(row*360)/float64(rows), 360)
	return colorful.Hsl(hue, brickSaturation, brickLightness).Clamped()
}

// Blend composites c over dst and returns the opaque result.
func Blend(dst, c color.Color) colorful.Color {
	base, _ := colorful.MakeColor(opaque(dst))
	top, _ := colorful.MakeColor(opaque(c))

	_, _, _, a := c.RGBA()
	alpha := float64(a) / 0xffff

	return base.BlendRgb(top, alpha).Clamped()
}

// opaque drops alpha so colorful.MakeColor accepts the color.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 0xff
	return n
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("render: bad palette color %q: %v", s, err))
	}
	return c
}
