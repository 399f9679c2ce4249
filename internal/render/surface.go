// Package render draws breakout state onto a 2D drawing context. It holds no
// game logic and never mutates the state it is given.
package render

import (
	"errors"
	"image/color"

	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// ErrNoContext is returned when a surface cannot provide a 2D context.
var ErrNoContext = errors.New("render: could not get 2D context")

// Surface is something that can hand out a 2D drawing context.
type Surface interface {
	Context2D() (Context, error)
}

// Align is the horizontal anchor of text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Baseline is the vertical anchor of text relative to its y coordinate.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota // y is the text baseline
	BaselineMiddle                     // y is the vertical center
)

// TextStyle describes how FillText draws a string.
type TextStyle struct {
	Size     float64 // Pixel height in logical units
	Bold     bool
	Align    Align
	Baseline Baseline
	Color    color.Color
}

// Context is a minimal immediate-mode 2D drawing API in logical units.
// Colors may carry alpha; translucent fills blend over what is already there.
type Context interface {
	// Size returns the logical width and height of the drawing area.
	Size() (w, h float64)
	FillRect(r core.Rect, c color.Color)
	// StrokeRect outlines r with a line centered on its edges.
	StrokeRect(r core.Rect, lineWidth float64, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	FillText(text string, x, y float64, style TextStyle)
}
