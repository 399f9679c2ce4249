package core

// Color is a foreground color for a screen cell, stored as a "#rrggbb" hex
// string so the platform can hand it straight to a true-color terminal.
// The zero value means "terminal default".
type Color string

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = ""

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
