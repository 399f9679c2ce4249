// Package breakout implements the breakout simulation: paddle and ball
// kinematics, axis-aligned collision against a fixed brick wall, scoring and
// the single terminal state.
package breakout

import (
	"github.com/vovakirdan/binocular-breakout/internal/config"
	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// Brick is a single brick in the wall. Position never changes; Alive only
// goes back to true when the whole game is reset.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
}

// Bounds returns the brick rectangle.
func (b Brick) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// HitSide picks the edge closest to the point (x, y). Ties between a
// vertical and a horizontal edge resolve to the vertical (left/right) edge.
func (b Brick) HitSide(x, y float64) CollisionSide {
	fromLeft := core.AbsF(x - b.X)
	fromRight := core.AbsF(x - (b.X + b.Width))
	fromTop := core.AbsF(y - b.Y)
	fromBottom := core.AbsF(y - (b.Y + b.Height))

	minDist := min(fromLeft, fromRight, fromTop, fromBottom)

	switch minDist {
	case fromLeft:
		return CollisionLeft
	case fromRight:
		return CollisionRight
	case fromTop:
		return CollisionTop
	default:
		return CollisionBottom
	}
}

// NewBrickWall lays out rows*cols live bricks in row-major order.
func NewBrickWall(cfg config.BricksConfig) []Brick {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			bricks = append(bricks, Brick{
				X:      float64(col)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
				Y:      float64(row)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
				Width:  cfg.Width,
				Height: cfg.Height,
				Alive:  true,
			})
		}
	}

	return bricks
}

// CountAlive returns the number of bricks still standing.
func CountAlive(bricks []Brick) int {
	count := 0
	for _, b := range bricks {
		if b.Alive {
			count++
		}
	}
	return count
}
