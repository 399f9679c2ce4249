package breakout

import (
	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// Ball represents the ball state. Speed is the base speed scalar used to
// shape paddle bounces; |(VX, VY)| is not kept equal to it.
type Ball struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity per step
	Radius float64
	Speed  float64
}

// Bounds returns the ball's circumscribing square.
func (b *Ball) Bounds() core.Rect {
	return core.SquareAround(b.X, b.Y, b.Radius)
}

// Move advances the ball by step velocity units.
func (b *Ball) Move(step float64) {
	b.X += b.VX * step
	b.Y += b.VY * step
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle represents the player's paddle.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Keyboard movement per step
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterOn moves the paddle so its center sits at x.
func (p *Paddle) CenterOn(x float64) {
	p.X = x - p.Width/2
}

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// String returns the side name.
func (s CollisionSide) String() string {
	switch s {
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	default:
		return "none"
	}
}

// CheckWallCollision bounces the ball off the left, right and top walls of a
// w x h field and clamps it back inside. It reports whether the ball has
// dropped completely below the bottom edge.
func CheckWallCollision(ball *Ball, w, h float64) (fellOff bool) {
	r := ball.Radius

	if ball.X-r <= 0 || ball.X+r >= w {
		ball.BounceX()
		ball.X = core.ClampF(ball.X, r, w-r)
	}

	if ball.Y-r <= 0 {
		ball.BounceY()
		ball.Y = r
	}

	return ball.Y-r > h
}

// HitFraction returns where along the paddle x lies: 0 at the left edge,
// 1 at the right edge. Values outside [0, 1] are not clamped.
func HitFraction(x float64, paddle *Paddle) float64 {
	return (x - paddle.X) / paddle.Width
}

// CheckPaddleCollision tests the ball against the paddle. The ball's square
// must overlap the paddle vertically and its center must lie within the
// paddle's horizontal span. On a hit the ball is sent upward from the
// paddle's top and its horizontal velocity is set from the hit position:
// center gives 0, the edges give -Speed and +Speed.
func CheckPaddleCollision(ball *Ball, paddle *Paddle) bool {
	r := ball.Radius

	if ball.Y+r < paddle.Y || ball.Y-r > paddle.Y+paddle.Height {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.X+paddle.Width {
		return false
	}

	ball.VY = -core.AbsF(ball.VY)
	ball.Y = paddle.Y - r

	hit := HitFraction(ball.X, paddle)
	ball.VX = (hit - 0.5) * ball.Speed * 2

	return true
}

// CheckBrickCollision finds the first live brick, in slice order, whose
// rectangle overlaps the ball's square. It returns the brick index and the
// side that was hit, or (-1, CollisionNone). The brick is not modified.
func CheckBrickCollision(ball *Ball, bricks []Brick) (index int, side CollisionSide) {
	bounds := ball.Bounds()

	for i := range bricks {
		if !bricks[i].Alive {
			continue
		}
		if !bounds.Overlaps(bricks[i].Bounds()) {
			continue
		}
		return i, bricks[i].HitSide(ball.X, ball.Y)
	}

	return -1, CollisionNone
}

// ApplyCollisionBounce applies the appropriate bounce based on collision side.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.BounceY()
	case CollisionLeft, CollisionRight:
		ball.BounceX()
	}
}
