package breakout

import (
	"github.com/vovakirdan/binocular-breakout/internal/config"
	"github.com/vovakirdan/binocular-breakout/internal/core"
)

// Game owns the breakout state and advances it one frame per Update.
//
// A Game is not safe for concurrent use. The driver must call SetInput,
// TogglePause, Reset, Update and State from a single goroutine.
type Game struct {
	cfg   config.BreakoutConfig
	state GameState
	input InputState

	// lastMouseX is the pointer position seen by the previous update,
	// used when the mouse does not take precedence.
	lastMouseX float64

	frames int
}

// New creates a game from cfg. The caller is expected to pass a validated
// config; see config.BreakoutConfig.Validate.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg}
	g.input = InputState{MouseX: cfg.Canvas.Width / 2}
	g.lastMouseX = g.input.MouseX
	g.state = g.initialState()
	return g
}

// NewDefault creates a game with the default 800x600 layout.
func NewDefault() *Game {
	return New(config.DefaultBreakoutConfig())
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// initialState builds the startup layout.
func (g *Game) initialState() GameState {
	c := g.cfg

	return GameState{
		Paddle: Paddle{
			X:      c.Canvas.Width/2 - c.Paddle.Width/2,
			Y:      c.Canvas.Height - c.Paddle.BottomOffset,
			Width:  c.Paddle.Width,
			Height: c.Paddle.Height,
			Speed:  c.Paddle.Speed,
		},
		Ball: Ball{
			X:      c.Canvas.Width / 2,
			Y:      c.Canvas.Height / 2,
			VX:     c.Ball.Speed * c.Ball.LaunchVXRatio,
			VY:     -c.Ball.Speed,
			Radius: c.Ball.Radius,
			Speed:  c.Ball.Speed,
		},
		Bricks:  NewBrickWall(c.Bricks),
		Columns: c.Bricks.Cols,
	}
}

// State returns a deep copy of the current state.
func (g *Game) State() GameState {
	return g.state.Clone()
}

// Input returns the current input flags.
func (g *Game) Input() InputState {
	return g.input
}

// Frames returns the number of updates that actually advanced the
// simulation since the last reset.
func (g *Game) Frames() int {
	return g.frames
}

// SetInput merges a partial input patch into the current input.
func (g *Game) SetInput(p InputPatch) {
	g.input = g.input.Merge(p)
}

// TogglePause flips the paused flag. It works in any state, including
// after the game is over.
func (g *Game) TogglePause() {
	g.state.Paused = !g.state.Paused
}

// Reset replaces the state with a fresh startup layout. Input flags are
// kept since they reflect what the player is currently holding.
func (g *Game) Reset() {
	g.state = g.initialState()
	g.lastMouseX = g.input.MouseX
	g.frames = 0
}

// Update advances the simulation by one frame. It does nothing while the
// game is paused or over.
//
// With physics.time_scaled off (the default) every call moves the paddle
// and ball by one fixed step and dtMillis is ignored, so game speed follows
// the caller's frame rate. With it on, steps are scaled by
// dtMillis/base_frame_ms.
func (g *Game) Update(dtMillis float64) {
	if g.state.Paused || g.state.GameOver {
		return
	}

	step := g.step(dtMillis)

	g.updatePaddle(step)
	g.updateBall(step)
	g.checkCollisions()
	g.checkWinCondition()

	g.frames++
}

// step converts elapsed time into a movement multiplier.
func (g *Game) step(dtMillis float64) float64 {
	if !g.cfg.Physics.TimeScaled {
		return 1
	}
	if dtMillis <= 0 {
		return 0
	}
	return dtMillis / g.cfg.Physics.BaseFrameMillis
}

// updatePaddle applies keyboard movement, then pointer centering, then
// clamps the paddle inside the field. With mouse precedence on, the
// centering always runs and keyboard movement has no lasting effect.
func (g *Game) updatePaddle(step float64) {
	paddle := &g.state.Paddle

	if g.input.Left {
		paddle.X -= paddle.Speed * step
	}
	if g.input.Right {
		paddle.X += paddle.Speed * step
	}

	if g.cfg.Input.MousePrecedence || g.input.MouseX != g.lastMouseX {
		paddle.CenterOn(g.input.MouseX)
	}
	g.lastMouseX = g.input.MouseX

	paddle.X = core.ClampF(paddle.X, 0, g.cfg.Canvas.Width-paddle.Width)
}

// updateBall integrates the ball and resolves walls. Dropping below the
// bottom edge ends the game; there are no extra lives.
func (g *Game) updateBall(step float64) {
	ball := &g.state.Ball
	ball.Move(step)

	if CheckWallCollision(ball, g.cfg.Canvas.Width, g.cfg.Canvas.Height) {
		g.state.GameOver = true
	}
}

// checkCollisions resolves the paddle first, then at most one brick.
func (g *Game) checkCollisions() {
	CheckPaddleCollision(&g.state.Ball, &g.state.Paddle)

	idx, side := CheckBrickCollision(&g.state.Ball, g.state.Bricks)
	if idx < 0 {
		return
	}

	g.state.Bricks[idx].Alive = false
	g.state.Score += g.cfg.Bricks.Points
	ApplyCollisionBounce(&g.state.Ball, side)
}

// checkWinCondition ends the game once the wall is cleared.
func (g *Game) checkWinCondition() {
	if g.state.AllBricksDestroyed() {
		g.state.GameOver = true
	}
}
