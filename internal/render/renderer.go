package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vovakirdan/binocular-breakout/internal/core"
	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
)

// Text layout in logical units.
const (
	scoreX        = 10
	scoreY        = 30
	scoreSize     = 20
	overlaySize   = 48
	brickBorderPx = 2
)

// Overlay messages.
const (
	MsgPaused   = "PAUSED"
	MsgGameOver = "GAME OVER"
	MsgWin      = "YOU WIN!"
)

// Renderer draws game snapshots onto a single drawing context.
// It is stateless between frames: every Render repaints the whole scene.
type Renderer struct {
	ctx Context
}

// New acquires a 2D context from surface.
func New(surface Surface) (*Renderer, error) {
	if surface == nil {
		return nil, ErrNoContext
	}
	ctx, err := surface.Context2D()
	if err != nil {
		if errors.Is(err, ErrNoContext) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}
	if ctx == nil {
		return nil, ErrNoContext
	}
	return &Renderer{ctx: ctx}, nil
}

// Render draws one frame of state.
func (r *Renderer) Render(state breakout.GameState) {
	r.clear()
	r.drawBricks(state)
	r.drawPaddle(state.Paddle)
	r.drawBall(state.Ball)
	r.drawScore(state.Score)

	if state.Paused {
		r.drawOverlay(MsgPaused)
	}
	if state.GameOver {
		r.drawOverlay(OutcomeMessage(state))
	}
}

// OutcomeMessage returns the text shown when the round has ended.
func OutcomeMessage(state breakout.GameState) string {
	if state.AllBricksDestroyed() {
		return MsgWin
	}
	return MsgGameOver
}

func (r *Renderer) clear() {
	w, h := r.ctx.Size()
	r.ctx.FillRect(core.NewRect(0, 0, w, h), BackgroundColor)
}

func (r *Renderer) drawBricks(state breakout.GameState) {
	rows := state.Rows()
	for i, b := range state.Bricks {
		if !b.Alive {
			continue
		}
		bounds := b.Bounds()
		r.ctx.FillRect(bounds, BrickColor(state.Row(i), rows))
		r.ctx.StrokeRect(bounds, brickBorderPx, BrickBorderColor)
	}
}

func (r *Renderer) drawPaddle(p breakout.Paddle) {
	r.ctx.FillRect(p.Bounds(), PaddleColor)
}

func (r *Renderer) drawBall(b breakout.Ball) {
	r.ctx.FillCircle(b.X, b.Y, b.Radius, BallColor)
}

func (r *Renderer) drawScore(score int) {
	r.ctx.FillText("Score: "+strconv.Itoa(score), scoreX, scoreY, TextStyle{
		Size:  scoreSize,
		Color: TextColor,
	})
}

func (r *Renderer) drawOverlay(msg string) {
	w, h := r.ctx.Size()
	r.ctx.FillRect(core.NewRect(0, 0, w, h), OverlayColor)
	r.ctx.FillText(msg, w/2, h/2, TextStyle{
		Size:     overlaySize,
		Bold:     true,
		Align:    AlignCenter,
		Baseline: BaselineMiddle,
		Color:    TextColor,
	})
}
