// Package trace records per-frame simulation snapshots as CSV rows, for
// replay comparison and offline inspection of headless runs.
package trace

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
)

// Frame is one CSV row describing the state after an update.
type Frame struct {
	Frame       int     `csv:"frame"`
	PaddleX     float64 `csv:"paddle_x"`
	BallX       float64 `csv:"ball_x"`
	BallY       float64 `csv:"ball_y"`
	BallVX      float64 `csv:"ball_vx"`
	BallVY      float64 `csv:"ball_vy"`
	Score       int     `csv:"score"`
	AliveBricks int     `csv:"alive_bricks"`
	Paused      bool    `csv:"paused"`
	GameOver    bool    `csv:"game_over"`
}

// FromState builds the row for frame n.
func FromState(n int, s breakout.GameState) Frame {
	return Frame{
		Frame:       n,
		PaddleX:     s.Paddle.X,
		BallX:       s.Ball.X,
		BallY:       s.Ball.Y,
		BallVX:      s.Ball.VX,
		BallVY:      s.Ball.VY,
		Score:       s.Score,
		AliveBricks: s.AliveBricks(),
		Paused:      s.Paused,
		GameOver:    s.GameOver,
	}
}

// Recorder writes frames to an io.Writer. The header row is emitted
// with the first frame.
type Recorder struct {
	w             io.Writer
	headerWritten bool
	rows          int
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Rows returns the number of frames written so far.
func (r *Recorder) Rows() int {
	return r.rows
}

// Write appends one frame.
func (r *Recorder) Write(f Frame) error {
	records := []Frame{f}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	r.rows++
	return nil
}

// Run advances g by up to n updates of dtMillis each, recording every
// frame. It stops early once the round is over and returns the number of
// updates performed.
func Run(g *breakout.Game, n int, dtMillis float64, rec *Recorder) (int, error) {
	for i := 1; i <= n; i++ {
		g.Update(dtMillis)
		state := g.State()
		if err := rec.Write(FromState(i, state)); err != nil {
			return i, err
		}
		if state.GameOver {
			return i, nil
		}
	}
	return n, nil
}

// Read parses a trace written by Recorder.
func Read(r io.Reader) ([]Frame, error) {
	var frames []Frame
	if err := gocsv.Unmarshal(r, &frames); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return frames, nil
}
