package breakout

import (
	"hash/fnv"
	"math"
)

// GameState is the complete simulation state. Values returned by
// Game.State are deep copies; mutating them never affects the game.
type GameState struct {
	Paddle   Paddle
	Ball     Ball
	Bricks   []Brick // Row-major, Rows*Columns entries
	Columns  int     // Bricks per row, for row-indexed rendering
	Score    int
	Paused   bool
	GameOver bool
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	clone := s
	clone.Bricks = make([]Brick, len(s.Bricks))
	copy(clone.Bricks, s.Bricks)
	return clone
}

// Row returns the grid row of the brick at index i.
func (s GameState) Row(i int) int {
	if s.Columns <= 0 {
		return 0
	}
	return i / s.Columns
}

// Rows returns the number of brick rows.
func (s GameState) Rows() int {
	if s.Columns <= 0 {
		return 0
	}
	return (len(s.Bricks) + s.Columns - 1) / s.Columns
}

// AliveBricks returns the number of bricks still standing.
func (s GameState) AliveBricks() int {
	return CountAlive(s.Bricks)
}

// AllBricksDestroyed reports whether every brick is dead.
func (s GameState) AllBricksDestroyed() bool {
	return s.AliveBricks() == 0
}

// Won reports a finished game with the wall cleared. The outcome is not
// stored anywhere; it is recomputed from brick state.
func (s GameState) Won() bool {
	return s.GameOver && s.AllBricksDestroyed()
}

// Lost reports a finished game with bricks remaining (the ball was lost).
func (s GameState) Lost() bool {
	return s.GameOver && !s.AllBricksDestroyed()
}

// Hash returns an FNV-1a hash over every field of the state, used to check
// determinism and that no-op updates leave the state untouched.
func (s GameState) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU64 := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}
	writeF := func(v float64) { writeU64(math.Float64bits(v)) }
	writeB := func(v bool) {
		if v {
			writeU64(1)
		} else {
			writeU64(0)
		}
	}

	p := s.Paddle
	for _, v := range []float64{p.X, p.Y, p.Width, p.Height, p.Speed} {
		writeF(v)
	}
	b := s.Ball
	for _, v := range []float64{b.X, b.Y, b.VX, b.VY, b.Radius, b.Speed} {
		writeF(v)
	}
	for _, br := range s.Bricks {
		writeF(br.X)
		writeF(br.Y)
		writeF(br.Width)
		writeF(br.Height)
		writeB(br.Alive)
	}
	writeU64(uint64(len(s.Bricks))) //#nosec G115 -- length is never negative
	writeU64(uint64(s.Columns))     //#nosec G115 -- hash computation
	writeU64(uint64(s.Score))       //#nosec G115 -- hash computation
	writeB(s.Paused)
	writeB(s.GameOver)

	return h.Sum64()
}

// InputState holds the driver's current input flags. It is transient and
// not part of GameState.
type InputState struct {
	Left   bool
	Right  bool
	MouseX float64
}

// InputPatch is a partial InputState: nil fields are left unchanged when
// merged.
type InputPatch struct {
	Left   *bool
	Right  *bool
	MouseX *float64
}

// Merge returns s with every non-nil field of p applied.
func (s InputState) Merge(p InputPatch) InputState {
	if p.Left != nil {
		s.Left = *p.Left
	}
	if p.Right != nil {
		s.Right = *p.Right
	}
	if p.MouseX != nil {
		s.MouseX = *p.MouseX
	}
	return s
}

// LeftPatch sets only the left flag.
func LeftPatch(held bool) InputPatch {
	return InputPatch{Left: &held}
}

// RightPatch sets only the right flag.
func RightPatch(held bool) InputPatch {
	return InputPatch{Right: &held}
}

// MousePatch sets only the pointer position.
func MousePatch(x float64) InputPatch {
	return InputPatch{MouseX: &x}
}
