package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/binocular-breakout/internal/config"
)

func newTestPaddle() *Paddle {
	return &Paddle{X: 350, Y: 560, Width: 100, Height: 20, Speed: 8}
}

func TestPaddleBounceShaping(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		wantVX float64
	}{
		{"left edge", 350, -5},
		{"quarter", 375, -2.5},
		{"center", 400, 0},
		{"three quarters", 425, 2.5},
		{"right edge", 450, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paddle := newTestPaddle()
			ball := &Ball{X: tc.x, Y: 556, VX: 1, VY: 5, Radius: 8, Speed: 5}

			if !CheckPaddleCollision(ball, paddle) {
				t.Fatal("expected a paddle hit")
			}
			if math.Abs(ball.VX-tc.wantVX) > 1e-9 {
				t.Errorf("VX = %v, expected %v", ball.VX, tc.wantVX)
			}
			if ball.VY > 0 {
				t.Errorf("VY = %v, expected upward", ball.VY)
			}
		})
	}
}

func TestPaddleCollisionMisses(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"center left of paddle", 349.9, 560},
		{"center right of paddle", 450.1, 560},
		{"above paddle", 400, 551.9},
		{"below paddle", 400, 588.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := &Ball{X: tc.x, Y: tc.y, VX: 1, VY: 5, Radius: 8, Speed: 5}
			if CheckPaddleCollision(ball, newTestPaddle()) {
				t.Errorf("unexpected hit at (%v, %v)", tc.x, tc.y)
			}
			if ball.VX != 1 || ball.VY != 5 {
				t.Error("a miss must not change velocity")
			}
		})
	}
}

func TestHitFractionUnclamped(t *testing.T) {
	p := newTestPaddle()
	if f := HitFraction(300, p); f != -0.5 {
		t.Errorf("HitFraction(300) = %v, expected -0.5", f)
	}
	if f := HitFraction(400, p); f != 0.5 {
		t.Errorf("HitFraction(400) = %v, expected 0.5", f)
	}
}

func TestCheckWallCollision(t *testing.T) {
	tests := []struct {
		name           string
		ball           Ball
		wantX, wantY   float64
		wantVX, wantVY float64
		wantFell       bool
	}{
		{
			name:  "right wall",
			ball:  Ball{X: 800, Y: 300, VX: 5, VY: 1, Radius: 8},
			wantX: 792, wantY: 300, wantVX: -5, wantVY: 1,
		},
		{
			name:  "left wall",
			ball:  Ball{X: 3, Y: 300, VX: -5, VY: 1, Radius: 8},
			wantX: 8, wantY: 300, wantVX: 5, wantVY: 1,
		},
		{
			name:  "top wall",
			ball:  Ball{X: 400, Y: 5, VX: 1, VY: -5, Radius: 8},
			wantX: 400, wantY: 8, wantVX: 1, wantVY: 5,
		},
		{
			name:  "open field",
			ball:  Ball{X: 400, Y: 300, VX: 1, VY: 1, Radius: 8},
			wantX: 400, wantY: 300, wantVX: 1, wantVY: 1,
		},
		{
			name:  "fell off",
			ball:  Ball{X: 400, Y: 609, VX: 1, VY: 5, Radius: 8},
			wantX: 400, wantY: 609, wantVX: 1, wantVY: 5, wantFell: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			fell := CheckWallCollision(&b, 800, 600)

			if fell != tc.wantFell {
				t.Errorf("fellOff = %v, expected %v", fell, tc.wantFell)
			}
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", b.X, b.Y, tc.wantX, tc.wantY)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestBrickHitSide(t *testing.T) {
	brick := Brick{X: 100, Y: 100, Width: 70, Height: 25, Alive: true}

	tests := []struct {
		name string
		x, y float64
		want CollisionSide
	}{
		{"near left", 101, 112, CollisionLeft},
		{"near right", 169, 112, CollisionRight},
		{"near top", 135, 101, CollisionTop},
		{"near bottom", 135, 124, CollisionBottom},
		{"corner tie prefers horizontal axis", 100, 100, CollisionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := brick.HitSide(tc.x, tc.y); got != tc.want {
				t.Errorf("HitSide(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestCheckBrickCollisionSkipsDeadBricks(t *testing.T) {
	bricks := NewBrickWall(config.DefaultBreakoutConfig().Bricks)
	bricks[0].Alive = false

	ball := &Ball{X: 110, Y: 72, Radius: 8}
	idx, side := CheckBrickCollision(ball, bricks)

	if idx != 1 {
		t.Fatalf("expected brick 1, got %d", idx)
	}
	if side != CollisionLeft {
		t.Errorf("side = %v, expected left", side)
	}
	if !bricks[1].Alive {
		t.Error("CheckBrickCollision must not modify bricks")
	}
}

func TestCheckBrickCollisionMiss(t *testing.T) {
	bricks := NewBrickWall(config.DefaultBreakoutConfig().Bricks)
	ball := &Ball{X: 400, Y: 400, Radius: 8}

	if idx, side := CheckBrickCollision(ball, bricks); idx != -1 || side != CollisionNone {
		t.Errorf("expected no hit, got (%d, %v)", idx, side)
	}
}

func TestNewBrickWallLayout(t *testing.T) {
	bricks := NewBrickWall(config.DefaultBreakoutConfig().Bricks)

	if len(bricks) != 50 {
		t.Fatalf("expected 50 bricks, got %d", len(bricks))
	}

	// Row-major: index 11 is row 1, col 1
	b := bricks[11]
	if b.X != 115 || b.Y != 95 || b.Width != 70 || b.Height != 25 {
		t.Errorf("brick 11 = %+v, expected (115, 95) 70x25", b)
	}

	last := bricks[49]
	if last.X != 755 || last.Y != 200 {
		t.Errorf("last brick at (%v, %v), expected (755, 200)", last.X, last.Y)
	}
	if CountAlive(bricks) != 50 {
		t.Error("new wall should be fully alive")
	}
}

func TestApplyCollisionBounce(t *testing.T) {
	b := &Ball{VX: 2, VY: 3}

	ApplyCollisionBounce(b, CollisionLeft)
	if b.VX != -2 || b.VY != 3 {
		t.Errorf("left bounce: (%v, %v)", b.VX, b.VY)
	}
	ApplyCollisionBounce(b, CollisionBottom)
	if b.VX != -2 || b.VY != -3 {
		t.Errorf("bottom bounce: (%v, %v)", b.VX, b.VY)
	}
	ApplyCollisionBounce(b, CollisionNone)
	if b.VX != -2 || b.VY != -3 {
		t.Error("CollisionNone should not bounce")
	}
}
