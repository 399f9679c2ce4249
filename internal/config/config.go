// Package config provides YAML-based game configuration loading for the
// breakout simulation and its drivers.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configs that cannot produce
// a playable layout.
var ErrInvalidConfig = errors.New("invalid config")

// BreakoutConfig contains all configuration for the breakout simulation.
type BreakoutConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
}

// CanvasConfig defines the logical playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry. The paddle starts horizontally
// centered, BottomOffset above the canvas bottom.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// BallConfig defines the ball. It starts at the canvas center moving up and
// to the right with vx = speed*launch_vx_ratio, vy = -speed.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	LaunchVXRatio float64 `yaml:"launch_vx_ratio"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Padding    float64 `yaml:"padding"`
	OffsetTop  float64 `yaml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left"`
	Points     int     `yaml:"points"`
}

// PhysicsConfig controls how elapsed time feeds the integration step.
type PhysicsConfig struct {
	// TimeScaled scales each step by dt/BaseFrameMillis. When false every
	// Update moves objects by a constant amount regardless of dt.
	TimeScaled      bool    `yaml:"time_scaled"`
	BaseFrameMillis float64 `yaml:"base_frame_ms"`
}

// InputConfig controls keyboard/mouse precedence.
type InputConfig struct {
	// MousePrecedence re-centers the paddle under the pointer on every
	// update, discarding keyboard movement. When false the pointer only
	// moves the paddle on updates where it changed.
	MousePrecedence bool `yaml:"mouse_precedence"`
}

// Validate reports whether the config describes a playable layout.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddle.Width > c.Canvas.Width:
		return fmt.Errorf("%w: paddle wider than canvas", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0:
		return fmt.Errorf("%w: brick grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Bricks.Rows, c.Bricks.Cols)
	case c.Bricks.Width <= 0 || c.Bricks.Height <= 0:
		return fmt.Errorf("%w: brick size must be positive", ErrInvalidConfig)
	case c.Physics.TimeScaled && c.Physics.BaseFrameMillis <= 0:
		return fmt.Errorf("%w: base_frame_ms must be positive when time_scaled", ErrInvalidConfig)
	}
	return nil
}
