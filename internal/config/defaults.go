package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default breakout configuration:
// an 800x600 field with a 5x10 brick wall.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			Speed:        8,
			BottomOffset: 40,
		},
		Ball: BallConfig{
			Radius:        8,
			Speed:         5,
			LaunchVXRatio: 0.7,
		},
		Bricks: BricksConfig{
			Rows:       5,
			Cols:       10,
			Width:      70,
			Height:     25,
			Padding:    10,
			OffsetTop:  60,
			OffsetLeft: 35,
			Points:     10,
		},
		Physics: PhysicsConfig{
			TimeScaled:      false,
			BaseFrameMillis: 1000.0 / 60.0,
		},
		Input: InputConfig{
			MousePrecedence: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
