package core

// RuntimeConfig contains configuration passed to the driver at startup.
// The simulation itself works in fixed logical units; only the platform
// cares about the terminal size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameMillis returns the nominal duration of one tick in milliseconds.
func (c RuntimeConfig) FrameMillis() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60.0
	}
	return 1000.0 / float64(c.TickRate)
}
