package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/binocular-breakout/internal/games/breakout"
)

func renderRaster(t *testing.T, mutate func(s *breakout.GameState)) *Raster {
	t.Helper()
	raster := NewRaster(800, 600)
	r, err := New(raster)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	state := breakout.NewDefault().State()
	if mutate != nil {
		mutate(&state)
	}
	r.Render(state)
	return raster
}

func assertPixel(t *testing.T, raster *Raster, x, y int, want color.Color) {
	t.Helper()
	got := raster.Image().RGBAAt(x, y)
	wr, wg, wb, _ := want.RGBA()
	diff := func(a uint8, b uint32) int {
		d := int(a) - int(b>>8)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(got.R, wr) > 2 || diff(got.G, wg) > 2 || diff(got.B, wb) > 2 {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func TestRaster_Scene(t *testing.T) {
	raster := renderRaster(t, nil)

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"background", 5, 590, BackgroundColor},
		{"paddle", 400, 570, PaddleColor},
		{"ball center", 400, 300, BallColor},
		{"brick row 0", 70, 72, BrickColor(0, 5)},
		{"brick row 4", 70, 212, BrickColor(4, 5)},
		{"brick border", 35, 72, BrickBorderColor},
		{"gap between bricks", 110, 72, BackgroundColor},
		{"outside ball", 400, 310, BackgroundColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPixel(t, raster, tt.x, tt.y, tt.want)
		})
	}
}

func TestRaster_ScoreText(t *testing.T) {
	raster := renderRaster(t, nil)
	white := 0
	for y := 12; y < 36; y++ {
		for x := 10; x < 120; x++ {
			if raster.Image().RGBAAt(x, y) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("no score glyph pixels near (10, 30)")
	}
}

func TestRaster_PausedOverlayDarkens(t *testing.T) {
	raster := renderRaster(t, func(s *breakout.GameState) { s.Paused = true })

	want := Blend(BackgroundColor, OverlayColor)
	assertPixel(t, raster, 5, 590, want)

	bg, _ := colorful.MakeColor(raster.Image().RGBAAt(5, 590))
	if bg.Hex() == BackgroundColor.Hex() {
		t.Error("background unchanged under overlay")
	}
}

func TestRaster_WritePNG(t *testing.T) {
	raster := renderRaster(t, nil)

	var buf bytes.Buffer
	if err := raster.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("decoded size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestBrickColor(t *testing.T) {
	tests := []struct {
		row, rows int
		hue       float64
	}{
		{0, 5, 0},
		{1, 5, 72},
		{4, 5, 288},
		{2, 0, 0}, // degenerate row count
	}

	for _, tt := range tests {
		got := BrickColor(tt.row, tt.rows)
		h, s, l := got.Hsl()
		if tt.rows > 0 && (h-tt.hue > 0.5 || tt.hue-h > 0.5) {
			t.Errorf("BrickColor(%d, %d) hue = %.1f, want %.1f", tt.row, tt.rows, h, tt.hue)
		}
		if s < 0.69 || s > 0.71 || l < 0.59 || l > 0.61 {
			t.Errorf("BrickColor(%d, %d) s=%.2f l=%.2f", tt.row, tt.rows, s, l)
		}
	}
}
