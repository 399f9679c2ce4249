package main

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binocular-breakout/internal/config"
	"github.com/vovakirdan/binocular-breakout/internal/trace"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRenderFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")

	if err := renderFrame(config.DefaultBreakoutConfig(), 10, -1, true, path, quietLogger()); err != nil {
		t.Fatalf("renderFrame: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("image size = %dx%d, want 800x600", b.Dx(), b.Dy())
	}
}

func TestRenderFrame_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	err := renderFrame(config.DefaultBreakoutConfig(), 0, -1, false, path, quietLogger())
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("error = %v, want one naming %s", err, path)
	}
}

func TestSimulate_MousePinned(t *testing.T) {
	game := simulate(config.DefaultBreakoutConfig(), 1, 450)
	if got := game.State().Paddle.X; got != 400 {
		t.Errorf("paddle x = %v, want 400", got)
	}
}

func TestWriteTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")

	if err := writeTrace(config.DefaultBreakoutConfig(), 5, -1, path, quietLogger()); err != nil {
		t.Fatalf("writeTrace: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	frames, err := trace.Read(f)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(frames) != 5 {
		t.Fatalf("got %d frames, want 5", len(frames))
	}
	if frames[0].Frame != 1 || frames[4].Frame != 5 {
		t.Errorf("frame numbers %d..%d", frames[0].Frame, frames[4].Frame)
	}
}

func TestWriteConfig_RoundTrips(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	cfg.Paddle.Width = 140
	cfg.Input.MousePrecedence = false

	var buf bytes.Buffer
	if err := writeConfig(&buf, cfg); err != nil {
		t.Fatalf("writeConfig: %v", err)
	}

	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := config.LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
