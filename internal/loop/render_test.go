package loop

import (
	"testing"
	"time"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/sim"
)

func TestShouldRenderBlink(t *testing.T) {
	tests := []struct {
		remaining float64
		want      bool
	}{
		{0, true},
		{-0.1, true},
		{1.5, true},
		{1.45, false},
		{0.05, false},
	}
	for _, tt := range tests {
		if got := shouldRenderBlink(tt.remaining, config.PlayerBlinkFrequency); got != tt.want {
			t.Errorf("shouldRenderBlink(%v) = %v, want %v", tt.remaining, got, tt.want)
		}
	}
}

func TestParticleColor(t *testing.T) {
	tests := []struct {
		color object.Color
		dim   bool
		want  draw.Color
	}{
		{object.ColorRed, false, draw.ColorRed},
		{object.ColorRed, true, draw.ColorDarkRed},
		{object.ColorGreen, true, draw.ColorDarkGreen},
		{object.ColorCyan, false, draw.ColorCyan},
		{object.ColorWhite, true, draw.ColorGray},
	}
	for _, tt := range tests {
		if got := particleColor(tt.color, tt.dim); got != tt.want {
			t.Errorf("particleColor(%v, %v) = %v, want %v", tt.color, tt.dim, got, tt.want)
		}
	}
}

type midSource struct{}

func (midSource) Between(min, max float64) float64 { return (min + max) / 2 }

func TestDrawWorld_PlayerAndEnemy(t *testing.T) {
	// One sub-pixel per logical unit
	c := draw.NewScaledCanvas(800, 300, 800, 600)
	g := sim.New(sim.Landscape, midSource{})
	g.Player().Invulnerable = 0
	g.Store().AddEnemy(object.NewEnemy(100, 100, 0, 10))

	drawWorld(c, g)

	p := g.Player()
	if got := c.At(int(p.X+p.W/2), int(p.Y+p.H/2)); got != draw.ColorCyan {
		t.Errorf("player pixel = %v, want cyan", got)
	}
	if got := c.At(118, 120); got != draw.ColorRed {
		t.Errorf("enemy pixel = %v, want red", got)
	}
}

func TestDrawWorld_BlinkingPlayerHidden(t *testing.T) {
	c := draw.NewScaledCanvas(800, 300, 800, 600)
	g := sim.New(sim.Landscape, midSource{})
	g.Player().Invulnerable = 1.45

	drawWorld(c, g)

	p := g.Player()
	if got := c.At(int(p.X+p.W/2), int(p.Y+p.H/2)); got != draw.ColorNone {
		t.Errorf("player pixel = %v, want none while blinking", got)
	}
}

func TestHUD(t *testing.T) {
	h := newHUD()

	h.ScoreChanged(300)
	h.LivesChanged(2)
	if h.score != 300 || h.lives != 2 {
		t.Fatalf("hud = %d/%d, want 300/2", h.score, h.lives)
	}
	if h.event != "SHIP LOST" {
		t.Errorf("event = %q, want SHIP LOST", h.event)
	}

	h.tick(eventDisplayTime + time.Millisecond)
	if h.event != "" {
		t.Errorf("event = %q after expiry, want empty", h.event)
	}

	h.LivesChanged(0)
	if h.event != "" {
		t.Errorf("losing the last life should not flash, got %q", h.event)
	}
	h.GameOver(300)
	if !h.gameOver || h.best != 300 || !h.newBest {
		t.Errorf("game over = %v best = %d newBest = %v", h.gameOver, h.best, h.newBest)
	}

	h.GameReset()
	if h.gameOver || h.score != 0 || h.lives != config.MaxLives {
		t.Errorf("reset hud = %+v", h)
	}

	h.GameOver(200)
	if h.best != 300 || h.newBest {
		t.Errorf("lower score changed best: best = %d newBest = %v", h.best, h.newBest)
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{9.99, "0:09"},
		{61, "1:01"},
		{600.5, "10:00"},
	}
	for _, tt := range tests {
		if got := clock(tt.seconds); got != tt.want {
			t.Errorf("clock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
