package sim

import (
	"testing"

	"github.com/tomz197/skyraid/internal/config"
)

// seqSource replays a fixed sequence of unit values scaled into each range.
type seqSource struct {
	values []float64
	next   int
}

func (s *seqSource) Between(min, max float64) float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return min + v*(max-min)
}

func TestSpawner_EnemyOnExpiry(t *testing.T) {
	src := &seqSource{values: []float64{0, 0.5, 1.0 / 3, 0.25}}
	var store Store
	s := Spawner{EnemyTimer: 0.01, PowerUpTimer: 100}

	s.Update(0.02, Landscape, src, &store)

	if len(store.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(store.Enemies))
	}
	e := store.Enemies[0]
	if e.X != 0 || e.Y != -config.EnemySize {
		t.Errorf("enemy at (%v, %v), want (0, %v)", e.X, e.Y, -config.EnemySize)
	}
	if e.VY != 115 {
		t.Errorf("vy = %v, want 115", e.VY)
	}
	if !approxEqual(e.ShootTimer, 1.5) {
		t.Errorf("shoot timer = %v, want 1.5", e.ShootTimer)
	}
	if !approxEqual(s.EnemyTimer, 0.5625) {
		t.Errorf("enemy timer = %v, want 0.5625", s.EnemyTimer)
	}
	if len(store.PowerUps) != 0 {
		t.Errorf("power-ups = %d, want 0", len(store.PowerUps))
	}
}

func TestSpawner_PowerUpOnExpiry(t *testing.T) {
	src := &seqSource{values: []float64{0.5, 0.25}}
	var store Store
	s := Spawner{EnemyTimer: 100, PowerUpTimer: 0.01}

	s.Update(0.02, Landscape, src, &store)

	if len(store.PowerUps) != 1 {
		t.Fatalf("power-ups = %d, want 1", len(store.PowerUps))
	}
	p := store.PowerUps[0]
	if want := (Landscape.Width - config.PowerUpSize) / 2; p.X != want {
		t.Errorf("power-up x = %v, want %v", p.X, want)
	}
	if p.Y != -config.PowerUpSize || p.VY != config.PowerUpSpeed {
		t.Errorf("power-up y = %v, vy = %v", p.Y, p.VY)
	}
	if s.PowerUpTimer != 10 {
		t.Errorf("power-up timer = %v, want 10", s.PowerUpTimer)
	}
}

func TestSpawner_EntitiesFitField(t *testing.T) {
	src := &seqSource{values: []float64{0.999999}}
	var store Store
	s := Spawner{}

	for range 5 {
		s.EnemyTimer, s.PowerUpTimer = 0, 0
		s.Update(0.01, Portrait, src, &store)
	}
	for _, e := range store.Enemies {
		if e.X < 0 || e.X+e.W > Portrait.Width {
			t.Errorf("enemy spans [%v, %v], outside the field", e.X, e.X+e.W)
		}
	}
	for _, p := range store.PowerUps {
		if p.X < 0 || p.X+p.W > Portrait.Width {
			t.Errorf("power-up spans [%v, %v], outside the field", p.X, p.X+p.W)
		}
	}
}
