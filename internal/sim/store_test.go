package sim

import (
	"testing"

	"github.com/tomz197/skyraid/internal/object"
)

func TestStore_CompactPreservesOrder(t *testing.T) {
	var s Store
	for i := range 6 {
		s.AddEnemy(object.NewEnemy(float64(i), 0, 0, 1))
	}
	s.Enemies[0].MarkDestroyed()
	s.Enemies[3].MarkDestroyed()
	s.Enemies[5].MarkDestroyed()

	s.Compact()

	want := []float64{1, 2, 4}
	if len(s.Enemies) != len(want) {
		t.Fatalf("enemies = %d, want %d", len(s.Enemies), len(want))
	}
	for i, e := range s.Enemies {
		if e.X != want[i] {
			t.Errorf("enemy %d at x = %v, want %v", i, e.X, want[i])
		}
	}
}

func TestStore_CompactAdjacentRemovals(t *testing.T) {
	var s Store
	for i := range 4 {
		s.AddPlayerBullet(object.NewPlayerBullet(float64(i), 100))
	}
	for _, b := range s.PlayerBullets[1:3] {
		b.MarkDestroyed()
	}

	s.Compact()

	if len(s.PlayerBullets) != 2 {
		t.Fatalf("bullets = %d, want 2", len(s.PlayerBullets))
	}
	for _, b := range s.PlayerBullets {
		if b.IsDestroyed() {
			t.Errorf("destroyed bullet survived compaction")
		}
	}
}

func TestStore_CompactExpiredParticles(t *testing.T) {
	var s Store
	s.AddParticle(object.NewParticle(0, 0, 0, 0, 1, object.ColorRed))
	s.AddParticle(object.NewParticle(0, 0, 0, 0, 0, object.ColorRed))
	s.AddParticle(object.NewParticle(0, 0, 0, 0, -1, object.ColorRed))

	s.Compact()

	if len(s.Particles) != 1 {
		t.Errorf("particles = %d, want 1", len(s.Particles))
	}
}

func TestStore_Clear(t *testing.T) {
	var s Store
	s.AddPlayerBullet(object.NewPlayerBullet(0, 0))
	s.AddEnemy(object.NewEnemy(0, 0, 0, 1))
	s.AddEnemyBullet(object.NewEnemyBullet(0, 0, 0, 1))
	s.AddPowerUp(object.NewPowerUp(0, 0))
	s.AddParticle(object.NewParticle(0, 0, 0, 0, 1, object.ColorGreen))
	if s.Len() != 5 {
		t.Fatalf("len = %d, want 5", s.Len())
	}

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("len = %d after clear, want 0", s.Len())
	}
}
