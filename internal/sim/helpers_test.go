package sim

import (
	"math"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

// midSource returns the midpoint of every requested range.
type midSource struct{}

func (midSource) Between(min, max float64) float64 { return (min + max) / 2 }

// newQuietGame creates a landscape game whose spawners never fire and whose
// player starts vulnerable.
func newQuietGame(t *testing.T) *Game {
	t.Helper()
	g := New(Landscape, midSource{})
	g.spawner.EnemyTimer = math.Inf(1)
	g.spawner.PowerUpTimer = math.Inf(1)
	g.player.Invulnerable = 0
	return g
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
