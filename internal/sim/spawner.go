package sim

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
)

// Spawner runs the two independent spawn countdowns. Each timer creates
// its entity on expiry and reseeds itself with a fresh random duration.
type Spawner struct {
	EnemyTimer   float64
	PowerUpTimer float64
}

// Reseed draws fresh durations for both timers.
func (s *Spawner) Reseed(src IntervalSource) {
	s.EnemyTimer = src.Between(config.EnemySpawnMin, config.EnemySpawnMax)
	s.PowerUpTimer = src.Between(config.PowerUpSpawnMin, config.PowerUpSpawnMax)
}

// Update advances both timers by dt seconds and spawns into store.
func (s *Spawner) Update(dt float64, field Field, src IntervalSource, store *Store) {
	s.EnemyTimer -= dt
	if s.EnemyTimer <= 0 {
		store.AddEnemy(spawnEnemy(field, src))
		s.EnemyTimer = src.Between(config.EnemySpawnMin, config.EnemySpawnMax)
	}

	s.PowerUpTimer -= dt
	if s.PowerUpTimer <= 0 {
		store.AddPowerUp(spawnPowerUp(field, src))
		s.PowerUpTimer = src.Between(config.PowerUpSpawnMin, config.PowerUpSpawnMax)
	}
}

// spawnEnemy creates an enemy just above the top edge.
func spawnEnemy(field Field, src IntervalSource) *object.Enemy {
	x := src.Between(0, field.Width-config.EnemySize)
	vy := src.Between(config.EnemySpeedMin, config.EnemySpeedMax)
	shoot := src.Between(config.EnemyShootMin, config.EnemyShootMax)
	return object.NewEnemy(x, -config.EnemySize, vy, shoot)
}

// spawnPowerUp creates a power-up just above the top edge.
func spawnPowerUp(field Field, src IntervalSource) *object.PowerUp {
	x := src.Between(0, field.Width-config.PowerUpSize)
	return object.NewPowerUp(x, -config.PowerUpSize)
}
