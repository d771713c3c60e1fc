package object

import "github.com/tomz197/skyraid/internal/config"

// Enemy is a descending ship that periodically fires at the player.
type Enemy struct {
	Body
	VY         float64 // Base downward speed, before the difficulty multiplier
	ShootTimer float64 // Seconds until the next aimed shot
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
func NewEnemy(x, y, vy, shootTimer float64) *Enemy {
	return &Enemy{
		Body: Body{
			X: x,
			Y: y,
			W: config.EnemySize,
			H: config.EnemySize,
		},
		VY:         vy,
		ShootTimer: shootTimer,
	}
}

// Move advances the enemy by dt seconds with its speed scaled by multiplier.
func (e *Enemy) Move(dt, multiplier float64) {
	e.Y += e.VY * multiplier * dt
}

// Muzzle returns where the enemy's bullets appear: horizontally centered,
// at the enemy's bottom edge.
func (e *Enemy) Muzzle() (float64, float64) {
	return e.X + e.W/2 - config.EnemyBulletWidth/2, e.Y + e.H
}

// Escaped returns true once the enemy has passed the bottom of the field.
func (e *Enemy) Escaped(height float64) bool {
	return e.Y > height
}
