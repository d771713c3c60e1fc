package object

import "github.com/tomz197/skyraid/internal/config"

// PlayerBullet is a shot fired upward by the player.
type PlayerBullet struct {
	Body
	VY float64 // Vertical velocity (negative is up)
}

// NewPlayerBullet creates a player bullet whose horizontal center is cx and
// whose bottom edge sits at bottom.
func NewPlayerBullet(cx, bottom float64) *PlayerBullet {
	return &PlayerBullet{
		Body: Body{
			X: cx - config.PlayerBulletWidth/2,
			Y: bottom - config.PlayerBulletHeight,
			W: config.PlayerBulletWidth,
			H: config.PlayerBulletHeight,
		},
		VY: -config.PlayerBulletSpeed,
	}
}

// Move advances the bullet by dt seconds.
func (b *PlayerBullet) Move(dt float64) {
	b.Y += b.VY * dt
}

// Offscreen returns true once the bullet has fully left the top edge.
func (b *PlayerBullet) Offscreen() bool {
	return b.Y+b.H < 0
}

// EnemyBullet is an aimed shot fired by an enemy.
type EnemyBullet struct {
	Body
	VX, VY float64
}

// NewEnemyBullet creates an enemy bullet at (x, y) moving along the unit
// direction (dirX, dirY) at the fixed enemy bullet speed.
func NewEnemyBullet(x, y, dirX, dirY float64) *EnemyBullet {
	return &EnemyBullet{
		Body: Body{
			X: x,
			Y: y,
			W: config.EnemyBulletWidth,
			H: config.EnemyBulletHeight,
		},
		VX: dirX * config.EnemyBulletSpeed,
		VY: dirY * config.EnemyBulletSpeed,
	}
}

// Move advances the bullet by dt seconds.
func (b *EnemyBullet) Move(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Outside returns true once the bullet is more than margin past any edge of
// a width x height field.
func (b *EnemyBullet) Outside(width, height, margin float64) bool {
	return b.X < -margin || b.X > width+margin ||
		b.Y < -margin || b.Y > height+margin
}
