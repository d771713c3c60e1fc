package sim

import (
	"math"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// updatePlayerBullets moves player bullets and culls those past the top.
func (g *Game) updatePlayerBullets(dt float64) {
	for _, b := range g.store.PlayerBullets {
		b.Move(dt)
		if b.Offscreen() {
			b.MarkDestroyed()
		}
	}
}

// updateEnemies moves enemies, fires their aimed shots and removes those
// that escape past the bottom, each costing a life.
// Returns true if the game ended.
func (g *Game) updateEnemies(dt float64) bool {
	for _, e := range g.store.Enemies {
		e.Move(dt, g.difficulty.Multiplier)

		e.ShootTimer -= dt
		if e.ShootTimer <= 0 {
			g.fireAt(e)
			e.ShootTimer = g.src.Between(config.EnemyShootMin, config.EnemyShootMax) * g.difficulty.FireFactor()
		}

		if e.Escaped(g.field.Height) {
			e.MarkDestroyed()
			if g.loseLife() {
				return true
			}
		}
	}
	return false
}

// fireAt spawns an enemy bullet aimed at the player's current center.
func (g *Game) fireAt(e *object.Enemy) {
	mx, my := e.Muzzle()
	px, py := g.player.Center()
	dx, dy := physics.Normalize(px-mx, py-my)
	g.store.AddEnemyBullet(object.NewEnemyBullet(mx, my, dx, dy))
}

// updateEnemyBullets moves enemy bullets, culls those outside the field
// margin and resolves hits on a vulnerable player.
// Returns true if the game ended.
func (g *Game) updateEnemyBullets(dt float64) bool {
	for _, b := range g.store.EnemyBullets {
		b.Move(dt)
		if b.Outside(g.field.Width, g.field.Height, config.EnemyBulletCullMargin) {
			b.MarkDestroyed()
			continue
		}
		if g.player.IsInvulnerable() {
			continue
		}
		if physics.Overlaps(b.Bounds(), g.player.Bounds()) {
			b.MarkDestroyed()
			g.player.Invulnerable = config.InvulnerabilitySeconds
			if g.loseLife() {
				return true
			}
		}
	}
	return false
}

// updatePowerUps moves power-ups, culls escaped ones and handles pickup.
func (g *Game) updatePowerUps(dt float64) {
	for _, p := range g.store.PowerUps {
		p.Move(dt)
		if p.Escaped(g.field.Height) {
			p.MarkDestroyed()
			continue
		}
		if physics.Overlaps(p.Bounds(), g.player.Bounds()) {
			g.player.DoubleShot = config.DoubleShotSeconds
			cx, cy := p.Center()
			g.burst(cx, cy, config.BurstPickup, object.ColorGreen)
			p.MarkDestroyed()
		}
	}
}

// checkBulletEnemyCollisions lets each enemy consume at most one player
// bullet. Enemies are visited newest first and each takes the newest
// overlapping bullet still unconsumed.
func (g *Game) checkBulletEnemyCollisions() {
	bullets := g.store.PlayerBullets
	if len(bullets) == 0 {
		return
	}

	g.grid.Clear()
	for i, b := range bullets {
		if b.IsDestroyed() {
			continue
		}
		cx, cy := b.Center()
		g.grid.Insert(cx, cy, i)
	}

	for i := len(g.store.Enemies) - 1; i >= 0; i-- {
		e := g.store.Enemies[i]
		if e.IsDestroyed() {
			continue
		}
		ex, ey := e.Center()
		bounds := e.Bounds()

		hit := -1
		g.grid.QueryAround(ex, ey, func(idx int) bool {
			if idx > hit && !bullets[idx].IsDestroyed() && physics.Overlaps(bullets[idx].Bounds(), bounds) {
				hit = idx
			}
			return false
		})
		if hit < 0 {
			continue
		}

		bullets[hit].MarkDestroyed()
		e.MarkDestroyed()
		g.burst(ex, ey, config.BurstEnemyKill, object.ColorRed)
		g.addScore(config.ScoreEnemyKill)
	}
}

// checkPlayerEnemyCollision resolves at most one ramming collision per
// frame while the player is vulnerable. Returns true if the game ended.
func (g *Game) checkPlayerEnemyCollision() bool {
	if g.player.IsInvulnerable() {
		return false
	}
	pb := g.player.Bounds()
	for i := len(g.store.Enemies) - 1; i >= 0; i-- {
		e := g.store.Enemies[i]
		if e.IsDestroyed() || !physics.Overlaps(e.Bounds(), pb) {
			continue
		}
		e.MarkDestroyed()
		cx, cy := g.player.Center()
		g.burst(cx, cy, config.BurstPlayerHit, object.ColorCyan)
		g.player.Invulnerable = config.InvulnerabilitySeconds
		return g.loseLife()
	}
	return false
}

// burst emits count particles radiating from (x, y) in random directions.
func (g *Game) burst(x, y float64, count int, color object.Color) {
	for range count {
		angle := g.src.Between(0, 2*math.Pi)
		speed := g.src.Between(config.ParticleSpeedMin, config.ParticleSpeedMax)
		life := g.src.Between(config.ParticleLifeMin, config.ParticleLifeMax)
		g.store.AddParticle(object.NewParticle(
			x, y,
			math.Cos(angle)*speed, math.Sin(angle)*speed,
			life, color,
		))
	}
}

// updateParticles moves particles and ages them.
func (g *Game) updateParticles(dt float64) {
	for _, p := range g.store.Particles {
		p.Update(dt)
	}
}
