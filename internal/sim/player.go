package sim

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// decayPowerUps counts the double-shot timer down, flooring it at zero.
func (g *Game) decayPowerUps(dt float64) {
	g.player.DoubleShot = max(0, g.player.DoubleShot-dt)
}

// movePlayer applies pointer-follow or directional movement, then clamps
// the player to the field.
func (g *Game) movePlayer(dt float64, in Input) {
	p := g.player

	if in.pointerFollow() {
		p.X = in.PointerX - p.W/2
		p.Y = in.PointerY - p.H/2
	} else {
		var dx, dy float64
		if in.MoveLeft {
			dx--
		}
		if in.MoveRight {
			dx++
		}
		if in.MoveUp {
			dy--
		}
		if in.MoveDown {
			dy++
		}
		dx, dy = physics.Normalize(dx, dy)
		p.X += dx * config.PlayerSpeed * dt
		p.Y += dy * config.PlayerSpeed * dt
	}

	p.X = physics.Clamp(p.X, 0, g.field.Width-p.W)
	p.Y = physics.Clamp(p.Y, 0, g.field.Height-p.H)
}

// updateFire counts the shot cooldown down and fires while fire is held.
func (g *Game) updateFire(dt float64, in Input) {
	p := g.player
	p.Cooldown -= dt
	if !in.firing() || !p.CanFire() {
		return
	}

	cx := p.X + p.W/2
	if p.HasDoubleShot() {
		spread := doubleShotSpread(p.W)
		g.store.AddPlayerBullet(object.NewPlayerBullet(cx-spread, p.Y))
		g.store.AddPlayerBullet(object.NewPlayerBullet(cx+spread, p.Y))
	} else {
		g.store.AddPlayerBullet(object.NewPlayerBullet(cx, p.Y))
	}
	p.Cooldown = config.ShootCooldown
}

// doubleShotSpread returns the horizontal offset of each double-shot bullet
// from the player's center.
func doubleShotSpread(width float64) float64 {
	return physics.Clamp(width*config.DoubleShotSpreadRatio, config.DoubleShotSpreadMin, config.DoubleShotSpreadMax)
}

// decayInvulnerability counts the immunity window down while it is open.
func (g *Game) decayInvulnerability(dt float64) {
	if g.player.Invulnerable > 0 {
		g.player.Invulnerable -= dt
	}
}
