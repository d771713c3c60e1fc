package sim

import (
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

// ClampDelta limits a frame delta to [0, MaxFrameDelta] so a stalled frame
// cannot tunnel entities through each other or through the field edges.
func ClampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	return min(dt, config.MaxFrameDelta)
}

// Step advances the simulation by one frame.
//
// While the game is over nothing moves; a restart request resets the game.
// Otherwise the phases run in a fixed order, and the order matters: the
// invulnerability window is counted down immediately before the ramming
// check so a hit taken earlier in the same frame still protects the player.
func (g *Game) Step(dt time.Duration, in Input) {
	if g.state == StateGameOver {
		if in.RestartRequested {
			g.Reset()
		}
		return
	}

	sec := ClampDelta(dt).Seconds()
	g.frames++
	g.elapsed += sec

	g.simulate(sec, in)
	g.store.Compact()
}

// simulate runs the frame phases, stopping early if the game ends.
func (g *Game) simulate(dt float64, in Input) {
	if g.difficulty.Update(dt) {
		g.logger.Debug("difficulty increased", "level", g.difficulty.Level, "multiplier", g.difficulty.Multiplier)
	}
	g.decayPowerUps(dt)
	g.movePlayer(dt, in)
	g.updateFire(dt, in)
	g.updatePlayerBullets(dt)
	g.spawner.Update(dt, g.field, g.src, &g.store)

	if g.updateEnemies(dt) {
		return
	}
	if g.updateEnemyBullets(dt) {
		return
	}
	g.updatePowerUps(dt)
	g.checkBulletEnemyCollisions()

	g.decayInvulnerability(dt)
	if g.checkPlayerEnemyCollision() {
		return
	}
	g.updateParticles(dt)
}
