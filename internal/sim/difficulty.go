package sim

import "github.com/tomz197/skyraid/internal/config"

// Difficulty raises the level once per elapsed interval of simulated time.
type Difficulty struct {
	Level      int
	Multiplier float64 // Enemy vertical speed multiplier

	elapsed float64 // Time since the last level-up
}

func newDifficulty() Difficulty {
	return Difficulty{Multiplier: 1}
}

// Update accumulates dt seconds and returns true on a level-up.
// dt must not exceed the frame clamp, so at most one level-up happens per
// call. The overflow past the interval carries into the next one.
func (d *Difficulty) Update(dt float64) bool {
	d.elapsed += dt
	if d.elapsed < config.DifficultyInterval {
		return false
	}
	d.elapsed -= config.DifficultyInterval
	d.Level++
	d.Multiplier = 1 + float64(d.Level)*config.DifficultySpeedStep
	return true
}

// FireFactor scales enemy shoot intervals, tightening them as the level
// rises down to a fixed floor.
func (d *Difficulty) FireFactor() float64 {
	return max(config.DifficultyFireFloor, 1-float64(d.Level)*config.DifficultyFireStep)
}
