package object

import "sync"

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It takes part in no collision.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity
	Life    float64 // Seconds remaining
	MaxLife float64 // Initial lifetime (for fade calculation)
	Color   Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, life float64, color Color) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = life
	p.MaxLife = life
	p.Color = color
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle and decreases its lifetime.
// Returns true once the particle has expired.
func (p *Particle) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life -= dt
	return p.Expired()
}

// Expired returns true once the particle's life has run out.
func (p *Particle) Expired() bool {
	return p.Life <= 0
}

// Fade returns the remaining fraction of the particle's lifetime in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	return f
}
