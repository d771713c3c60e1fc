package sim

import "github.com/tomz197/skyraid/internal/object"

// Store holds every live entity collection except the player.
// Insertion appends; removal marks entities and a single compaction pass
// per frame filters them out while preserving order.
type Store struct {
	PlayerBullets []*object.PlayerBullet
	Enemies       []*object.Enemy
	EnemyBullets  []*object.EnemyBullet
	PowerUps      []*object.PowerUp
	Particles     []*object.Particle
}

// AddPlayerBullet appends a player bullet.
func (s *Store) AddPlayerBullet(b *object.PlayerBullet) {
	s.PlayerBullets = append(s.PlayerBullets, b)
}

// AddEnemy appends an enemy.
func (s *Store) AddEnemy(e *object.Enemy) {
	s.Enemies = append(s.Enemies, e)
}

// AddEnemyBullet appends an enemy bullet.
func (s *Store) AddEnemyBullet(b *object.EnemyBullet) {
	s.EnemyBullets = append(s.EnemyBullets, b)
}

// AddPowerUp appends a power-up.
func (s *Store) AddPowerUp(p *object.PowerUp) {
	s.PowerUps = append(s.PowerUps, p)
}

// AddParticle appends a particle.
func (s *Store) AddParticle(p *object.Particle) {
	s.Particles = append(s.Particles, p)
}

// Len returns the total number of entities in the store.
func (s *Store) Len() int {
	return len(s.PlayerBullets) + len(s.Enemies) + len(s.EnemyBullets) +
		len(s.PowerUps) + len(s.Particles)
}

// Compact removes destroyed entities and expired particles.
func (s *Store) Compact() {
	s.PlayerBullets = compact(s.PlayerBullets)
	s.Enemies = compact(s.Enemies)
	s.EnemyBullets = compact(s.EnemyBullets)
	s.PowerUps = compact(s.PowerUps)

	kept := s.Particles[:0] // reuse backing array
	for _, p := range s.Particles {
		if p.Expired() {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept
}

// Clear empties every collection.
func (s *Store) Clear() {
	for _, p := range s.Particles {
		p.Release()
	}
	clear(s.PlayerBullets)
	clear(s.Enemies)
	clear(s.EnemyBullets)
	clear(s.PowerUps)
	clear(s.Particles)
	s.PlayerBullets = s.PlayerBullets[:0]
	s.Enemies = s.Enemies[:0]
	s.EnemyBullets = s.EnemyBullets[:0]
	s.PowerUps = s.PowerUps[:0]
	s.Particles = s.Particles[:0]
}

// compact filters out destroyed entities in place. The tail of the backing
// array is cleared so removed entities can be collected.
func compact[T object.Destructible](s []T) []T {
	kept := s[:0]
	for _, v := range s {
		if !v.IsDestroyed() {
			kept = append(kept, v)
		}
	}
	clear(s[len(kept):])
	return kept
}
