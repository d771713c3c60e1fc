// Package object defines the game entities: the player ship, enemies,
// bullets, power-ups and cosmetic particles.
package object

import "github.com/tomz197/skyraid/internal/physics"

// Color identifies the tint of a particle burst.
type Color uint8

const (
	ColorWhite Color = iota
	ColorRed
	ColorGreen
	ColorCyan
)

// Destructible is implemented by entities that can be marked for removal
// during a frame and compacted out of their collection afterwards.
type Destructible interface {
	// MarkDestroyed marks the entity for removal at the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the entity is marked for removal.
	IsDestroyed() bool
}

// Body is the shared position and extent of a rectangular entity.
type Body struct {
	X, Y      float64 // Top-left corner
	W, H      float64 // Size
	destroyed bool
}

// Bounds returns the entity's collision rectangle.
func (b *Body) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Center returns the center of the entity.
func (b *Body) Center() (float64, float64) {
	return b.Bounds().Center()
}

// MarkDestroyed marks the entity for removal.
func (b *Body) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the entity is marked for removal.
func (b *Body) IsDestroyed() bool {
	return b.destroyed
}
