package config

import "time"

// Game configuration constants.
// These values form the gameplay contract; changing them changes how
// every recorded session replays.

// Field dimensions in logical units.
const (
	LandscapeWidth  = 800
	LandscapeHeight = 600
	PortraitWidth   = 600
	PortraitHeight  = 800
)

// Scoring
const (
	ScoreEnemyKill = 100
)

// Player
const (
	MaxLives                    = 3
	PlayerWidth                 = 40.0
	PlayerHeight                = 40.0
	PlayerSpeed                 = 320.0 // px/s
	PlayerRespawnOffset         = 90.0  // Distance of the respawn point above the bottom edge
	ShootCooldown               = 0.22  // Seconds between shots
	InvulnerabilitySeconds      = 1.5
	ResetInvulnerabilitySeconds = 1.0
	PlayerBlinkFrequency        = 10.0 // Hz
)

// Player bullets
const (
	PlayerBulletWidth     = 5.0
	PlayerBulletHeight    = 12.0
	PlayerBulletSpeed     = 700.0
	DoubleShotSpreadRatio = 0.22 // Fraction of player width
	DoubleShotSpreadMin   = 6.0
	DoubleShotSpreadMax   = 14.0
)

// Enemies
const (
	EnemySize             = 36.0
	EnemySpeedMin         = 70.0
	EnemySpeedMax         = 160.0
	EnemySpawnMin         = 0.45
	EnemySpawnMax         = 0.9
	EnemyShootMin         = 1.0
	EnemyShootMax         = 2.5
	EnemyBulletWidth      = 4.0
	EnemyBulletHeight     = 10.0
	EnemyBulletSpeed      = 280.0
	EnemyBulletCullMargin = 20.0
)

// Power-ups
const (
	PowerUpSize       = 22.0
	PowerUpSpeed      = 90.0
	PowerUpSpawnMin   = 8.0
	PowerUpSpawnMax   = 16.0
	DoubleShotSeconds = 5.0
)

// Difficulty
const (
	DifficultyInterval  = 60.0 // Seconds per level
	DifficultySpeedStep = 0.15 // Enemy speed multiplier gain per level
	DifficultyFireStep  = 0.06 // Enemy shoot interval reduction per level
	DifficultyFireFloor = 0.6  // Minimum shoot interval factor
)

// Particle bursts
const (
	BurstPickup        = 14
	BurstEnemyKill     = 12
	BurstPlayerHit     = 18
	ParticleSpeedMin   = 40.0
	ParticleSpeedMax   = 220.0
	ParticleLifeMin    = 0.35
	ParticleLifeMax    = 0.8
	ParticleFadeCutoff = 0.25 // Fraction of life below which particles render dimmed
)

// Collision broad phase. Must be >= the largest center distance at which a
// player bullet can overlap an enemy ((36+12)/2 = 24 vertically).
const CollisionCellSize = 48.0

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 33 * time.Millisecond
)

// Inactivity
const (
	IdleWarnFraction    = 0.75 // Fraction of the idle timeout after which a warning shows
	DefaultIdleSeconds  = 120
	ShutdownDisplayTime = 2 * time.Second
)
