// Package sim is the per-frame simulation of the shooter: entities,
// spawning, difficulty, the player controller, collisions and the
// playing/game-over lifecycle. A Game holds all of it; there is no
// package-level game state.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/physics"
)

// State is the lifecycle phase of a game.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Game is a single-player simulation. It is not safe for concurrent use;
// renderers must read it only between calls to Step.
type Game struct {
	field      Field
	src        IntervalSource
	store      Store
	player     *object.Player
	spawner    Spawner
	difficulty Difficulty
	grid       *physics.SpatialGrid

	score int
	lives int
	state State

	frames  uint64
	elapsed float64 // Simulated seconds since the last reset

	observer Observer
	logger   *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithObserver registers the HUD collaborator.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a game in the playing state. All randomness is drawn from src.
func New(field Field, src IntervalSource, opts ...Option) *Game {
	g := &Game{
		field:    field,
		src:      src,
		grid:     physics.NewSpatialGrid(field.Width, field.Height, config.CollisionCellSize),
		observer: nopObserver{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

// Reset returns the game to its starting state from any state.
func (g *Game) Reset() {
	g.reset()
	g.logger.Info("game reset", "field", g.fieldName())
	g.observer.GameReset()
}

func (g *Game) reset() {
	g.store.Clear()

	x, y := g.field.RespawnPoint()
	g.player = object.NewPlayer(x, y)
	g.player.Invulnerable = config.ResetInvulnerabilitySeconds

	g.spawner.Reseed(g.src)
	g.difficulty = newDifficulty()
	g.score = 0
	g.lives = config.MaxLives
	g.state = StatePlaying
	g.frames = 0
	g.elapsed = 0
}

// loseLife takes one life. Returns true if the game is now over.
func (g *Game) loseLife() bool {
	g.lives--
	g.observer.LivesChanged(g.lives)
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.logger.Info("game over", "score", g.score, "level", g.difficulty.Level, "frames", g.frames)
		g.observer.GameOver(g.score)
		return true
	}
	g.player.X, g.player.Y = g.field.RespawnPoint()
	return false
}

func (g *Game) addScore(points int) {
	g.score += points
	g.observer.ScoreChanged(g.score)
}

// Reorient switches the play-field size, rescaling every entity position
// proportionally and re-clamping the player.
func (g *Game) Reorient(field Field) {
	if field == g.field {
		return
	}
	sx := field.Width / g.field.Width
	sy := field.Height / g.field.Height

	for _, b := range g.store.PlayerBullets {
		b.X, b.Y = b.X*sx, b.Y*sy
	}
	for _, e := range g.store.Enemies {
		e.X, e.Y = e.X*sx, e.Y*sy
	}
	for _, b := range g.store.EnemyBullets {
		b.X, b.Y = b.X*sx, b.Y*sy
	}
	for _, p := range g.store.PowerUps {
		p.X, p.Y = p.X*sx, p.Y*sy
	}
	for _, p := range g.store.Particles {
		p.X, p.Y = p.X*sx, p.Y*sy
	}

	g.field = field
	g.player.X = physics.Clamp(g.player.X*sx, 0, field.Width-g.player.W)
	g.player.Y = physics.Clamp(g.player.Y*sy, 0, field.Height-g.player.H)
	g.grid = physics.NewSpatialGrid(field.Width, field.Height, config.CollisionCellSize)

	g.logger.Debug("field reoriented", "field", g.fieldName())
}

func (g *Game) fieldName() string {
	if g.field.IsPortrait() {
		return "portrait"
	}
	return "landscape"
}

// Store returns the entity collections. Callers must not modify them.
func (g *Game) Store() *Store { return &g.store }

// Player returns the player entity. Callers must not modify it.
func (g *Game) Player() *object.Player { return g.player }

func (g *Game) Score() int       { return g.score }
func (g *Game) Lives() int       { return g.lives }
func (g *Game) State() State     { return g.state }
func (g *Game) Field() Field     { return g.field }
func (g *Game) Level() int       { return g.difficulty.Level }
func (g *Game) Frames() uint64   { return g.frames }
func (g *Game) Elapsed() float64 { return g.elapsed }

// SpeedMultiplier returns the current enemy speed multiplier.
func (g *Game) SpeedMultiplier() float64 { return g.difficulty.Multiplier }
