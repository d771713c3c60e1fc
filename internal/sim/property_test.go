package sim

import (
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/tomz197/skyraid/internal/config"
)

type frameInput struct {
	dt time.Duration
	in Input
}

func frameGen() *rapid.Generator[frameInput] {
	return rapid.Custom(func(t *rapid.T) frameInput {
		in := Input{
			MoveUp:           rapid.Bool().Draw(t, "up"),
			MoveDown:         rapid.Bool().Draw(t, "down"),
			MoveLeft:         rapid.Bool().Draw(t, "left"),
			MoveRight:        rapid.Bool().Draw(t, "right"),
			Fire:             rapid.Bool().Draw(t, "fire"),
			PointerActive:    rapid.Bool().Draw(t, "pointer"),
			PointerX:         math.NaN(),
			PointerY:         math.NaN(),
			RestartRequested: rapid.Bool().Draw(t, "restart"),
		}
		if rapid.Bool().Draw(t, "pointerKnown") {
			in.PointerX = rapid.Float64Range(-400, 1200).Draw(t, "px")
			in.PointerY = rapid.Float64Range(-400, 1200).Draw(t, "py")
		}
		ms := rapid.IntRange(-5, 100).Draw(t, "ms")
		return frameInput{dt: time.Duration(ms) * time.Millisecond, in: in}
	})
}

func fieldGen() *rapid.Generator[Field] {
	return rapid.SampledFrom([]Field{Landscape, Portrait})
}

func TestProperty_PlayerStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		field := fieldGen().Draw(t, "field")
		g := New(field, NewRandSource(rapid.Uint64().Draw(t, "seed")))
		frames := rapid.SliceOfN(frameGen(), 1, 400).Draw(t, "frames")

		for i, f := range frames {
			g.Step(f.dt, f.in)
			p := g.Player()
			if p.X < 0 || p.X > field.Width-p.W || p.Y < 0 || p.Y > field.Height-p.H {
				t.Fatalf("frame %d: player at (%v, %v) outside the field", i, p.X, p.Y)
			}
		}
	})
}

func TestProperty_LivesAndState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(Landscape, NewRandSource(rapid.Uint64().Draw(t, "seed")))
		frames := rapid.SliceOfN(frameGen(), 1, 600).Draw(t, "frames")

		for i, f := range frames {
			g.Step(f.dt, f.in)
			lives := g.Lives()
			if lives < 0 || lives > config.MaxLives {
				t.Fatalf("frame %d: lives = %d out of range", i, lives)
			}
			if (lives == 0) != (g.State() == StateGameOver) {
				t.Fatalf("frame %d: lives = %d with state %v", i, lives, g.State())
			}
		}
	})
}

func TestProperty_Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		frames := rapid.SliceOfN(frameGen(), 1, 300).Draw(t, "frames")

		a := New(Landscape, NewRandSource(seed))
		b := New(Landscape, NewRandSource(seed))
		for _, f := range frames {
			a.Step(f.dt, f.in)
			b.Step(f.dt, f.in)
		}

		if a.Score() != b.Score() || a.Lives() != b.Lives() || a.State() != b.State() {
			t.Fatalf("diverged: score %d/%d lives %d/%d", a.Score(), b.Score(), a.Lives(), b.Lives())
		}
		if *a.Player() != *b.Player() {
			t.Fatalf("players diverged: %+v vs %+v", *a.Player(), *b.Player())
		}
		sa, sb := a.Store(), b.Store()
		if len(sa.Enemies) != len(sb.Enemies) || len(sa.EnemyBullets) != len(sb.EnemyBullets) ||
			len(sa.PlayerBullets) != len(sb.PlayerBullets) || len(sa.Particles) != len(sb.Particles) {
			t.Fatalf("stores diverged")
		}
		for i := range sa.Enemies {
			if *sa.Enemies[i] != *sb.Enemies[i] {
				t.Fatalf("enemy %d diverged", i)
			}
		}
	})
}

func TestProperty_ResetIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := New(Landscape, NewRandSource(rapid.Uint64().Draw(t, "seed")))
		frames := rapid.SliceOfN(frameGen(), 0, 300).Draw(t, "frames")
		for _, f := range frames {
			g.Step(f.dt, f.in)
		}

		g.Reset()
		first := *g.Player()
		g.Reset()

		if *g.Player() != first {
			t.Fatalf("second reset changed the player: %+v vs %+v", *g.Player(), first)
		}
		x, y := Landscape.RespawnPoint()
		p := g.Player()
		if p.X != x || p.Y != y || p.Cooldown != 0 || p.DoubleShot != 0 ||
			p.Invulnerable != config.ResetInvulnerabilitySeconds {
			t.Fatalf("player not at starting state: %+v", *p)
		}
		if g.Score() != 0 || g.Lives() != config.MaxLives || g.State() != StatePlaying ||
			g.Store().Len() != 0 || g.Level() != 0 || g.SpeedMultiplier() != 1 {
			t.Fatalf("game not at starting state")
		}
	})
}
