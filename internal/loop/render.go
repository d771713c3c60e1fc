package loop

import (
	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/sim"
)

// drawFrame renders the world, the border and the text overlay.
func (s *Session) drawFrame() error {
	// Overlays leave text behind when they disappear
	overlayChanged := s.gameOverChanged()
	if overlayChanged || s.state.Phase != s.state.prevPhase || s.state.isInactive != s.state.wasInactive {
		s.out.WriteString("\033[0m\033[H\033[2J")
		s.state.prevPhase = s.state.Phase
		s.state.wasInactive = s.state.isInactive
	}

	s.canvas.Clear()
	if s.state.Game != nil && s.state.Phase != PhaseTitle {
		drawWorld(s.canvas, s.state.Game)
	}
	if err := s.canvas.Render(s.out); err != nil {
		return err
	}
	if err := s.canvas.RenderBorder(s.out); err != nil {
		return err
	}

	s.drawUI()
	return s.out.Flush()
}

// gameOverChanged reports a game-over overlay appearing or disappearing
// since the last frame.
func (s *Session) gameOverChanged() bool {
	changed := s.hud.gameOver != s.hud.shownGameOver
	s.hud.shownGameOver = s.hud.gameOver
	return changed
}

// drawWorld draws every entity of g onto c, back to front.
func drawWorld(c *draw.Canvas, g *sim.Game) {
	st := g.Store()

	for _, p := range st.Particles {
		drawParticle(c, p)
	}
	for _, p := range st.PowerUps {
		drawPowerUp(c, p)
	}
	for _, b := range st.EnemyBullets {
		c.FillRect(b.X, b.Y, b.W, b.H, draw.ColorMagenta)
	}
	for _, b := range st.PlayerBullets {
		c.FillRect(b.X, b.Y, b.W, b.H, draw.ColorYellow)
	}
	for _, e := range st.Enemies {
		drawEnemy(c, e)
	}

	p := g.Player()
	if g.State() == sim.StatePlaying && shouldRenderBlink(p.Invulnerable, config.PlayerBlinkFrequency) {
		drawPlayer(c, p)
	}
}

// drawPlayer draws the ship as an arrowhead pointing up.
func drawPlayer(c *draw.Canvas, p *object.Player) {
	color := draw.ColorCyan
	if p.HasDoubleShot() {
		color = draw.ColorGreen
	}
	pts := c.BorrowPoints(4)
	pts[0] = draw.Point{X: p.X + p.W/2, Y: p.Y}
	pts[1] = draw.Point{X: p.X + p.W, Y: p.Y + p.H}
	pts[2] = draw.Point{X: p.X + p.W/2, Y: p.Y + p.H*0.75}
	pts[3] = draw.Point{X: p.X, Y: p.Y + p.H}
	c.DrawPolygon(pts, color, true)
}

// drawEnemy draws an enemy as an arrowhead pointing down.
func drawEnemy(c *draw.Canvas, e *object.Enemy) {
	pts := c.BorrowPoints(4)
	pts[0] = draw.Point{X: e.X, Y: e.Y}
	pts[1] = draw.Point{X: e.X + e.W/2, Y: e.Y + e.H*0.25}
	pts[2] = draw.Point{X: e.X + e.W, Y: e.Y}
	pts[3] = draw.Point{X: e.X + e.W/2, Y: e.Y + e.H}
	c.DrawPolygon(pts, draw.ColorRed, true)
}

func drawPowerUp(c *draw.Canvas, p *object.PowerUp) {
	c.FillRect(p.X, p.Y, p.W, p.H, draw.ColorDarkGreen)
	inset := p.W / 4
	c.FillRect(p.X+inset, p.Y+inset, p.W-2*inset, p.H-2*inset, draw.ColorGreen)
}

func drawParticle(c *draw.Canvas, p *object.Particle) {
	c.SetFloat(p.X, p.Y, particleColor(p.Color, p.Fade() < config.ParticleFadeCutoff))
}

// particleColor maps a simulation color to the terminal palette.
func particleColor(color object.Color, dim bool) draw.Color {
	switch color {
	case object.ColorRed:
		if dim {
			return draw.ColorDarkRed
		}
		return draw.ColorRed
	case object.ColorGreen:
		if dim {
			return draw.ColorDarkGreen
		}
		return draw.ColorGreen
	case object.ColorCyan:
		if dim {
			return draw.ColorDarkCyan
		}
		return draw.ColorCyan
	default:
		if dim {
			return draw.ColorGray
		}
		return draw.ColorWhite
	}
}

// shouldRenderBlink returns whether an object with remainingTime of
// invulnerability left is visible this frame. frequency is in Hz.
func shouldRenderBlink(remainingTime, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
