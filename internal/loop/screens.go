package loop

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/skyraid/internal/draw"
)

var titleArt = []string{
	` ___ _  ____   _____    _   ___ ___  `,
	`/ __| |/ /\ \ / / _ \  /_\ |_ _|   \ `,
	`\__ \ ' <  \ V /|   / / _ \ | || |) |`,
	`|___/_|\_\  |_| |_|_\/_/ \_\___|___/ `,
}

// drawUI draws the text overlay for the current phase.
func (s *Session) drawUI() {
	centerCol := s.layout.OffsetCol + s.layout.Cols/2 + 1
	centerRow := s.layout.OffsetRow + s.layout.Rows/2 + 1

	switch s.state.Phase {
	case PhaseTitle:
		s.drawTitleScreen(centerCol, centerRow)
	case PhasePlaying:
		s.drawHUD()
		if s.hud.gameOver {
			s.drawGameOverScreen(centerCol, centerRow)
		}
	case PhaseShutdown:
		s.drawShutdownScreen(centerCol, centerRow)
	}

	if s.state.isInactive && s.state.Phase != PhaseShutdown {
		s.drawInactiveWarning(centerCol, centerRow)
	}
}

// writeCentered writes text centered on col.
func (s *Session) writeCentered(col, row int, color draw.Color, text string) {
	start := max(col-len(text)/2, 1)
	s.out.WriteStyledAt(start, row, color, text)
}

// drawTitleScreen draws the title art and controls.
func (s *Session) drawTitleScreen(centerCol, centerRow int) {
	top := centerRow - len(titleArt) - 2
	for i, line := range titleArt {
		s.writeCentered(centerCol, top+i, draw.ColorCyan, line)
	}

	s.writeCentered(centerCol, centerRow+1, draw.ColorWhite, "Press SPACE or click to start")
	s.writeCentered(centerCol, centerRow+3, draw.ColorGray, "Move: WASD / arrows / HJKL   Fire: SPACE")
	s.writeCentered(centerCol, centerRow+4, draw.ColorGray, "Mouse: hold to steer and fire   Quit: Q")
}

// drawHUD draws the status row above the canvas.
func (s *Session) drawHUD() {
	g := s.state.Game
	text := fmt.Sprintf("SCORE %06d  LIVES %d  LVL %d  %s", s.hud.score, s.hud.lives, g.Level()+1, clock(g.Elapsed()))
	if p := g.Player(); p.HasDoubleShot() {
		text += fmt.Sprintf("  2x %.1fs", p.DoubleShot)
	}
	if s.hud.event != "" {
		text += "  " + s.hud.event
	}

	// Pad so a shorter line overwrites the previous one
	width := s.layout.Cols + 2
	if len(text) < width {
		text += strings.Repeat(" ", width-len(text))
	}
	s.out.WriteAt(max(s.layout.OffsetCol, 1), max(s.layout.OffsetRow-1, 1), text)
}

// clock formats seconds of play as m:ss.
func clock(seconds float64) string {
	secs := int(seconds)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// drawGameOverScreen draws the game over overlay.
func (s *Session) drawGameOverScreen(centerCol, centerRow int) {
	s.writeCentered(centerCol, centerRow-2, draw.ColorRed, "G A M E   O V E R")
	s.writeCentered(centerCol, centerRow, draw.ColorWhite, fmt.Sprintf("Score: %d", s.hud.finalScore))

	best := fmt.Sprintf("Best: %d", s.hud.best)
	if s.hud.newBest && s.hud.best > 0 {
		best = "New best!"
	}
	s.writeCentered(centerCol, centerRow+1, draw.ColorYellow, best)

	s.writeCentered(centerCol, centerRow+3, draw.ColorWhite, "Press R, ENTER or click to restart")
}

// drawInactiveWarning tells an idle player when they will be disconnected.
func (s *Session) drawInactiveWarning(centerCol, centerRow int) {
	left := s.opts.IdleTimeout - time.Since(s.state.lastInput)
	secs := max(int(left.Seconds())+1, 1)
	s.writeCentered(centerCol, centerRow+6, draw.ColorYellow,
		fmt.Sprintf("Inactive: disconnecting in %d seconds, press any key", secs))
}

// drawShutdownScreen draws the server shutdown notification screen.
func (s *Session) drawShutdownScreen(centerCol, centerRow int) {
	s.writeCentered(centerCol, centerRow-3, draw.ColorRed, "SERVER SHUTTING DOWN")
	s.writeCentered(centerCol, centerRow-1, draw.ColorWhite, "The server is restarting for maintenance.")
	s.writeCentered(centerCol, centerRow, draw.ColorWhite, "Please reconnect in a moment.")

	remaining := int(s.state.shutdownTimer.Seconds()) + 1
	s.writeCentered(centerCol, centerRow+2, draw.ColorGray, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	s.writeCentered(centerCol, centerRow+4, draw.ColorGray, "Press Q to disconnect now")
}
