package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

// eventDisplayTime is how long a HUD event message stays visible.
const eventDisplayTime = 1200 * time.Millisecond

// hud mirrors the game's score and lives for the overlay. It is the
// game's sim.Observer, so it only changes inside Game.Step or Game.Reset.
type hud struct {
	score      int
	lives      int
	gameOver   bool
	finalScore int
	best       int // Best final score of this session
	newBest    bool

	shownGameOver bool // Whether the last drawn frame showed the overlay

	event      string
	eventTimer time.Duration
}

func newHUD() *hud {
	return &hud{lives: config.MaxLives}
}

func (h *hud) ScoreChanged(score int) {
	h.score = score
}

func (h *hud) LivesChanged(lives int) {
	if lives < h.lives && lives > 0 {
		h.flash("SHIP LOST")
	}
	h.lives = lives
}

func (h *hud) GameOver(finalScore int) {
	h.gameOver = true
	h.finalScore = finalScore
	h.newBest = finalScore > h.best
	if h.newBest {
		h.best = finalScore
	}
}

func (h *hud) GameReset() {
	h.score = 0
	h.lives = config.MaxLives
	h.gameOver = false
	h.newBest = false
	h.event = ""
	h.eventTimer = 0
}

func (h *hud) flash(msg string) {
	h.event = msg
	h.eventTimer = eventDisplayTime
}

// tick ages the current event message.
func (h *hud) tick(dt time.Duration) {
	if h.eventTimer > 0 {
		h.eventTimer -= dt
		if h.eventTimer <= 0 {
			h.event = ""
		}
	}
}
