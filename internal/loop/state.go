package loop

import (
	"time"

	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/sim"
)

// Phase is the screen a session is showing.
type Phase int

const (
	PhaseTitle    Phase = iota // Title screen
	PhasePlaying               // Game running or game over overlay
	PhaseShutdown              // Server is shutting down
)

// SessionState holds the per-session presentation state around the game.
type SessionState struct {
	Phase     Phase
	prevPhase Phase
	Input     input.Input
	Game      *sim.Game // nil until the title screen is left
	Running   bool

	delta         time.Duration // Clamped frame delta
	field         sim.Field     // Field matching the terminal orientation
	lastInput     time.Time
	shutdownTimer time.Duration // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the idle warning is showing
	wasInactive   bool
}

// NewSessionState creates a session on the title screen.
func NewSessionState(now time.Time) *SessionState {
	return &SessionState{
		Phase:     PhaseTitle,
		prevPhase: PhaseTitle,
		Running:   true,
		field:     sim.Landscape,
		lastInput: now,
	}
}
