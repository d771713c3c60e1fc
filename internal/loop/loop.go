// Package loop runs one terminal session: it reads input, steps a
// sim.Game at a fixed frame rate and renders it with the draw package.
package loop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/input"
	"github.com/tomz197/skyraid/internal/replay"
	"github.com/tomz197/skyraid/internal/sim"
)

// hudRows is the number of terminal rows reserved above the canvas.
const hudRows = 1

// ErrIdleTimeout is returned by Run when the player sent no input for
// longer than Options.IdleTimeout.
var ErrIdleTimeout = errors.New("idle timeout")

// Options configures a session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Seed         uint64
	Logger       *log.Logger

	// Recording, when set, receives every simulated frame.
	Recording *replay.Recording

	// IdleTimeout disconnects an inactive player. Zero disables it.
	IdleTimeout time.Duration

	// Shutdown, when closed, shows the shutdown screen for ShutdownDisplay
	// and then ends the session.
	Shutdown        <-chan struct{}
	ShutdownDisplay time.Duration
}

// Session handles rendering and input for a single terminal.
type Session struct {
	state        *SessionState
	hud          *hud
	canvas       *draw.Canvas
	out          *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	layout       draw.Layout
	opts         Options
	logger       *log.Logger
	exitErr      error
}

// Run creates a session on r and w and blocks until it ends.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewSession(r, w, opts).Run(ctx)
}

// NewSession creates a session that starts on the title screen.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) *Session {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.ShutdownDisplay <= 0 {
		opts.ShutdownDisplay = config.ShutdownDisplayTime
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	state := NewSessionState(time.Now())
	return &Session{
		state:        state,
		hud:          newHUD(),
		canvas:       draw.NewScaledCanvas(1, 1, state.field.Width, state.field.Height),
		out:          draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: opts.TermSizeFunc,
		opts:         opts,
		logger:       logger,
	}
}

// Run starts the frame loop. Blocks until the player quits, the input
// closes, ctx is done, the idle timeout fires or the shutdown screen ends.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	draw.EnableMouse(s.writer)
	draw.ClearScreen(s.writer)
	defer func() {
		draw.DisableMouse(s.writer)
		draw.ShowCursor(s.writer)
		draw.ClearScreen(s.writer)
	}()

	lastTime := time.Now()

	for s.state.Running {
		frameStart := time.Now()
		s.state.delta = sim.ClampDelta(frameStart.Sub(lastTime))
		lastTime = frameStart

		select {
		case <-ctx.Done():
			s.logger.Debug("session context done", "err", ctx.Err())
			return nil
		default:
		}

		s.processShutdown()
		s.processInput(frameStart)
		if !s.state.Running {
			break
		}

		s.updateScreen()

		switch s.state.Phase {
		case PhaseTitle:
			s.updateTitle()
		case PhasePlaying:
			s.updatePlaying()
		case PhaseShutdown:
			s.updateShutdown()
		}

		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			select {
			case <-ctx.Done():
			case <-time.After(config.TargetFrameTime - elapsed):
			}
		}
	}

	if g := s.state.Game; g != nil {
		s.logger.Info("session summary", "score", g.Score(), "level", g.Level(),
			"frames", g.Frames(), "elapsed", clock(g.Elapsed()), "state", g.State())
	}
	return s.exitErr
}

// processShutdown switches to the shutdown screen once the shutdown
// channel closes. A nil channel never fires.
func (s *Session) processShutdown() {
	if s.state.Phase == PhaseShutdown {
		return
	}
	select {
	case <-s.opts.Shutdown:
		s.logger.Info("shutdown notice shown")
		s.state.Phase = PhaseShutdown
		s.state.shutdownTimer = s.opts.ShutdownDisplay
	default:
	}
}

// processInput reads this frame's input and tracks inactivity.
func (s *Session) processInput(now time.Time) {
	s.state.Input = input.ReadInput(s.inputStream)

	if s.state.Input.Quit {
		s.logger.Debug("player quit")
		s.state.Running = false
		return
	}
	if s.inputStream.Closed() {
		s.logger.Debug("input closed")
		s.state.Running = false
		return
	}

	if s.state.Input.Active {
		s.state.lastInput = now
	}
	s.state.isInactive = false
	if s.opts.IdleTimeout <= 0 {
		return
	}
	idle := now.Sub(s.state.lastInput)
	if idle >= s.opts.IdleTimeout {
		s.logger.Info("idle timeout", "idle", idle.Round(time.Second))
		s.exitErr = ErrIdleTimeout
		s.state.Running = false
		return
	}
	s.state.isInactive = idle >= time.Duration(float64(s.opts.IdleTimeout)*config.IdleWarnFraction)
}

// updateScreen follows terminal resizes and orientation flips.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}

	field := fieldFor(termWidth, termHeight)
	if field != s.state.field {
		s.state.field = field
		s.canvas.SetLogicalSize(field.Width, field.Height)
		if s.state.Game != nil {
			s.state.Game.Reorient(field)
			if s.opts.Recording != nil {
				s.opts.Recording.Reorient(field)
			}
		}
	}

	layout := draw.Fit(termWidth, termHeight, hudRows, field.Width, field.Height)
	if layout != s.layout {
		s.layout = layout
		layout.Apply(s.canvas)
		s.out.WriteString("\033[0m\033[H\033[2J")
	}
}

// fieldFor picks landscape when the terminal's sub-pixel grid is wider
// than tall.
func fieldFor(termWidth, termHeight int) sim.Field {
	subW := termWidth - 2
	subH := (termHeight - hudRows - 2) * 2
	if subW > subH {
		return sim.Landscape
	}
	return sim.Portrait
}

// updateTitle starts the game on fire, restart or click.
func (s *Session) updateTitle() {
	in := s.state.Input
	if in.Fire || in.Restart {
		s.startGame()
	}
}

func (s *Session) startGame() {
	s.state.Game = sim.New(s.state.field, sim.NewRandSource(s.opts.Seed),
		sim.WithObserver(s.hud),
		sim.WithLogger(s.logger),
	)
	if rec := s.opts.Recording; rec != nil {
		rec.Seed = s.opts.Seed
		rec.Field = s.state.field
	}
	s.state.Phase = PhasePlaying
	s.logger.Info("game started", "seed", s.opts.Seed, "field", fieldName(s.state.field))
}

// updatePlaying advances the game by one frame.
func (s *Session) updatePlaying() {
	in := toSimInput(s.state.Input, s.canvas)
	s.state.Game.Step(s.state.delta, in)
	if rec := s.opts.Recording; rec != nil {
		rec.Record(s.state.delta, in)
	}
	s.hud.tick(s.state.delta)
}

// updateShutdown counts down the shutdown screen.
func (s *Session) updateShutdown() {
	s.state.shutdownTimer -= s.state.delta
	if s.state.shutdownTimer <= 0 {
		s.state.Running = false
	}
}

// toSimInput maps terminal input to the simulation's input. A held mouse
// button outside the canvas is active but has no position.
func toSimInput(in input.Input, c *draw.Canvas) sim.Input {
	out := sim.Input{
		MoveUp:           in.Up,
		MoveDown:         in.Down,
		MoveLeft:         in.Left,
		MoveRight:        in.Right,
		Fire:             in.Fire,
		RestartRequested: in.Restart,
		PointerX:         math.NaN(),
		PointerY:         math.NaN(),
	}
	if in.MouseHeld {
		out.PointerActive = true
		if x, y, ok := c.TerminalToLogical(in.MouseCol, in.MouseRow); ok {
			out.PointerX, out.PointerY = x, y
		}
	}
	return out
}

func fieldName(f sim.Field) string {
	if f.IsPortrait() {
		return "portrait"
	}
	return "landscape"
}
