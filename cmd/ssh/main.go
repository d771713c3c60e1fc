package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/replay"
	"github.com/tomz197/skyraid/internal/sim"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	sessionDrainTimeout = 15 * time.Second
	serverStopTimeout   = 5 * time.Second
)

// app holds what every SSH session shares. Each session runs its own game.
type app struct {
	logger      *log.Logger
	idleTimeout time.Duration
	recordDir   string
	shutdown    chan struct{}
	sessions    sync.WaitGroup
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyraid",
	})
	if lvl, err := log.ParseLevel(config.GetEnv("SKYRAID_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	idleSeconds := config.GetEnvInt("SKYRAID_IDLE_SECONDS", config.DefaultIdleSeconds)

	a := &app{
		logger:      logger,
		idleTimeout: time.Duration(idleSeconds) * time.Second,
		recordDir:   config.GetEnv("SKYRAID_RECORD_DIR", ""),
		shutdown:    make(chan struct{}),
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKey", hostKeyPath, "idle", a.idleTimeout)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			a.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		// Players see the shutdown notice, then their sessions end
		close(a.shutdown)
		if !waitTimeout(&a.sessions, sessionDrainTimeout) {
			logger.Warn("sessions still open after drain timeout")
		}

		sctx, cancel := context.WithTimeout(context.Background(), serverStopTimeout)
		defer cancel()
		if err := s.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("server stopped")
}

// gameMiddleware runs one single-player game per SSH session.
func (a *app) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		a.sessions.Add(1)
		defer a.sessions.Done()

		id := uuid.New()
		seed := binary.BigEndian.Uint64(id[:8])
		logger := a.logger.With("session", id.String(), "user", sess.User())
		logger.Info("new game session", "term", pty.Term,
			"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height), "seed", seed)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		var rec *replay.Recording
		if a.recordDir != "" {
			rec = replay.New(id.String(), seed, sim.Landscape)
		}

		err := loop.Run(sess.Context(), bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Seed:         seed,
			Logger:       logger,
			Recording:    rec,
			IdleTimeout:  a.idleTimeout,
			Shutdown:     a.shutdown,
		})
		switch {
		case errors.Is(err, loop.ErrIdleTimeout):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
		case err != nil:
			logger.Error("game error", "err", err)
		}

		if rec != nil && len(rec.Frames) > 0 {
			path := filepath.Join(a.recordDir, id.String()+".skyraid")
			if err := rec.Save(path); err != nil {
				logger.Error("failed to save recording", "err", err)
			} else {
				logger.Info("recording saved", "path", path, "frames", len(rec.Frames))
			}
		}

		logger.Info("session ended")
		next(sess)
	}
}

// waitTimeout waits for wg, giving up after d. Returns false on timeout.
func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
