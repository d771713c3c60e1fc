package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/replay"
	"github.com/tomz197/skyraid/internal/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger(config.GetEnv("SKYRAID_LOG_FILE", ""), config.GetEnv("SKYRAID_LOG_LEVEL", "info"))
	if err != nil {
		return err
	}
	defer closeLog()

	seed := config.GetEnvUint64("SKYRAID_SEED", uint64(time.Now().UnixNano()))
	recordPath := config.GetEnv("SKYRAID_RECORD", "")

	var rec *replay.Recording
	if recordPath != "" {
		rec = replay.New(uuid.NewString(), seed, sim.Landscape)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}

	// Ctrl+C arrives as a key in raw mode; only SIGTERM needs handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	logger.Info("session start", "seed", seed)
	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(ctx, reader, os.Stdout, loop.Options{
		Seed:      seed,
		Logger:    logger,
		Recording: rec,
	})
	_ = term.Restore(fd, oldState)
	if runErr != nil {
		return runErr
	}

	if rec != nil && len(rec.Frames) > 0 {
		if err := rec.Save(recordPath); err != nil {
			return err
		}
		logger.Info("recording saved", "path", recordPath, "frames", len(rec.Frames))
		fmt.Printf("Recording saved to %s (seed %d)\n", recordPath, seed)
	}
	return nil
}

// newLogger logs to path, or nowhere when path is empty: the terminal is
// the game screen.
func newLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyraid",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { f.Close() }, nil
}
