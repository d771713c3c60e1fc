package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/replay"
	"github.com/tomz197/skyraid/internal/sim"
)

func main() {
	var file string
	var runs int
	var frames int
	var seedBase uint64
	var seedStep uint64
	var save string
	var verbose bool

	flag.StringVar(&file, "file", "", "recording to play back; autopilot runs when empty")
	flag.IntVar(&runs, "runs", 5, "number of autopilot runs")
	flag.IntVar(&frames, "frames", 3600, "frames per autopilot run")
	flag.Uint64Var(&seedBase, "seed-base", 42, "seed for autopilot run 1")
	flag.Uint64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&save, "save", "", "write the first autopilot recording to this path")
	flag.BoolVar(&verbose, "v", false, "log game events to stderr")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "replay"})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if file != "" {
		if err := playFile(file, logger); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		os.Exit(2)
	}

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("runs=%d frames=%d seed_base=%d seed_step=%d\n\n", runs, frames, seedBase, seedStep)

	all := make([]replay.Summary, 0, runs)
	for i := range runs {
		seed := seedBase + uint64(i)*seedStep
		rec := replay.Autopilot(seed, frames, config.TargetFrameTime)
		if i == 0 && save != "" {
			if err := rec.Save(save); err != nil {
				fmt.Printf("error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("saved run 1 to %s\n", save)
		}

		sum := replay.Play(rec, sim.WithLogger(logger.With("run", i+1)))
		all = append(all, sum)
		fmt.Printf("run %d seed=%d %s\n", i+1, seed, sum)
	}

	printAggregate(all)
}

func playFile(path string, logger *log.Logger) error {
	rec, err := replay.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("=== Replay ===\n")
	fmt.Printf("session=%s seed=%d field=%.0fx%.0f frames=%d\n\n",
		rec.Session, rec.Seed, rec.Field.Width, rec.Field.Height, len(rec.Frames))

	// Playing twice proves the recording is deterministic
	first := replay.Play(rec, sim.WithLogger(logger))
	second := replay.Play(rec)
	fmt.Println(first)
	if first != second {
		return fmt.Errorf("replay diverged: %s vs %s", first, second)
	}
	return nil
}

func printAggregate(all []replay.Summary) {
	var total, best, gameOvers int
	var played time.Duration
	for _, s := range all {
		total += s.Score
		best = max(best, s.Score)
		played += s.Duration
		if s.State == sim.StateGameOver {
			gameOvers++
		}
	}

	fmt.Printf("\n--- Aggregate ---\n")
	fmt.Printf("mean_score=%.1f best_score=%d game_over_at_end=%d/%d mean_duration=%s\n",
		float64(total)/float64(len(all)), best, gameOvers, len(all),
		(played / time.Duration(len(all))).Round(time.Millisecond))
}
