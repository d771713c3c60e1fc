package sim_test

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/object"
	"github.com/tomz197/skyraid/internal/sim"
	"github.com/tomz197/skyraid/internal/sim/mocks"
)

const frame = 16 * time.Millisecond

// lowSource always returns the range minimum, so spawn timers start at
// their shortest but stay well beyond a single frame.
type lowSource struct{}

func (lowSource) Between(min, _ float64) float64 { return min }

func TestObserver_ScoreChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	obs.EXPECT().ScoreChanged(config.ScoreEnemyKill).Times(1)

	g := sim.New(sim.Landscape, lowSource{}, sim.WithObserver(obs))
	g.Store().AddEnemy(object.NewEnemy(100, 100, 0, 100))
	g.Store().AddPlayerBullet(object.NewPlayerBullet(118, 140))

	g.Step(frame, sim.Input{})
}

func TestObserver_GameOverAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	gomock.InOrder(
		obs.EXPECT().LivesChanged(2),
		obs.EXPECT().LivesChanged(1),
		obs.EXPECT().LivesChanged(0),
		obs.EXPECT().GameOver(0),
		obs.EXPECT().GameReset(),
	)

	g := sim.New(sim.Landscape, lowSource{}, sim.WithObserver(obs))
	for i := range 4 {
		g.Store().AddEnemy(object.NewEnemy(float64(50*i), sim.Landscape.Height+1, 0, 100))
	}

	g.Step(frame, sim.Input{})
	if g.State() != sim.StateGameOver {
		t.Fatalf("state = %v, want game-over", g.State())
	}

	g.Step(frame, sim.Input{})
	g.Step(frame, sim.Input{RestartRequested: true})
	if g.State() != sim.StatePlaying {
		t.Errorf("state = %v, want playing", g.State())
	}
}

func TestObserver_NotCalledWithoutEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	obs := mocks.NewMockObserver(ctrl)
	g := sim.New(sim.Landscape, lowSource{}, sim.WithObserver(obs))

	for range 10 {
		g.Step(frame, sim.Input{MoveLeft: true})
	}
}
