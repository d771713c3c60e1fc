package sim

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer receives HUD notifications from a Game. Calls happen
// synchronously inside Step or Reset.
type Observer interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
	GameOver(finalScore int)
	GameReset()
}

type nopObserver struct{}

func (nopObserver) ScoreChanged(int) {}
func (nopObserver) LivesChanged(int) {}
func (nopObserver) GameOver(int)     {}
func (nopObserver) GameReset()       {}
