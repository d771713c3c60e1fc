package sim

import "github.com/tomz197/skyraid/internal/config"

// Field is the size of the logical play-field. Entities live in
// [0, Width) x [0, Height) regardless of the display surface.
type Field struct {
	Width, Height float64
}

var (
	Landscape = Field{Width: config.LandscapeWidth, Height: config.LandscapeHeight}
	Portrait  = Field{Width: config.PortraitWidth, Height: config.PortraitHeight}
)

// IsPortrait returns true if the field is taller than it is wide.
func (f Field) IsPortrait() bool {
	return f.Height > f.Width
}

// RespawnPoint returns the player's top-left corner at start and after a
// lost life: horizontally centered, a fixed distance above the bottom edge.
func (f Field) RespawnPoint() (float64, float64) {
	return f.Width/2 - config.PlayerWidth/2, f.Height - config.PlayerRespawnOffset
}
