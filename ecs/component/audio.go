package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named sound effect players. Play flags are consumed by the
// audio system.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
}

var AudioComponent = NewComponent[Audio]()
