package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/dayout/assets"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

// Clip names a sound effect asset.
type Clip struct {
	Name   string
	File   string
	Volume float64
}

// DefaultClips are the discovery and completion cues.
var DefaultClips = []Clip{
	{Name: "discover", File: assets.SoundDiscover, Volume: 0.5},
	{Name: "complete", File: assets.SoundComplete, Volume: 0.6},
}

func buildAudioComponent(clips []Clip, load func(string) (*audio.Player, error)) (*component.Audio, error) {
	n := len(clips)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)

	for i, clip := range clips {
		player, err := load(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
		play = append(play, false)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    play,
	}, nil
}

// NewAudioBank creates the entity holding the sound effect players.
func NewAudioBank(w *ecs.World, clips []Clip) (ecs.Entity, error) {
	comp, err := buildAudioComponent(clips, assets.LoadAudioPlayer)
	if err != nil {
		return 0, fmt.Errorf("audio bank: %w", err)
	}
	if comp == nil {
		return 0, fmt.Errorf("audio bank: no clips")
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.AudioComponent.Kind(), comp); err != nil {
		return 0, fmt.Errorf("audio bank: add audio component: %w", err)
	}
	return e, nil
}
