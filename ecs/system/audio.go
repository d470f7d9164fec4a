package system

import (
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players))
		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			player.SetVolume(audioComp.Volume[i])
			if err := player.Rewind(); err != nil {
				continue
			}
			player.Play()
		}
	})
}

// PlaySound flags the named sound to play on the next update.
func PlaySound(w *ecs.World, name string) bool {
	queued := false
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		for i, n := range audioComp.Names {
			if n == name && i < len(audioComp.Play) {
				audioComp.Play[i] = true
				queued = true
			}
		}
	})
	return queued
}
