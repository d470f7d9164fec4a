package system

import (
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

// DelaySystem counts down Delay components, emits their event and destroys
// the entity when the delay elapses.
type DelaySystem struct{}

func NewDelaySystem() *DelaySystem {
	return &DelaySystem{}
}

func (s *DelaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DelayComponent.Kind(), func(e ecs.Entity, d *component.Delay) {
		if d.Frames > 0 {
			d.Frames--
			if d.Frames > 0 {
				return
			}
		}
		w.Events().Push(ecs.Event{Kind: ecs.EventKind(d.Event)})
		ecs.DestroyEntity(w, e)
	})
}

// Schedule creates a delay entity that emits kind after frames updates.
func Schedule(w *ecs.World, kind ecs.EventKind, frames int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.DelayComponent.Kind(), &component.Delay{Frames: frames, Event: string(kind)}); err != nil {
		return 0, err
	}
	return e, nil
}

// CancelDelays destroys every pending delay. It returns how many were
// cancelled.
func CancelDelays(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.DelayComponent.Kind(), func(e ecs.Entity, _ *component.Delay) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	})
	return n
}
