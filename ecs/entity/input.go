package entity

import (
	"fmt"

	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

// NewPointer creates the pointer singleton written by the input system.
func NewPointer(w *ecs.World) (ecs.Entity, error) {
	if e, ok := ecs.First(w, component.PointerComponent.Kind()); ok {
		return e, nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("pointer: add component: %w", err)
	}
	return e, nil
}
