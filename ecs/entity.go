package ecs

import "fmt"

// Entity is a generational handle. The low half indexes a slot in the world;
// the high half counts how often that slot has been recycled, so a handle
// kept past DestroyEntity stops matching once the slot is reused.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const (
	slotBits = 32
	slotMask = 1<<slotBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<slotBits | Entity(id)
}

func (e Entity) id() entityID { return entityID(e & slotMask) }

func (e Entity) generation() generation { return generation(e >> slotBits) }

// String renders the handle as slot#generation, e.g. "12#3".
func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.id(), e.generation())
}

// Valid reports whether the handle points at a slot. Slot 0 is never handed
// out, so the zero Entity means "none".
func (e Entity) Valid() bool {
	return e.id() != 0
}
