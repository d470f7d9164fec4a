package ecs

import (
	"fmt"
	"slices"

	"github.com/milk9111/dayout/ecs/component"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component tables and system order.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	count       int

	stores  map[component.ComponentID]storage
	systems []System
	events  EventQueue
}

func NewWorld() *World {
	return &World{
		// id 0 is reserved so the zero Entity is never valid
		generations: []generation{0},
		alive:       []bool{false},
		stores:      make(map[component.ComponentID]storage),
	}
}

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func (w *World) CreateEntity() Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		id = entityID(len(w.generations))
		w.generations = append(w.generations, 0)
		w.alive = append(w.alive, false)
	}
	w.alive[id] = true
	w.count++
	return makeEntity(id, w.generations[id])
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func (w *World) DestroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.alive[id] = false
	w.generations[id]++
	w.free = append(w.free, id)
	w.count--
	return true
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) >= len(w.alive) {
		return false
	}
	return w.alive[id] && w.generations[id] == e.generation()
}

// Entities returns live entities ordered by id.
func Entities(w *World) []Entity {
	out := make([]Entity, 0, w.count)
	for id, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(id), w.generations[id]))
		}
	}
	return out
}

// Query returns live entities that have every kind, ordered by id.
func (w *World) Query(kinds ...component.Identified) []Entity {
	var out []Entity
	for _, e := range Entities(w) {
		match := true
		for _, k := range kinds {
			s, ok := w.stores[k.ID()]
			if !ok || !s.has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

func (w *World) First(kind component.Identified) (Entity, bool) {
	s, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for id, alive := range w.alive {
		if alive && s.has(entityID(id)) {
			return makeEntity(entityID(id), w.generations[id]), true
		}
	}
	return 0, false
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range slices.Clone(w.systems) {
		if s != nil {
			s.Update(w)
		}
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func table[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := newSparseSet[T]()
		w.stores[kind.ID()] = set
		return set
	}
	set, _ := s.(*sparseSet[T])
	return set
}

// Add attaches or replaces a component value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return fmt.Errorf("add %s: %w", kind.Name(), component.ErrNilComponent)
	}
	if !w.IsAlive(e) {
		return fmt.Errorf("add %s to %s: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	table(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := table(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := table(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}

// ForEach visits every entity with the component. The callback may destroy
// entities; iteration works on a snapshot.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := table(w, kind, false)
	if s == nil || s.len() == 0 {
		return
	}
	ents := slices.Clone(s.entities)
	vals := slices.Clone(s.values)
	for i, e := range ents {
		if w.IsAlive(e) && s.has(e.id()) {
			fn(e, vals[i])
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
