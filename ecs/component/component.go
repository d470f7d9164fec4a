// Package component declares the data attached to entities. Every component
// type registers a kind once at package init; the kind's id keys the world's
// storage and its name shows up in errors.
package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var lastID atomic.Uint32

// Identified is any component kind, regardless of its value type.
type Identified interface {
	ID() ComponentID
	Name() string
}

// ComponentKind is the typed key of a component store. The zero value is
// invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(lastID.Add(1)),
		name: reflect.TypeFor[T]().Name(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Name() string {
	if k.name == "" {
		return "unknown"
	}
	return k.name
}

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the package-level registration of a component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
