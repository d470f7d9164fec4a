package ecs

// storage is the type-erased view of a component table.
type storage interface {
	has(id entityID) bool
	remove(id entityID) bool
}

// sparseSet stores one component type keyed by entity id. Values are kept
// densely packed so iteration is cache friendly.
type sparseSet[T any] struct {
	entities []Entity
	values   []*T
	sparse   []int32
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{}
}

func (s *sparseSet[T]) index(id entityID) int {
	if int(id) >= len(s.sparse) {
		return -1
	}
	idx := int(s.sparse[id])
	if idx < 0 || idx >= len(s.entities) || s.entities[idx].id() != id {
		return -1
	}
	return idx
}

func (s *sparseSet[T]) has(id entityID) bool {
	return s.index(id) >= 0
}

func (s *sparseSet[T]) get(id entityID) (*T, bool) {
	idx := s.index(id)
	if idx < 0 {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(e Entity, v *T) {
	id := e.id()
	if idx := s.index(id); idx >= 0 {
		s.entities[idx] = e
		s.values[idx] = v
		return
	}
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
	s.sparse[id] = int32(len(s.entities) - 1)
}

func (s *sparseSet[T]) remove(id entityID) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	last := len(s.entities) - 1
	moved := s.entities[last]

	s.entities[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()] = int32(idx)

	s.entities[last] = 0
	s.values[last] = nil
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.sparse[id] = -1
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.entities)
}
