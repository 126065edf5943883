package engine

import "github.com/lixenwraith/tunnelman/component"

// Store is the entity arena: insertion-ordered, addressed by stable handles
// Dead entities stay in place until Reap, so iteration during a tick is never disturbed
type Store struct {
	entities   []*component.Entity
	index      map[component.Handle]int
	nextHandle component.Handle
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		entities:   make([]*component.Entity, 0, 64),
		index:      make(map[component.Handle]int),
		nextHandle: 1,
	}
}

// Add assigns a handle and appends the entity
func (s *Store) Add(e *component.Entity) component.Handle {
	h := s.nextHandle
	s.nextHandle++
	e.Handle = h
	s.index[h] = len(s.entities)
	s.entities = append(s.entities, e)
	return h
}

// Get retrieves an entity by handle
func (s *Store) Get(h component.Handle) (*component.Entity, bool) {
	i, ok := s.index[h]
	if !ok {
		return nil, false
	}
	return s.entities[i], true
}

// Handles returns a snapshot of all handles in insertion order
func (s *Store) Handles() []component.Handle {
	result := make([]component.Handle, len(s.entities))
	for i, e := range s.entities {
		result[i] = e.Handle
	}
	return result
}

// All returns the backing slice in insertion order
// INTERNAL USE ONLY - callers must not append or reorder
func (s *Store) All() []*component.Entity {
	return s.entities
}

// Len returns the number of stored entities, dead or alive
func (s *Store) Len() int {
	return len(s.entities)
}

// CountWhere counts entities matching a predicate
func (s *Store) CountWhere(pred func(*component.Entity) bool) int {
	n := 0
	for _, e := range s.entities {
		if pred(e) {
			n++
		}
	}
	return n
}

// Reap removes dead entities in a single compaction pass, preserving order
// Returns the number removed
func (s *Store) Reap() int {
	writeIdx := 0
	for _, e := range s.entities {
		if e.Alive {
			s.entities[writeIdx] = e
			s.index[e.Handle] = writeIdx
			writeIdx++
		} else {
			delete(s.index, e.Handle)
		}
	}
	removed := len(s.entities) - writeIdx
	for i := writeIdx; i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = s.entities[:writeIdx]
	return removed
}

// Clear removes all entities, handles are not reused
func (s *Store) Clear() {
	for i := range s.entities {
		s.entities[i] = nil
	}
	s.entities = s.entities[:0]
	s.index = make(map[component.Handle]int)
}
