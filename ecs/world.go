package ecs

import "github.com/milk9111/simplezoom/ecs/component"

// Kinded is satisfied by every component.ComponentKind and lets untyped World
// methods accept a kind without a type parameter.
type Kinded interface {
	ID() component.ComponentID
}

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// First returns the first live entity carrying the given component kind.
func (w *World) First(kind Kinded) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.denseEntities {
		e := makeEntity(id, w.entities.gens[id-1])
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns how many entities carry the given component kind.
func (w *World) Count(kind Kinded) int {
	return w.store(kind.ID(), false).Len()
}
