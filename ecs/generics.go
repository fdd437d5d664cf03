package ecs

import "github.com/milk9111/simplezoom/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle. It
// returns false if e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return IsAlive(w, e) && w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach calls fn for every live entity carrying kind. Components may be
// added or removed from inside fn.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, value *T)) {
	s := w.store(kind.ID(), false)
	if s == nil || fn == nil {
		return
	}
	for _, id := range s.ids() {
		e := makeEntity(id, w.entities.gens[id-1])
		if value, ok := Get(w, e, kind); ok {
			fn(e, value)
		}
	}
}

// First returns the first live entity carrying kind together with its value.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return 0, nil, false
	}
	value, ok := Get(w, e, kind)
	return e, value, ok
}

// FindByName returns the first live entity whose Name component matches name.
func FindByName(w *World, name string) (Entity, bool) {
	if name == "" {
		return 0, false
	}
	var found Entity
	ForEach(w, component.NameComponent.Kind(), func(e Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found, found.Valid()
}
