package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/simplezoom/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused entity must differ from the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle must not be alive")
	}
	if _, ok := Get(w, reused, h.Kind()); ok {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1.Kind()) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if w.Count(h2.Kind()) != 2 {
					t.Fatalf("expected 2 string components, got %d", w.Count(h2.Kind()))
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, h1.Kind(), intPtr(3)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, h1.Kind(), intPtr(4)); err != nil {
					t.Fatal(err)
				}
				v, _ := Get(w, e2, h1.Kind())
				if *v != 4 {
					t.Fatalf("expected replaced value 4, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	h := component.NewComponent[int]()

	if err := Add[int](w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, Entity(0), h.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	set := toSet(ents)

	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}

	t.Run("remove_while_iterating", func(t *testing.T) {
		visited := 0
		ForEach(w, h.Kind(), func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e1)
			DestroyEntity(w, e3)
		})
		if visited != 1 {
			t.Fatalf("expected destroyed entities to be skipped, visited %d", visited)
		}
	})
}

func TestFirstAndFindByName(t *testing.T) {
	w := NewWorld()

	if _, ok := FindByName(w, "FPSCamera"); ok {
		t.Fatalf("empty world should not find anything")
	}

	menu := CreateEntity(w)
	cam := CreateEntity(w)
	if err := Add(w, menu, component.NameComponent.Kind(), &component.Name{Value: "MenuCamera"}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, cam, component.NameComponent.Kind(), &component.Name{Value: "FPSCamera"}); err != nil {
		t.Fatal(err)
	}

	got, ok := FindByName(w, "FPSCamera")
	if !ok || got != cam {
		t.Fatalf("expected %v, got %v ok=%v", cam, got, ok)
	}
	if _, ok := FindByName(w, ""); ok {
		t.Fatalf("empty name should never match")
	}

	first, ok := w.First(component.NameComponent.Kind())
	if !ok || first != menu {
		t.Fatalf("expected first named entity %v, got %v", menu, first)
	}

	DestroyEntity(w, cam)
	if _, ok := FindByName(w, "FPSCamera"); ok {
		t.Fatalf("destroyed entity should not be found")
	}

	_, name, ok := First(w, component.NameComponent.Kind())
	if !ok || name.Value != "MenuCamera" {
		t.Fatalf("expected MenuCamera, got %v ok=%v", name, ok)
	}
}
