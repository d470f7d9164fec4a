package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/dayout/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
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
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return false twice")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot reuse, got %s and %s", old, reused)
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if _, ok := Get(w, reused, kind); ok {
		t.Fatalf("components must not survive destroy")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestZeroEntityInvalid(t *testing.T) {
	w := NewWorld()
	var zero Entity
	if zero.Valid() || IsAlive(w, zero) {
		t.Fatalf("zero entity must be invalid")
	}
	if e := CreateEntity(w); !e.Valid() {
		t.Fatalf("created entity must be valid")
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

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
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 should not have int")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				got := w.Query(strs.Kind())
				if len(got) != 2 || got[0] != e1 || got[1] != e2 {
					t.Fatalf("expected query in id order, got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, ints.Kind(), intPtr(7)) },
			check: func(t *testing.T) {
				if err := Add(w, e2, ints.Kind(), intPtr(8)); err != nil {
					t.Fatal(err)
				}
				v, _ := Get(w, e2, ints.Kind())
				if *v != 8 {
					t.Fatalf("expected replaced value 8, got %d", *v)
				}
			},
			teardown: func() bool { return Remove(w, e2, ints.Kind()) },
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

	if err := Add(w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEachDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, kind, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, kind, func(e Entity, v *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("expected 5 visits, got %d", visited)
	}
	if n := len(w.Query(kind)); n != 0 {
		t.Fatalf("expected no entities left, got %d", n)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[string]()

				for _, err := range []error{
					Add(w, e1, ka, intPtr(1)),
					Add(w, e2, ka, intPtr(2)),
					Add(w, e2, kb, intPtr(3)),
					Add(w, e2, kc, stringPtr("x")),
					Add(w, e3, kb, intPtr(4)),
				} {
					if err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	if _, ok := First(w, kind); ok {
		t.Fatalf("expected no entity for empty store")
	}

	CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	_ = Add(w, e3, kind, intPtr(3))
	_ = Add(w, e2, kind, intPtr(2))

	got, ok := First(w, kind)
	if !ok || got != e2 {
		t.Fatalf("expected lowest id e2, got %v ok=%v", got, ok)
	}
}

type countingSystem struct{ n int }

func (s *countingSystem) Update(w *World) {
	s.n++
	w.Events().Push(Event{Kind: "tick", Data: s.n})
}

func TestUpdateAndEvents(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)
	w.AddSystem(nil)

	w.Update()
	w.Update()
	if sys.n != 2 {
		t.Fatalf("expected 2 updates, got %d", sys.n)
	}

	events := w.Events().Drain()
	if len(events) != 2 || events[1].Data.(int) != 2 {
		t.Fatalf("unexpected events %v", events)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("drain should clear the queue")
	}
}

func TestComponentKindName(t *testing.T) {
	type position struct{ X, Y float64 }
	kind := component.NewComponentKind[position]()
	if kind.Name() != "position" {
		t.Fatalf("expected position, got %q", kind.Name())
	}
	if name := (component.ComponentKind[int]{}).Name(); name != "unknown" {
		t.Fatalf("expected unknown for zero kind, got %q", name)
	}

	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)
	err := Add(w, e, kind, &position{})
	if err == nil || !strings.Contains(err.Error(), "add position") {
		t.Fatalf("expected error naming the component, got %v", err)
	}
}

func TestEntityString(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)
	reused := CreateEntity(w)
	if got := reused.String(); got != "1#1" {
		t.Fatalf("expected 1#1, got %q", got)
	}
	var none Entity
	if none.Valid() {
		t.Fatal("zero entity must be invalid")
	}
}
