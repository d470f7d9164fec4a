package system

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/hotspot"
	"github.com/milk9111/dayout/region"
	"github.com/milk9111/dayout/scenes"
)

func testScene() *scenes.SceneSpec {
	return &scenes.SceneSpec{
		ID:   1,
		Size: scenes.SizeSpec{Width: 1000, Height: 500},
		Elements: []scenes.ElementSpec{
			{ID: 1, Name: "Boat", Region: region.Region{Top: 0, Left: 0, Width: 50, Height: 50}},
			{ID: 2, Name: "Scale", Region: region.Region{Top: 10, Left: 10, Width: 10, Height: 10}},
			{ID: 3, Name: "Truck", Truck: true, Region: region.Region{Top: 50, Left: 50, Width: 50, Height: 50}},
		},
	}
}

type fixture struct {
	w       *ecs.World
	store   *discovery.Store
	focus   *Focus
	layout  *LayoutSystem
	pointer *PointerSystem
	ptr     ecs.Entity
	spots   map[discovery.ID]ecs.Entity
}

func newFixture(t *testing.T, policy hotspot.Policy) *fixture {
	t.Helper()
	scene := testScene()
	store := discovery.NewStore()
	gate := discovery.NewGate(store, discovery.GateScene)
	ctrl := hotspot.NewController(policy, store, gate, scene, []discovery.ID{1, 2}, nil)

	f := &fixture{
		w:     ecs.NewWorld(),
		store: store,
		focus: &Focus{Scene: ctrl},
		spots: make(map[discovery.ID]ecs.Entity),
	}
	f.layout = NewLayoutSystem(f.focus)
	f.pointer = NewPointerSystem(f.focus, nil)

	bg := ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, bg, component.SurfaceComponent.Kind(), &component.Surface{
		Kind:      component.SurfaceScene,
		Natural:   region.Size{W: 1000, H: 500},
		Container: region.Rect{W: 800, H: 800},
	}))
	for _, el := range scene.Elements {
		e := ecs.CreateEntity(f.w)
		require.NoError(t, ecs.Add(f.w, e, component.HotspotComponent.Kind(), &component.Hotspot{
			Surface:   component.SurfaceScene,
			Element:   el.ID,
			Name:      el.Name,
			Truck:     el.Truck,
			Region:    el.Region,
			Placement: el.Placement(),
		}))
		f.spots[el.ID] = e
	}
	f.ptr = ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, f.ptr, component.PointerComponent.Kind(), &component.Pointer{}))
	return f
}

func (f *fixture) move(x, y float64, clicked bool) {
	p, _ := ecs.Get(f.w, f.ptr, component.PointerComponent.Kind())
	*p = component.Pointer{X: x, Y: y, Present: true, Clicked: clicked}
	f.layout.Update(f.w)
	f.pointer.Update(f.w)
}

func TestLayoutSystemMapsHotspots(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	f.layout.Update(f.w)

	surface, ok := ecs.First(f.w, component.SurfaceComponent.Kind())
	require.True(t, ok)
	s, _ := ecs.Get(f.w, surface, component.SurfaceComponent.Kind())
	require.True(t, s.Ready)
	assert.Equal(t, region.Letterbox{OffsetX: 0, OffsetY: 200, Width: 800, Height: 400}, s.Letterbox)

	b, ok := ecs.Get(f.w, f.spots[1], component.BoundsComponent.Kind())
	require.True(t, ok)
	assert.True(t, b.Mapped)
	assert.Equal(t, region.Rect{X: 0, Y: 200, W: 400, H: 200}, b.Rect)
	assert.Equal(t, b.Rect, b.Overlay)
}

func TestLayoutSystemKeepsGeometryWhenContainerCollapses(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	f.layout.Update(f.w)

	surface, _ := ecs.First(f.w, component.SurfaceComponent.Kind())
	s, _ := ecs.Get(f.w, surface, component.SurfaceComponent.Kind())
	before := s.Letterbox
	s.Container = region.Rect{}
	f.layout.Update(f.w)

	assert.Equal(t, before, s.Letterbox)
	b, _ := ecs.Get(f.w, f.spots[2], component.BoundsComponent.Kind())
	assert.True(t, b.Mapped)
}

func TestLayoutSystemAppliesTransformOffset(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	surface, _ := ecs.First(f.w, component.SurfaceComponent.Kind())
	require.NoError(t, ecs.Add(f.w, surface, component.TransformComponent.Kind(), &component.Transform{X: 100}))
	f.layout.Update(f.w)

	b, _ := ecs.Get(f.w, f.spots[1], component.BoundsComponent.Kind())
	assert.Equal(t, region.Rect{X: 100, Y: 200, W: 400, H: 200}, b.Rect)
}

func TestPointerSystemHoverCommitsUnderHoverPolicy(t *testing.T) {
	f := newFixture(t, hotspot.HoverReveal{})

	f.move(100, 300, false)
	hovered, ok := f.pointer.Hovered()
	require.True(t, ok)
	assert.Equal(t, f.spots[1], hovered)
	assert.True(t, f.store.IsDiscovered(1))

	f.move(10, 10, false)
	_, ok = f.pointer.Hovered()
	assert.False(t, ok)
	assert.True(t, f.store.IsDiscovered(1))
}

func TestPointerSystemSmallestRegionWins(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})

	// (100, 250) lies inside both Boat and the smaller Scale.
	f.move(100, 250, true)
	hovered, ok := f.pointer.Hovered()
	require.True(t, ok)
	assert.Equal(t, f.spots[2], hovered)

	events := f.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventHotspotAction, events[0].Kind)
	act, ok := events[0].Data.(hotspot.Action)
	require.True(t, ok)
	assert.Equal(t, hotspot.ActionOpenPopup, act.Kind)
	assert.Equal(t, discovery.ID(2), act.Element)
	assert.True(t, f.store.IsDiscovered(2))
}

func TestPointerSystemLockedTruckIgnoresClick(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})

	f.move(600, 500, true)
	assert.Empty(t, f.w.Events().Drain())

	f.store.MarkDiscovered(1)
	f.store.MarkDiscovered(2)
	f.move(600, 500, false)
	f.move(600, 500, true)
	events := f.w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, hotspot.ActionOpenJourney, events[0].Data.(hotspot.Action).Kind)
}

func TestPointerSystemBlockedClearsHover(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	f.move(100, 300, false)
	_, ok := f.pointer.Hovered()
	require.True(t, ok)

	p, _ := ecs.Get(f.w, f.ptr, component.PointerComponent.Kind())
	p.Blocked = true
	p.Clicked = true
	f.pointer.Update(f.w)

	_, ok = f.pointer.Hovered()
	assert.False(t, ok)
	assert.Empty(t, f.w.Events().Drain())
	assert.False(t, f.store.IsDiscovered(1))
}

func TestDelaySystemEmitsAndCancels(t *testing.T) {
	w := ecs.NewWorld()
	sys := NewDelaySystem()

	_, err := Schedule(w, EventBanner, 2)
	require.NoError(t, err)

	sys.Update(w)
	assert.Empty(t, w.Events().Drain())
	sys.Update(w)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventBanner, events[0].Kind)
	assert.Empty(t, w.Query(component.DelayComponent.Kind()))

	_, err = Schedule(w, EventBanner, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, CancelDelays(w))
	sys.Update(w)
	sys.Update(w)
	assert.Empty(t, w.Events().Drain())
}

func TestProgressSystemCountsAndSchedulesBannerOnce(t *testing.T) {
	w := ecs.NewWorld()
	store := discovery.NewStore()
	sys := NewProgressSystem(store, 3, nil)

	global := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, global, component.ProgressCounterComponent.Kind(), &component.ProgressCounter{
		Scope: component.ProgressGlobal,
		IDs:   []discovery.ID{1, 2},
	}))
	species := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, species, component.ProgressCounterComponent.Kind(), &component.ProgressCounter{
		Scope:  component.ProgressSpecies,
		Parent: 6,
		Total:  4,
	}))

	sys.Update(w)
	c, ok := Counter(w, component.ProgressGlobal)
	require.True(t, ok)
	assert.Equal(t, "Discovered: 0/2", c.Text)

	store.MarkSubDiscovered(6, 1)
	store.MarkDiscovered(1)
	store.MarkDiscovered(2)
	sys.Update(w)
	sys.Update(w)

	c, _ = Counter(w, component.ProgressGlobal)
	assert.Equal(t, "Discovered: 2/2", c.Text)
	assert.True(t, c.Complete)
	assert.True(t, c.Celebrated)
	assert.Len(t, w.Query(component.DelayComponent.Kind()), 1)

	s, _ := Counter(w, component.ProgressSpecies)
	assert.Equal(t, "Species Found: 1/4", s.Text)
	assert.False(t, s.Complete)

	_, ok = Counter(w, component.ProgressScene)
	assert.False(t, ok)
}

func TestProgressSystemRetriesFailedBanner(t *testing.T) {
	w := ecs.NewWorld()
	store := discovery.NewStore()
	store.MarkDiscovered(1)
	sys := NewProgressSystem(store, 3, nil)

	fail := true
	sys.schedule = func(w *ecs.World, kind ecs.EventKind, frames int) (ecs.Entity, error) {
		if fail {
			return 0, errors.New("world full")
		}
		return Schedule(w, kind, frames)
	}

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.ProgressCounterComponent.Kind(), &component.ProgressCounter{
		Scope: component.ProgressGlobal,
		IDs:   []discovery.ID{1},
	}))

	sys.Update(w)
	c, _ := Counter(w, component.ProgressGlobal)
	assert.True(t, c.Complete)
	assert.False(t, c.Celebrated)
	assert.Empty(t, w.Query(component.DelayComponent.Kind()))

	fail = false
	sys.Update(w)
	c, _ = Counter(w, component.ProgressGlobal)
	assert.True(t, c.Celebrated)
	assert.Len(t, w.Query(component.DelayComponent.Kind()), 1)
}

func TestPlaySoundFlagsNamedPlayer(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.AudioComponent.Kind(), &component.Audio{
		Names:   []string{"discover", "complete"},
		Players: make([]*audio.Player, 2),
		Volume:  []float64{1, 1},
		Play:    []bool{false, false},
	}))

	assert.True(t, PlaySound(w, "complete"))
	assert.False(t, PlaySound(w, "missing"))
	a, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	assert.Equal(t, []bool{false, true}, a.Play)

	NewAudioSystem().Update(w)
	assert.Equal(t, []bool{false, false}, a.Play)
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func TestDebugRegionSystemCopiesHoveredRegion(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	clip := &fakeClipboard{}
	dbg := NewDebugRegionSystem(f.focus, f.pointer, clip, nil)
	dbg.Enabled = true

	f.move(100, 250, false)
	p, _ := ecs.Get(f.w, f.ptr, component.PointerComponent.Kind())
	p.CopyPressed = true
	dbg.Update(f.w)

	assert.Equal(t, "# Scale\nregion: { top: 10, left: 10, width: 10, height: 10 }\n", clip.text)
	assert.Equal(t, "copied Scale", dbg.toast)

	clip.err = errors.New("no display")
	dbg.Update(f.w)
	assert.Equal(t, "clipboard unavailable", dbg.toast)
}

func TestDebugRegionSystemDisabledDoesNothing(t *testing.T) {
	f := newFixture(t, hotspot.ClickReveal{})
	clip := &fakeClipboard{}
	dbg := NewDebugRegionSystem(f.focus, f.pointer, clip, nil)

	f.move(100, 250, false)
	p, _ := ecs.Get(f.w, f.ptr, component.PointerComponent.Kind())
	p.CopyPressed = true
	dbg.Update(f.w)

	assert.Empty(t, clip.text)
}
