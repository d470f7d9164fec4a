package entity

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/region"
	"github.com/milk9111/dayout/scenes"
)

var screen = region.Rect{W: 1280, H: 720}

func loadTable(t *testing.T) *scenes.Table {
	t.Helper()
	table, err := scenes.LoadTable()
	require.NoError(t, err)
	return table
}

func TestLoadSceneToWorld(t *testing.T) {
	table := loadTable(t)
	scene, err := table.Scene(3)
	require.NoError(t, err)

	w := ecs.NewWorld()
	bg, err := LoadSceneToWorld(w, scene, table, screen)
	require.NoError(t, err)

	s, ok := ecs.Get(w, bg, component.SurfaceComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.SurfaceScene, s.Kind)
	assert.Equal(t, scene.Size.Size(), s.Natural)
	assert.Equal(t, screen, s.Container)

	sprite, ok := ecs.Get(w, bg, component.SpriteComponent.Kind())
	require.True(t, ok)
	assert.True(t, sprite.Missing, "scene art is not bundled")

	spots := w.Query(component.HotspotComponent.Kind())
	assert.Len(t, spots, len(scene.Elements))

	trucks := 0
	ecs.ForEach(w, component.HotspotComponent.Kind(), func(_ ecs.Entity, h *component.Hotspot) {
		if h.Truck {
			trucks++
		}
	})
	assert.Equal(t, 1, trucks)

	var global, local *component.ProgressCounter
	ecs.ForEach(w, component.ProgressCounterComponent.Kind(), func(_ ecs.Entity, c *component.ProgressCounter) {
		switch c.Scope {
		case component.ProgressGlobal:
			global = c
		case component.ProgressScene:
			local = c
		}
	})
	require.NotNil(t, global)
	require.NotNil(t, local)
	assert.Equal(t, table.AllNonTruckIDs(), global.IDs)
	assert.Equal(t, []discovery.ID{9, 10, 11}, local.IDs)
}

func TestLoadSceneToWorldRejectsNil(t *testing.T) {
	table := loadTable(t)
	_, err := LoadSceneToWorld(nil, &table.Scenes[0], table, screen)
	assert.Error(t, err)
	_, err = LoadSceneToWorld(ecs.NewWorld(), nil, table, screen)
	assert.Error(t, err)
}

func TestMiniGameLoadAndUnload(t *testing.T) {
	table := loadTable(t)
	pile, ok := table.Element(6)
	require.True(t, ok)

	w := ecs.NewWorld()
	_, err := NewPointer(w)
	require.NoError(t, err)
	scene, err := table.Scene(2)
	require.NoError(t, err)
	_, err = LoadSceneToWorld(w, scene, table, screen)
	require.NoError(t, err)

	popup, err := LoadMiniGameToWorld(w, pile, screen)
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, popup, component.BackdropComponent.Kind()))

	subs := 0
	ecs.ForEach(w, component.HotspotComponent.Kind(), func(_ ecs.Entity, h *component.Hotspot) {
		if h.Surface == component.SurfacePopup {
			subs++
			assert.Equal(t, discovery.ID(6), h.Element)
			assert.NotZero(t, h.Sub)
		}
	})
	assert.Equal(t, 4, subs)

	// 4 hotspots, the surface and the species counter
	assert.Equal(t, 6, UnloadMiniGame(w))
	assert.False(t, ecs.IsAlive(w, popup))
	assert.Len(t, w.Query(component.HotspotComponent.Kind()), len(scene.Elements))

	assert.Positive(t, UnloadScene(w))
	assert.Empty(t, w.Query(component.SurfaceComponent.Kind()))
	_, ok = ecs.First(w, component.PointerComponent.Kind())
	assert.True(t, ok, "pointer outlives the scene")
}

func TestLoadMiniGameRequiresMiniGame(t *testing.T) {
	_, err := LoadMiniGameToWorld(ecs.NewWorld(), &scenes.ElementSpec{ID: 1}, screen)
	assert.Error(t, err)
}

func TestSetContainerAndOffset(t *testing.T) {
	table := loadTable(t)
	w := ecs.NewWorld()
	bg, err := LoadSceneToWorld(w, &table.Scenes[0], table, screen)
	require.NoError(t, err)

	next := region.Rect{X: 0, Y: 60, W: 640, H: 480}
	SetContainer(w, component.SurfaceScene, next)
	SetOffset(w, component.SurfaceScene, -120)
	SetContainer(w, component.SurfacePopup, region.Rect{})

	s, _ := ecs.Get(w, bg, component.SurfaceComponent.Kind())
	assert.Equal(t, next, s.Container)
	tr, _ := ecs.Get(w, bg, component.TransformComponent.Kind())
	assert.Equal(t, -120.0, tr.X)
}

func TestNewPointerIsSingleton(t *testing.T) {
	w := ecs.NewWorld()
	a, err := NewPointer(w)
	require.NoError(t, err)
	b, err := NewPointer(w)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildAudioComponent(t *testing.T) {
	load := func(string) (*audio.Player, error) { return nil, nil }
	comp, err := buildAudioComponent(DefaultClips, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"discover", "complete"}, comp.Names)
	assert.Equal(t, []bool{false, false}, comp.Play)

	comp, err = buildAudioComponent(nil, load)
	require.NoError(t, err)
	assert.Nil(t, comp)

	_, err = buildAudioComponent(DefaultClips, func(string) (*audio.Player, error) {
		return nil, errors.New("no device")
	})
	assert.Error(t, err)
}
