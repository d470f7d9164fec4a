package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/ecs/render"
	"github.com/milk9111/dayout/region"
	"github.com/milk9111/dayout/scenes"
)

var (
	sceneFill    = color.NRGBA{R: 0x1d, G: 0x3a, B: 0x4f, A: 0xff}
	overlayColor = color.NRGBA{R: 0xf2, G: 0xc9, B: 0x4c, A: 0xff}
)

// LoadSceneToWorld builds the background surface of a scene, one hotspot per
// element and the global and scene progress counters. A background that
// fails to load is drawn as a placeholder at the scene's declared size.
func LoadSceneToWorld(w *ecs.World, scene *scenes.SceneSpec, table *scenes.Table, container region.Rect) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("scene: world is nil")
	}
	if scene == nil || table == nil {
		return 0, fmt.Errorf("scene: spec is nil")
	}

	bg, err := newSurface(w, surfaceSpec{
		kind:       component.SurfaceScene,
		title:      scene.Title,
		background: scene.Background,
		natural:    scene.Size.Size(),
		container:  container,
		layer:      component.LayerScene,
	})
	if err != nil {
		return 0, fmt.Errorf("scene %d: %w", scene.ID, err)
	}

	for _, el := range scene.Elements {
		spot := hotspotSpec{
			hotspot: component.Hotspot{
				Surface:         component.SurfaceScene,
				Element:         el.ID,
				Name:            el.Name,
				Truck:           el.Truck,
				Region:          el.Region,
				MobileRegion:    el.MobileRegion,
				Placement:       el.Placement(),
				MobilePlacement: mobilePlacement(el.OverlayRegion, el.MobileRegion),
			},
			overlay: el.Overlay,
			color:   el.Color.RGBA8(overlayColor),
			layer:   component.LayerSceneSpot,
		}
		if _, err := newHotspot(w, spot); err != nil {
			return 0, fmt.Errorf("scene %d: add hotspot %d: %w", scene.ID, el.ID, err)
		}
	}

	if _, err := newCounter(w, component.SurfaceScene, &component.ProgressCounter{
		Scope: component.ProgressGlobal,
		IDs:   table.AllNonTruckIDs(),
	}); err != nil {
		return 0, fmt.Errorf("scene %d: add global counter: %w", scene.ID, err)
	}
	if _, err := newCounter(w, component.SurfaceScene, &component.ProgressCounter{
		Scope: component.ProgressScene,
		IDs:   table.NonTruckIDs(scene.ID),
	}); err != nil {
		return 0, fmt.Errorf("scene %d: add scene counter: %w", scene.ID, err)
	}

	return bg, nil
}

// UnloadScene destroys everything LoadSceneToWorld created.
func UnloadScene(w *ecs.World) int {
	return unload(w, component.SurfaceScene)
}

type surfaceSpec struct {
	kind       component.SurfaceKind
	title      string
	background string
	natural    region.Size
	container  region.Rect
	layer      int
	backdrop   float64
}

func newSurface(w *ecs.World, spec surfaceSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MemberComponent.Kind(), &component.Member{Surface: spec.kind}); err != nil {
		return 0, fmt.Errorf("add surface member: %w", err)
	}
	if err := ecs.Add(w, e, component.SurfaceComponent.Kind(), &component.Surface{
		Kind:      spec.kind,
		Title:     spec.title,
		Natural:   spec.natural,
		Container: spec.container,
		Fill:      sceneFill,
	}); err != nil {
		return 0, fmt.Errorf("add surface: %w", err)
	}

	sprite := &component.Sprite{Path: spec.background}
	if img, err := render.LoadImage(spec.background); err == nil {
		sprite.Image = img
	} else {
		sprite.Missing = true
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return 0, fmt.Errorf("add surface sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("add surface transform: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.layer}); err != nil {
		return 0, fmt.Errorf("add surface layer: %w", err)
	}
	if spec.backdrop > 0 {
		if err := ecs.Add(w, e, component.BackdropComponent.Kind(), &component.Backdrop{Alpha: spec.backdrop}); err != nil {
			return 0, fmt.Errorf("add surface backdrop: %w", err)
		}
	}
	return e, nil
}

type hotspotSpec struct {
	hotspot component.Hotspot
	overlay string
	color   color.NRGBA
	layer   int
}

func newHotspot(w *ecs.World, spec hotspotSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	h := spec.hotspot
	if err := ecs.Add(w, e, component.MemberComponent.Kind(), &component.Member{Surface: h.Surface}); err != nil {
		return 0, fmt.Errorf("add member: %w", err)
	}
	if err := ecs.Add(w, e, component.HotspotComponent.Kind(), &h); err != nil {
		return 0, fmt.Errorf("add hotspot: %w", err)
	}
	overlay := &component.Overlay{Color: spec.color}
	if spec.overlay != "" {
		// broken overlay art falls back to the colour fill
		if img, err := render.LoadImage(spec.overlay); err == nil {
			overlay.Image = img
		}
	}
	if err := ecs.Add(w, e, component.OverlayComponent.Kind(), overlay); err != nil {
		return 0, fmt.Errorf("add overlay: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.layer}); err != nil {
		return 0, fmt.Errorf("add layer: %w", err)
	}
	return e, nil
}

func newCounter(w *ecs.World, surface component.SurfaceKind, c *component.ProgressCounter) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.MemberComponent.Kind(), &component.Member{Surface: surface}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProgressCounterComponent.Kind(), c); err != nil {
		return 0, err
	}
	return e, nil
}

func unload(w *ecs.World, surface component.SurfaceKind) int {
	if w == nil {
		return 0
	}
	n := 0
	ecs.ForEach(w, component.MemberComponent.Kind(), func(e ecs.Entity, m *component.Member) {
		if m.Surface == surface && ecs.DestroyEntity(w, e) {
			n++
		}
	})
	return n
}

// mobilePlacement returns the overlay region used on mobile. An explicit
// overlay region applies on every device.
func mobilePlacement(overlay, mobile *region.Region) *region.Region {
	if overlay != nil {
		return nil
	}
	return mobile
}
