package entity

import (
	"fmt"

	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/region"
	"github.com/milk9111/dayout/scenes"
)

const miniGameBackdrop = 0.6

// LoadMiniGameToWorld builds the popup surface of a composite element with
// one hotspot per sub-element and a species counter.
func LoadMiniGameToWorld(w *ecs.World, el *scenes.ElementSpec, container region.Rect) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("minigame: world is nil")
	}
	if el == nil || el.MiniGame == nil {
		return 0, fmt.Errorf("minigame: element has no mini-game")
	}

	title := el.MiniGame.Title
	if title == "" {
		title = el.Name
	}
	popup, err := newSurface(w, surfaceSpec{
		kind:       component.SurfacePopup,
		title:      title,
		background: el.MiniGame.Background,
		natural:    el.MiniGame.Size.Size(),
		container:  container,
		layer:      component.LayerPopup,
		backdrop:   miniGameBackdrop,
	})
	if err != nil {
		return 0, fmt.Errorf("minigame %d: %w", el.ID, err)
	}

	for _, sub := range el.SubElements {
		spot := hotspotSpec{
			hotspot: component.Hotspot{
				Surface:         component.SurfacePopup,
				Element:         el.ID,
				Sub:             sub.ID,
				Name:            sub.Name,
				Region:          sub.Region,
				MobileRegion:    sub.MobileRegion,
				Placement:       sub.Placement(),
				MobilePlacement: mobilePlacement(sub.OverlayRegion, sub.MobileRegion),
			},
			overlay: sub.Overlay,
			color:   sub.Color.RGBA8(overlayColor),
			layer:   component.LayerPopupSpot,
		}
		if _, err := newHotspot(w, spot); err != nil {
			return 0, fmt.Errorf("minigame %d: add sub hotspot %d: %w", el.ID, sub.ID, err)
		}
	}

	if _, err := newCounter(w, component.SurfacePopup, &component.ProgressCounter{
		Scope:  component.ProgressSpecies,
		Parent: el.ID,
		Total:  len(el.SubElements),
	}); err != nil {
		return 0, fmt.Errorf("minigame %d: add species counter: %w", el.ID, err)
	}

	return popup, nil
}

// UnloadMiniGame destroys the popup surface and its sub hotspots.
func UnloadMiniGame(w *ecs.World) int {
	return unload(w, component.SurfacePopup)
}

// SetContainer updates the screen box of every surface of the given kind.
func SetContainer(w *ecs.World, kind component.SurfaceKind, container region.Rect) {
	ecs.ForEach(w, component.SurfaceComponent.Kind(), func(_ ecs.Entity, s *component.Surface) {
		if s.Kind == kind {
			s.Container = container
		}
	})
}

// SetOffset moves every surface of the given kind, used by the entrance
// slide.
func SetOffset(w *ecs.World, kind component.SurfaceKind, x float64) {
	ecs.ForEach2(w, component.SurfaceComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, s *component.Surface, t *component.Transform) {
		if s.Kind == kind {
			t.X = x
		}
	})
}
