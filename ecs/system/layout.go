package system

import (
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/region"
)

type surfaceLayout struct {
	surface  ecs.Entity
	hits     *region.Mapper[ecs.Entity]
	overlays *region.Mapper[ecs.Entity]
}

// LayoutSystem maps hotspot regions onto each surface's letterboxed image.
// Mapping is idempotent, so running every frame is cheap when nothing moved.
type LayoutSystem struct {
	focus   *Focus
	layouts map[component.SurfaceKind]*surfaceLayout
}

func NewLayoutSystem(focus *Focus) *LayoutSystem {
	return &LayoutSystem{
		focus:   focus,
		layouts: make(map[component.SurfaceKind]*surfaceLayout),
	}
}

func (l *LayoutSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	mobile := l.focus != nil && l.focus.Mobile

	seen := make(map[component.SurfaceKind]bool, 2)
	ecs.ForEach(w, component.SurfaceComponent.Kind(), func(e ecs.Entity, s *component.Surface) {
		seen[s.Kind] = true
		lay := l.layoutFor(s.Kind, e)

		natural := s.Natural
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Image != nil {
			b := sprite.Image.Bounds()
			natural = region.Size{W: float64(b.Dx()), H: float64(b.Dy())}
		}

		container := s.Container
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			container = container.Offset(t.X, t.Y)
		}
		client := region.Size{W: container.W, H: container.H}

		lb, ok := region.Fit(natural, client)
		if !ok {
			// keep the last good geometry until the container is usable again
			return
		}
		lb.OffsetX += container.X
		lb.OffsetY += container.Y
		s.Letterbox = lb
		s.Ready = true

		hits := make(map[ecs.Entity]region.Region)
		places := make(map[ecs.Entity]region.Region)
		ecs.ForEach(w, component.HotspotComponent.Kind(), func(he ecs.Entity, h *component.Hotspot) {
			if h.Surface != s.Kind {
				return
			}
			hits[he] = region.Select(h.Region, h.MobileRegion, mobile)
			places[he] = region.Select(h.Placement, h.MobilePlacement, mobile)
		})
		lay.hits.Recompute(natural, client, hits)
		lay.overlays.Recompute(natural, client, places)

		for he := range hits {
			b, ok := ecs.Get(w, he, component.BoundsComponent.Kind())
			if !ok {
				b = &component.Bounds{}
				_ = ecs.Add(w, he, component.BoundsComponent.Kind(), b)
			}
			rect, mapped := lay.hits.Rect(he)
			b.Mapped = mapped
			if !mapped {
				b.Rect = region.Rect{}
				b.Overlay = region.Rect{}
				continue
			}
			b.Rect = rect.Offset(container.X, container.Y)
			if over, ok := lay.overlays.Rect(he); ok {
				b.Overlay = over.Offset(container.X, container.Y)
			} else {
				b.Overlay = b.Rect
			}
		}
	})

	for kind := range l.layouts {
		if !seen[kind] {
			delete(l.layouts, kind)
		}
	}
}

func (l *LayoutSystem) layoutFor(kind component.SurfaceKind, e ecs.Entity) *surfaceLayout {
	lay, ok := l.layouts[kind]
	if !ok || lay.surface != e {
		lay = &surfaceLayout{
			surface:  e,
			hits:     region.NewMapper[ecs.Entity](),
			overlays: region.NewMapper[ecs.Entity](),
		}
		l.layouts[kind] = lay
	}
	return lay
}
