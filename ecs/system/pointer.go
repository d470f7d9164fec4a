package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/hotspot"
)

// PointerSystem hit-tests the pointer against the active surface and turns
// movement into enter/leave and presses into clicks.
type PointerSystem struct {
	focus   *Focus
	logger  *log.Logger
	hovered ecs.Entity
	surface component.SurfaceKind
}

func NewPointerSystem(focus *Focus, logger *log.Logger) *PointerSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &PointerSystem{focus: focus, logger: logger}
}

// Hovered returns the hotspot entity under the pointer.
func (p *PointerSystem) Hovered() (ecs.Entity, bool) {
	return p.hovered, p.hovered.Valid()
}

func (p *PointerSystem) Update(w *ecs.World) {
	if w == nil || p.focus == nil {
		return
	}
	pe, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, _ := ecs.Get(w, pe, component.PointerComponent.Kind())

	active := p.focus.Active()
	if active != p.surface {
		p.setHover(w, 0)
		p.surface = active
	}
	if ptr.Blocked || !ptr.Present {
		p.setHover(w, 0)
		return
	}

	hit := p.hitTest(w, active, ptr.X, ptr.Y)
	p.setHover(w, hit)

	if !ptr.Clicked || !hit.Valid() {
		return
	}
	h, ok := ecs.Get(w, hit, component.HotspotComponent.Kind())
	if !ok {
		return
	}
	act := p.focus.click(h)
	p.logger.Debug("hotspot clicked", "element", h.Element, "sub", h.Sub, "action", act.Kind)
	if act.Kind != hotspot.ActionNone {
		w.Events().Push(ecs.Event{Kind: EventHotspotAction, Data: act})
	}
}

// hitTest returns the mapped hotspot containing the point. When regions
// overlap the smallest one wins.
func (p *PointerSystem) hitTest(w *ecs.World, active component.SurfaceKind, x, y float64) ecs.Entity {
	var (
		hit  ecs.Entity
		area float64
	)
	ecs.ForEach2(w, component.HotspotComponent.Kind(), component.BoundsComponent.Kind(), func(e ecs.Entity, h *component.Hotspot, b *component.Bounds) {
		if h.Surface != active || !b.Mapped || !b.Rect.Contains(x, y) {
			return
		}
		if a := b.Rect.W * b.Rect.H; !hit.Valid() || a < area {
			hit, area = e, a
		}
	})
	return hit
}

func (p *PointerSystem) setHover(w *ecs.World, e ecs.Entity) {
	if e == p.hovered {
		return
	}
	if p.hovered.Valid() {
		if h, ok := ecs.Get(w, p.hovered, component.HotspotComponent.Kind()); ok {
			p.focus.leave(h)
		}
	}
	p.hovered = e
	if e.Valid() {
		if h, ok := ecs.Get(w, e, component.HotspotComponent.Kind()); ok {
			p.focus.enter(h)
		}
	}
}
