package hotspot

import (
	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/region"
)

const (
	OpacityLocked  = 0.5
	OpacityDefault = 0.9
)

// RegionView is the render state of one hotspot.
type RegionView struct {
	ID          discovery.ID
	Sub         int
	Name        string
	Rect        region.Rect
	Overlay     region.Rect
	Discovered  bool
	Hovered     bool
	Locked      bool
	ShowOverlay bool
	Opacity     float64
}

// View builds the render state of a scene element from its mapped rects.
func (c *Controller) View(id discovery.ID, rect, overlay region.Rect) RegionView {
	el, ok := c.byID[id]
	if !ok {
		return RegionView{ID: id}
	}
	v := RegionView{
		ID:         id,
		Name:       el.Name,
		Rect:       rect,
		Overlay:    overlay,
		Discovered: c.store.IsDiscovered(id),
		Hovered:    c.hasHov && c.hovered == id,
		Locked:     c.Locked(id),
	}
	v.ShowOverlay = showOverlay(c.policy, v)
	v.Opacity = opacity(v)
	return v
}

// View builds the render state of a sub-element.
func (m *MiniGame) View(sub int, rect, overlay region.Rect) RegionView {
	s, ok := m.bySub[sub]
	if !ok {
		return RegionView{ID: m.parent.ID, Sub: sub}
	}
	v := RegionView{
		ID:         m.parent.ID,
		Sub:        sub,
		Name:       s.Name,
		Rect:       rect,
		Overlay:    overlay,
		Discovered: m.Discovered(sub),
		Hovered:    m.hasHov && m.hovered == sub,
	}
	v.ShowOverlay = showOverlay(m.policy, v)
	v.Opacity = opacity(v)
	return v
}

func showOverlay(p Policy, v RegionView) bool {
	if v.Locked {
		return true
	}
	if v.Discovered {
		return true
	}
	return v.Hovered && p.RevealOnHover()
}

func opacity(v RegionView) float64 {
	if v.Locked {
		return OpacityLocked
	}
	return OpacityDefault
}
