package system

import (
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/hotspot"
)

const (
	// EventHotspotAction carries a hotspot.Action from a click.
	EventHotspotAction ecs.EventKind = "hotspot_action"
	// EventBanner fires when the completion banner delay elapses.
	EventBanner ecs.EventKind = "banner"
)

// Focus points the systems at the controllers that own input: the active
// scene and, while open, a mini-game popup.
type Focus struct {
	Scene    *hotspot.Controller
	MiniGame *hotspot.MiniGame
	Mobile   bool
}

// Active returns the surface that receives pointer input.
func (f *Focus) Active() component.SurfaceKind {
	if f != nil && f.MiniGame != nil {
		return component.SurfacePopup
	}
	return component.SurfaceScene
}

func (f *Focus) enter(h *component.Hotspot) {
	switch {
	case h.Surface == component.SurfacePopup && f.MiniGame != nil:
		f.MiniGame.Enter(h.Sub)
	case h.Surface == component.SurfaceScene && f.Scene != nil:
		f.Scene.Enter(h.Element)
	}
}

func (f *Focus) leave(h *component.Hotspot) {
	switch {
	case h.Surface == component.SurfacePopup && f.MiniGame != nil:
		f.MiniGame.Leave(h.Sub)
	case h.Surface == component.SurfaceScene && f.Scene != nil:
		f.Scene.Leave(h.Element)
	}
}

func (f *Focus) click(h *component.Hotspot) hotspot.Action {
	switch {
	case h.Surface == component.SurfacePopup && f.MiniGame != nil:
		return f.MiniGame.Click(h.Sub)
	case h.Surface == component.SurfaceScene && f.Scene != nil:
		return f.Scene.Click(h.Element)
	}
	return hotspot.Action{}
}

func (f *Focus) view(h *component.Hotspot, b *component.Bounds) (hotspot.RegionView, bool) {
	switch {
	case h.Surface == component.SurfacePopup && f.MiniGame != nil:
		return f.MiniGame.View(h.Sub, b.Rect, b.Overlay), true
	case h.Surface == component.SurfaceScene && f.Scene != nil:
		return f.Scene.View(h.Element, b.Rect, b.Overlay), true
	}
	return hotspot.RegionView{}, false
}
