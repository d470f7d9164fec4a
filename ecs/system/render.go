package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dayout/common"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/hotspot"
	"github.com/milk9111/dayout/region"
)

var (
	highlightColor = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
	frameColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderSystem draws surfaces in layer order and the overlays of their
// hotspots from the hotspot view model.
type RenderSystem struct {
	focus *Focus
}

func NewRenderSystem(focus *Focus) *RenderSystem {
	return &RenderSystem{focus: focus}
}

func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	surfaces := w.Query(component.SurfaceComponent.Kind())
	sort.SliceStable(surfaces, func(i, j int) bool {
		return layerOf(w, surfaces[i]) < layerOf(w, surfaces[j])
	})

	for _, e := range surfaces {
		s, _ := ecs.Get(w, e, component.SurfaceComponent.Kind())
		if bd, ok := ecs.Get(w, e, component.BackdropComponent.Kind()); ok {
			bounds := screen.Bounds()
			vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.NRGBA{A: uint8(common.Clamp(bd.Alpha, 0, 1) * 255)}, false)
		}
		if !s.Ready {
			continue
		}
		r.drawSurface(w, screen, e, s)
		r.drawHotspots(w, screen, s.Kind)
	}
}

func (r *RenderSystem) drawSurface(w *ecs.World, screen *ebiten.Image, e ecs.Entity, s *component.Surface) {
	lb := s.Letterbox.Bounds()
	if lb.Empty() {
		return
	}

	sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if ok && sprite.Image != nil {
		drawImageInto(screen, sprite.Image, lb, 1)
	} else {
		// missing art: keep the geometry and show where the image would be
		vector.DrawFilledRect(screen, float32(lb.X), float32(lb.Y), float32(lb.W), float32(lb.H), s.Fill, false)
		ebitenutil.DebugPrintAt(screen, s.Title, int(lb.X)+12, int(lb.Y)+12)
	}
	if s.Kind == component.SurfacePopup {
		vector.StrokeRect(screen, float32(lb.X), float32(lb.Y), float32(lb.W), float32(lb.H), 4, frameColor, true)
	}
}

func (r *RenderSystem) drawHotspots(w *ecs.World, screen *ebiten.Image, kind component.SurfaceKind) {
	if r.focus == nil {
		return
	}
	ecs.ForEach3(w, component.HotspotComponent.Kind(), component.BoundsComponent.Kind(), component.OverlayComponent.Kind(), func(_ ecs.Entity, h *component.Hotspot, b *component.Bounds, o *component.Overlay) {
		if h.Surface != kind || !b.Mapped {
			return
		}
		view, ok := r.focus.view(h, b)
		if !ok {
			return
		}
		drawRegion(screen, view, o)
	})
}

func drawRegion(screen *ebiten.Image, v hotspot.RegionView, o *component.Overlay) {
	if v.ShowOverlay {
		if o.Image != nil {
			drawImageInto(screen, o.Image, v.Overlay, v.Opacity)
		} else {
			fill := o.Color
			fill.A = uint8(float64(fill.A) * v.Opacity * 0.5)
			vector.DrawFilledRect(screen, float32(v.Overlay.X), float32(v.Overlay.Y), float32(v.Overlay.W), float32(v.Overlay.H), fill, true)
			edge := o.Color
			edge.A = uint8(255 * v.Opacity)
			vector.StrokeRect(screen, float32(v.Overlay.X), float32(v.Overlay.Y), float32(v.Overlay.W), float32(v.Overlay.H), 2, edge, true)
		}
	}
	if v.Hovered && !v.Locked {
		vector.StrokeRect(screen, float32(v.Rect.X), float32(v.Rect.Y), float32(v.Rect.W), float32(v.Rect.H), 2, highlightColor, true)
	}
}

func drawImageInto(screen, img *ebiten.Image, dst region.Rect, alpha float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || dst.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
