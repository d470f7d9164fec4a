package system

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/region"
)

const debugToastFrames = 90

var debugColors = []color.NRGBA{
	{R: 255, A: 128},
	{G: 255, A: 128},
	{B: 255, A: 128},
	{R: 255, G: 255, A: 128},
}

// DebugRegionSystem outlines every active region in dev mode and copies the
// hovered region to the clipboard as a YAML snippet.
type DebugRegionSystem struct {
	Enabled   bool
	focus     *Focus
	pointer   *PointerSystem
	clipboard Clipboard
	logger    *log.Logger

	toast       string
	toastFrames int
}

func NewDebugRegionSystem(focus *Focus, pointer *PointerSystem, clip Clipboard, logger *log.Logger) *DebugRegionSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &DebugRegionSystem{focus: focus, pointer: pointer, clipboard: clip, logger: logger}
}

func (d *DebugRegionSystem) Update(w *ecs.World) {
	if d.toastFrames > 0 {
		d.toastFrames--
	}
	if !d.Enabled || w == nil {
		return
	}
	pe, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, _ := ecs.Get(w, pe, component.PointerComponent.Kind())
	if !ptr.CopyPressed || d.pointer == nil {
		return
	}
	he, ok := d.pointer.Hovered()
	if !ok {
		return
	}
	h, ok := ecs.Get(w, he, component.HotspotComponent.Kind())
	if !ok {
		return
	}

	r := region.Select(h.Region, h.MobileRegion, d.focus != nil && d.focus.Mobile)
	snippet := RegionSnippet(h.Name, r)
	if d.clipboard == nil {
		return
	}
	if err := d.clipboard.WriteText(snippet); err != nil {
		d.logger.Warn("clipboard unavailable", "err", err)
		d.setToast("clipboard unavailable")
		return
	}
	d.logger.Debug("region copied", "name", h.Name)
	d.setToast("copied " + h.Name)
}

func (d *DebugRegionSystem) setToast(msg string) {
	d.toast = msg
	d.toastFrames = debugToastFrames
}

func (d *DebugRegionSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if !d.Enabled || w == nil || screen == nil {
		return
	}
	active := d.focus.Active()
	i := 0
	ecs.ForEach2(w, component.HotspotComponent.Kind(), component.BoundsComponent.Kind(), func(_ ecs.Entity, h *component.Hotspot, b *component.Bounds) {
		if h.Surface != active || !b.Mapped {
			return
		}
		c := debugColors[i%len(debugColors)]
		i++
		vector.DrawFilledRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), color.NRGBA{R: c.R, G: c.G, B: c.B, A: 48}, false)
		vector.StrokeRect(screen, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), 2, c, true)
		ebitenutil.DebugPrintAt(screen, h.Name, int(b.Rect.X)+4, int(b.Rect.Y)+4)
	})

	if d.toastFrames > 0 {
		ebitenutil.DebugPrintAt(screen, d.toast, 12, screen.Bounds().Dy()-24)
	}
}

// RegionSnippet formats a region the way scene files declare it.
func RegionSnippet(name string, r region.Region) string {
	return fmt.Sprintf("# %s\nregion: { top: %g, left: %g, width: %g, height: %g }\n", name, r.Top, r.Left, r.Width, r.Height)
}
