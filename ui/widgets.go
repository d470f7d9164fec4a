package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/dayout/ecs/render"
)

func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
	} else {
		w.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func isVisible(w widget.HasWidget) bool {
	return w.GetWidget().Visibility == widget.Visibility_Show
}

func newButton(t *Theme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(t.Button),
		widget.ButtonOpts.Text(label, t.Face, t.ButtonText),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 36),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newText(face *text.Face, label string, clr color.Color, maxWidth float64) *widget.Text {
	opts := []widget.TextOpt{
		widget.TextOpts.Text(label, face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	}
	if maxWidth > 0 {
		opts = append(opts, widget.TextOpts.MaxWidth(maxWidth))
	}
	return widget.NewText(opts...)
}

// newOverlay returns a hidden full-screen dimmed container holding a
// centered vertical panel.
func newOverlay(t *Theme, minW, minH int) (overlay, panel *widget.Container) {
	overlay = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(t.Overlay),
	)
	setVisible(overlay, false)

	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	overlay.AddChild(panel)
	return overlay, panel
}

// popup is a dimmed modal with a title, an optional image and text.
type popup struct {
	overlay *widget.Container
	title   *widget.Text
	body    *widget.Text
	graphic *widget.Graphic
	maxW    float64
	maxH    float64
}

func newPopup(t *Theme, maxW, maxH float64, onClose func()) *popup {
	p := &popup{maxW: maxW, maxH: maxH}
	var panel *widget.Container
	p.overlay, panel = newOverlay(t, 360, 200)

	p.title = newText(t.TitleFace, "", accentColor, maxW)
	p.graphic = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	p.body = newText(t.Face, "", textColor, maxW)

	panel.AddChild(p.title)
	panel.AddChild(p.graphic)
	panel.AddChild(p.body)
	panel.AddChild(newButton(t, "Close", onClose))
	return p
}

// Show fills the popup. An image that fails to load is left out.
func (p *popup) Show(c Content) {
	p.title.Label = c.Title
	p.body.Label = c.Text
	setVisible(p.body, c.Text != "")

	p.graphic.Image = nil
	if c.Image != "" {
		if img, err := render.LoadImage(c.Image); err == nil {
			p.graphic.Image = fitImage(img, p.maxW, p.maxH)
		}
	}
	setVisible(p.graphic, p.graphic.Image != nil)

	setVisible(p.overlay, true)
	p.overlay.RequestRelayout()
}

func (p *popup) Hide() {
	setVisible(p.overlay, false)
}

func (p *popup) Visible() bool {
	return isVisible(p.overlay)
}

// fitImage scales img down to fit maxW x maxH. Smaller images are returned
// unchanged.
func fitImage(img *ebiten.Image, maxW, maxH float64) *ebiten.Image {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return nil
	}
	scale := min(maxW/w, maxH/h, 1)
	if scale == 1 {
		return img
	}
	dst := ebiten.NewImage(max(1, int(w*scale)), max(1, int(h*scale)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return dst
}
