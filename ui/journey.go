package ui

import (
	"github.com/ebitenui/ebitenui/widget"

	"github.com/milk9111/dayout/ecs/render"
	"github.com/milk9111/dayout/journey"
)

// journeyDialog renders the current journey node and one button per option.
type journeyDialog struct {
	theme    *Theme
	overlay  *widget.Container
	title    *widget.Text
	graphic  *widget.Graphic
	body     *widget.Text
	options  *widget.Container
	onSelect func(journey.Option)
}

func newJourneyDialog(t *Theme, onSelect func(journey.Option), onClose func()) *journeyDialog {
	d := &journeyDialog{theme: t, onSelect: onSelect}
	var panel *widget.Container
	d.overlay, panel = newOverlay(t, 560, 420)

	d.title = newText(t.TitleFace, "", accentColor, 560)
	d.graphic = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	d.body = newText(t.Face, "", textColor, 560)
	d.options = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel.AddChild(newText(t.SmallFace, journey.DialogTitle, mutedColor, 0))
	panel.AddChild(d.title)
	panel.AddChild(d.graphic)
	panel.AddChild(d.body)
	panel.AddChild(d.options)
	panel.AddChild(newButton(t, "Close", onClose))
	return d
}

// Show renders node with its options in order.
func (d *journeyDialog) Show(node journey.Node, opts []journey.Option) {
	c := JourneyContent(node)
	d.title.Label = c.Title
	d.body.Label = c.Text

	d.graphic.Image = nil
	if img, err := render.LoadImage(c.Image); err == nil {
		d.graphic.Image = fitImage(img, 520, 260)
	}
	setVisible(d.graphic, d.graphic.Image != nil)

	d.options.RemoveChildren()
	for _, o := range opts {
		d.options.AddChild(newButton(d.theme, o.Label, func() {
			if d.onSelect != nil {
				d.onSelect(o)
			}
		}))
	}

	setVisible(d.overlay, true)
	d.overlay.RequestRelayout()
}

func (d *journeyDialog) Hide() {
	setVisible(d.overlay, false)
}

func (d *journeyDialog) Visible() bool {
	return isVisible(d.overlay)
}
