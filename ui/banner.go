package ui

import "github.com/ebitenui/ebitenui/widget"

const (
	bannerTitle = "Congratulations!"
	bannerText  = "You discovered everything on the landing dock. Keep looking around or follow the truck on its journey."
	bannerClose = "Continue Exploring"
)

// newBanner builds the hidden completion banner.
func newBanner(t *Theme, onDismiss func()) *widget.Container {
	overlay, panel := newOverlay(t, 420, 180)
	panel.AddChild(newText(t.TitleFace, bannerTitle, accentColor, 0))
	panel.AddChild(newText(t.Face, bannerText, textColor, 420))
	panel.AddChild(newButton(t, bannerClose, onDismiss))
	return overlay
}
