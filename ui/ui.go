package ui

import (
	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dayout/common"
	"github.com/milk9111/dayout/journey"
	"github.com/milk9111/dayout/region"
	"github.com/milk9111/dayout/scenes"
)

const (
	// HeaderHeight and NavHeight are reserved above and below the scene.
	HeaderHeight = 56
	NavHeight    = 64
)

// Handlers are called from widget clicks during Update.
type Handlers struct {
	Navigate      func(scene int)
	Left          func()
	Right         func()
	CloseInfo     func()
	CloseSpecies  func()
	CloseMiniGame func()
	JourneyOption func(journey.Option)
	CloseJourney  func()
	DismissBanner func()
}

type arrow struct {
	box     *widget.Container
	caption *widget.Text
}

// UI is the page chrome around the scene: header, navigation, popups,
// the journey dialog and the completion banner.
type UI struct {
	ui    *ebitenui.UI
	theme *Theme

	title  *widget.Text
	global *widget.Text
	local  *widget.Text

	navButtons map[int]*widget.Button
	left       arrow
	right      arrow

	miniBar  *widget.Container
	miniText *widget.Text

	info    *popup
	species *popup
	journey *journeyDialog
	banner  *widget.Container
}

func New(t *Theme, table *scenes.Table, h Handlers) *UI {
	if t == nil {
		t = NewTheme()
	}
	u := &UI{theme: t, navButtons: make(map[int]*widget.Button)}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	root.AddChild(u.newHeader(t))
	root.AddChild(u.newNavBar(t, table, h.Navigate))
	u.left = newArrow(t, "<", widget.AnchorLayoutPositionStart, h.Left)
	u.right = newArrow(t, ">", widget.AnchorLayoutPositionEnd, h.Right)
	root.AddChild(u.left.box)
	root.AddChild(u.right.box)
	root.AddChild(u.newMiniGameBar(t, h.CloseMiniGame))

	u.info = newPopup(t, 640, 360, h.CloseInfo)
	u.species = newPopup(t, 640, 360, h.CloseSpecies)
	u.journey = newJourneyDialog(t, h.JourneyOption, h.CloseJourney)
	u.banner = newBanner(t, h.DismissBanner)
	root.AddChild(u.info.overlay)
	root.AddChild(u.species.overlay)
	root.AddChild(u.journey.overlay)
	root.AddChild(u.banner)

	u.ui = &ebitenui.UI{Container: root}
	return u
}

func (u *UI) newHeader(t *Theme) *widget.Container {
	header := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Bar),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(32),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(1, HeaderHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	u.title = newText(t.TitleFace, "", textColor, 0)
	u.global = newText(t.Face, "", accentColor, 0)
	u.local = newText(t.Face, "", mutedColor, 0)
	header.AddChild(u.title)
	header.AddChild(u.global)
	header.AddChild(u.local)
	return header
}

func (u *UI) newNavBar(t *Theme, table *scenes.Table, navigate func(int)) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Bar),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(1, NavHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	for _, b := range NavButtons(table, 0) {
		scene := b.Scene
		btn := newButton(t, b.Label, func() {
			if navigate != nil {
				navigate(scene)
			}
		})
		u.navButtons[scene] = btn
		bar.AddChild(btn)
	}
	return bar
}

func newArrow(t *Theme, label string, side widget.AnchorLayoutPosition, onClick func()) arrow {
	box := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: side,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	btn := widget.NewButton(
		widget.ButtonOpts.Image(t.Button),
		widget.ButtonOpts.Text(label, t.TitleFace, t.ButtonText),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(48, 48),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
	caption := newText(t.SmallFace, "", textColor, 180)
	box.AddChild(btn)
	box.AddChild(caption)
	return arrow{box: box, caption: caption}
}

func (u *UI) newMiniGameBar(t *Theme, onClose func()) *widget.Container {
	u.miniBar = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(t.Panel),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	u.miniText = newText(t.Face, "", accentColor, 0)
	u.miniBar.AddChild(u.miniText)
	u.miniBar.AddChild(newButton(t, "Close", onClose))
	setVisible(u.miniBar, false)
	return u.miniBar
}

// SceneContainer is the screen box left for the scene between the header
// and the navigation bar.
func SceneContainer(width, height int) region.Rect {
	h := common.Clamp(float64(height-HeaderHeight-NavHeight), 0, float64(height))
	return region.Rect{X: 0, Y: HeaderHeight, W: float64(width), H: h}
}

// PopupContainer is the screen box of a mini-game surface.
func PopupContainer(width, height int) region.Rect {
	const margin = 0.08
	w, h := float64(width), float64(height)
	return region.Rect{X: w * margin, Y: h*margin + HeaderHeight/2, W: w * (1 - 2*margin), H: h*(1-2*margin) - HeaderHeight/2}
}

// SetScene updates the header title, the active nav button and the arrows.
func (u *UI) SetScene(scene *scenes.SceneSpec, left, right Arrow) {
	if scene != nil {
		u.title.Label = scene.Title
		for id, btn := range u.navButtons {
			btn.GetWidget().Disabled = id == scene.ID
		}
	}
	setArrow(u.left, left)
	setArrow(u.right, right)
}

func setArrow(a arrow, s Arrow) {
	setVisible(a.box, s.Visible)
	a.caption.Label = s.Caption
	setVisible(a.caption, s.Caption != "")
}

// SetProgress updates the header counters.
func (u *UI) SetProgress(global, scene string) {
	u.global.Label = global
	u.local.Label = scene
}

// SetMiniGame shows or hides the mini-game bar.
func (u *UI) SetMiniGame(open bool, progress string) {
	setVisible(u.miniBar, open)
	u.miniText.Label = progress
	// arrows would navigate away under the popup
	if open {
		setVisible(u.left.box, false)
		setVisible(u.right.box, false)
	}
}

func (u *UI) ShowInfo(c Content)    { u.info.Show(c) }
func (u *UI) HideInfo()             { u.info.Hide() }
func (u *UI) ShowSpecies(c Content) { u.species.Show(c) }
func (u *UI) HideSpecies()          { u.species.Hide() }

func (u *UI) ShowJourney(node journey.Node, opts []journey.Option) {
	u.journey.Show(node, opts)
}

func (u *UI) HideJourney() { u.journey.Hide() }

func (u *UI) ShowBanner() { setVisible(u.banner, true) }
func (u *UI) HideBanner() { setVisible(u.banner, false) }

// Modal reports whether a dialog owns input.
func (u *UI) Modal() bool {
	return u.info.Visible() || u.species.Visible() || u.journey.Visible() || isVisible(u.banner)
}

// Blocking reports whether the pointer belongs to the UI this frame.
func (u *UI) Blocking() bool {
	return u.Modal() || ebuiinput.UIHovered
}

func (u *UI) Update() {
	u.ui.Update()
}

func (u *UI) Draw(screen *ebiten.Image) {
	u.ui.Draw(screen)
}

func (u *UI) InfoVisible() bool    { return u.info.Visible() }
func (u *UI) SpeciesVisible() bool { return u.species.Visible() }
func (u *UI) BannerVisible() bool  { return isVisible(u.banner) }
