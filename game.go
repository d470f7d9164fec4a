package main

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/dayout/common"
	"github.com/milk9111/dayout/config"
	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
	"github.com/milk9111/dayout/ecs/entity"
	"github.com/milk9111/dayout/ecs/render"
	"github.com/milk9111/dayout/ecs/system"
	"github.com/milk9111/dayout/hotspot"
	"github.com/milk9111/dayout/journey"
	"github.com/milk9111/dayout/nav"
	"github.com/milk9111/dayout/scenes"
	"github.com/milk9111/dayout/ui"
)

const (
	soundDiscover = "discover"
	soundComplete = "complete"
)

var clearColor = color.NRGBA{R: 0x0b, G: 0x1d, B: 0x29, A: 0xff}

type Game struct {
	cfg    config.Config
	logger *log.Logger
	policy hotspot.Policy

	table   *scenes.Table
	store   *discovery.Store
	gate    *discovery.Gate
	nav     *nav.Navigator
	slide   *nav.Slide
	journey *journey.Machine

	world   *ecs.World
	focus   *system.Focus
	pointer *system.PointerSystem
	debug   *system.DebugRegionSystem

	ui      *ui.UI
	watcher *scenes.Watcher

	width, height int
	celebrated    bool
}

func NewGame(cfg config.Config, table *scenes.Table, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	store := discovery.NewStore()
	logger = logger.With("session", store.Session())

	g := &Game{
		cfg:    cfg,
		logger: logger,
		policy: cfg.InteractionPolicy(),
		table:  table,
		store:  store,
		gate:   discovery.NewGate(store, cfg.Gate()),
		nav:    nav.NewNavigator(table.IDs(), cfg.StartScene, cfg.MobileBreakpoint, logger),
		slide:  nav.NewSlide(),
		world:  ecs.NewWorld(),
		focus:  &system.Focus{},
		width:  common.BaseWidth,
		height: common.BaseHeight,
	}

	g.pointer = system.NewPointerSystem(g.focus, logger)
	g.debug = system.NewDebugRegionSystem(g.focus, g.pointer, system.NewSystemClipboard(), logger)
	g.debug.Enabled = cfg.Dev

	g.world.AddSystem(system.NewInputSystem(g.inputBlocked))
	g.world.AddSystem(system.NewLayoutSystem(g.focus))
	g.world.AddSystem(g.pointer)
	g.world.AddSystem(system.NewProgressSystem(store, cfg.BannerFrames(ebiten.DefaultTPS), logger))
	g.world.AddSystem(system.NewDelaySystem())
	g.world.AddSystem(system.NewAudioSystem())
	g.world.AddSystem(system.NewRenderSystem(g.focus))
	g.world.AddSystem(g.debug)

	if _, err := entity.NewPointer(g.world); err != nil {
		return nil, err
	}
	if _, err := entity.NewAudioBank(g.world, entity.DefaultClips); err != nil {
		// the game is fully usable without sound
		logger.Warn("sound effects disabled", "err", err)
	}

	g.journey = journey.NewMachine(func(scene int) { g.nav.NavigateTo(scene) }, logger)
	g.journey.OnClose(func() {
		if g.ui != nil {
			g.ui.HideJourney()
		}
	})

	g.ui = ui.New(ui.NewTheme(), table, ui.Handlers{
		Navigate:      func(scene int) { g.nav.NavigateTo(scene) },
		Left:          func() { g.nav.Left() },
		Right:         func() { g.nav.Right() },
		CloseInfo:     g.closeInfo,
		CloseSpecies:  g.closeSpecies,
		CloseMiniGame: g.closeMiniGame,
		JourneyOption: g.selectJourney,
		CloseJourney:  g.closeJourney,
		DismissBanner: g.dismissBanner,
	})

	store.Subscribe(func(id discovery.ID) {
		logger.Info("element discovered", "element", id, "found", store.Len())
		system.PlaySound(g.world, soundDiscover)
	})
	g.nav.OnChange(func(from, to int, tr nav.Transition) {
		g.loadScene(tr)
	})

	if cfg.Watch {
		w, err := scenes.NewWatcher(scenes.Dir)
		if err != nil {
			logger.Warn("scene hot reload disabled", "dir", scenes.Dir, "err", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.buildScene(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) inputBlocked() bool {
	return g.ui.Blocking() || g.journey.IsOpen()
}

// loadScene tears down the current scene and builds the navigator's current
// one, replaying the entrance slide for tr.
func (g *Game) loadScene(tr nav.Transition) {
	g.closeInfo()
	g.closeSpecies()
	g.closeMiniGame()
	g.cancelDelays()
	if err := g.buildScene(); err != nil {
		g.logger.Error("load scene", "scene", g.nav.Current(), "err", err)
		return
	}
	g.slide.Start(tr, float64(g.width))
}

func (g *Game) buildScene() error {
	if g.focus.Scene != nil {
		g.focus.Scene.Reset()
	}
	entity.UnloadScene(g.world)

	spec, err := g.table.Scene(g.nav.Current())
	if err != nil {
		return err
	}
	g.focus.Scene = hotspot.NewController(g.policy, g.store, g.gate, spec, g.table.AllNonTruckIDs(), g.logger)
	if _, err := entity.LoadSceneToWorld(g.world, spec, g.table, ui.SceneContainer(g.width, g.height)); err != nil {
		return err
	}
	if g.celebrated {
		setCelebrated(g.world, true)
	}
	return nil
}

// cancelDelays drops pending timers. A banner that had not fired yet is
// re-armed by the progress system on the next update.
func (g *Game) cancelDelays() {
	if system.CancelDelays(g.world) > 0 && !g.celebrated {
		setCelebrated(g.world, false)
	}
}

func setCelebrated(w *ecs.World, v bool) {
	ecs.ForEach(w, component.ProgressCounterComponent.Kind(), func(_ ecs.Entity, c *component.ProgressCounter) {
		if c.Scope == component.ProgressGlobal {
			c.Celebrated = v
		}
	})
}

func (g *Game) handleAction(act hotspot.Action) {
	g.logger.Debug("hotspot action", "action", act.Kind, "element", act.Element, "sub", act.Sub)
	switch act.Kind {
	case hotspot.ActionOpenPopup:
		el, ok := g.table.Element(act.Element)
		if !ok {
			return
		}
		g.ui.ShowInfo(ui.InfoContent(el, g.focus.Mobile))
	case hotspot.ActionOpenMiniGame:
		el, ok := g.table.Element(act.Element)
		if !ok {
			return
		}
		g.openMiniGame(el)
	case hotspot.ActionOpenSubPopup:
		if g.focus.MiniGame == nil {
			return
		}
		sub, ok := g.focus.MiniGame.Sub(act.Sub)
		if !ok {
			return
		}
		g.ui.ShowSpecies(ui.SpeciesContent(sub, g.focus.Mobile))
	case hotspot.ActionOpenJourney:
		g.journey.Open()
		g.showJourney()
	}
}

func (g *Game) openMiniGame(el *scenes.ElementSpec) {
	g.closeMiniGame()
	g.focus.MiniGame = hotspot.NewMiniGame(g.policy, g.store, el, g.logger)
	if _, err := entity.LoadMiniGameToWorld(g.world, el, ui.PopupContainer(g.width, g.height)); err != nil {
		g.logger.Error("open mini-game", "element", el.ID, "err", err)
		g.closeMiniGame()
		return
	}
	g.logger.Info("mini-game opened", "element", el.ID)
}

func (g *Game) closeMiniGame() {
	if g.focus.MiniGame == nil {
		return
	}
	g.focus.MiniGame.Reset()
	g.focus.MiniGame = nil
	entity.UnloadMiniGame(g.world)
	g.ui.HideSpecies()
	g.cancelDelays()
}

func (g *Game) closeInfo() {
	if g.ui.InfoVisible() {
		g.cancelDelays()
	}
	g.ui.HideInfo()
}

func (g *Game) closeSpecies() {
	g.ui.HideSpecies()
}

func (g *Game) showJourney() {
	node, err := g.journey.Node()
	if err != nil {
		g.ui.HideJourney()
		return
	}
	g.ui.ShowJourney(node, g.journey.Options())
}

func (g *Game) selectJourney(o journey.Option) {
	if err := g.journey.Select(o); err != nil {
		g.logger.Warn("journey option rejected", "label", o.Label, "err", err)
		return
	}
	if g.journey.IsOpen() {
		g.showJourney()
	}
}

func (g *Game) closeJourney() {
	_ = g.journey.Close()
}

func (g *Game) dismissBanner() {
	g.ui.HideBanner()
}

// closeTop closes the topmost dialog.
func (g *Game) closeTop() {
	switch {
	case g.ui.BannerVisible():
		g.dismissBanner()
	case g.journey.IsOpen():
		g.closeJourney()
	case g.ui.SpeciesVisible():
		g.closeSpecies()
	case g.ui.InfoVisible():
		g.closeInfo()
	case g.focus.MiniGame != nil:
		g.closeMiniGame()
	}
}

func (g *Game) reload() {
	names, err := g.watcher.Drain()
	if err != nil {
		g.logger.Warn("scene watcher", "err", err)
	}
	if len(names) == 0 {
		return
	}
	table, err := scenes.LoadTable()
	if err != nil {
		g.logger.Error("reload scenes", "files", names, "err", err)
		return
	}
	render.Forget()
	g.table = table
	g.logger.Info("scenes reloaded", "files", names)
	g.loadScene(nav.Transition{})
}

func (g *Game) resize(w, h int) {
	if w == g.width && h == g.height {
		return
	}
	g.width, g.height = w, h
	if g.nav.Resize(w, h) {
		g.focus.Mobile = g.nav.Viewport().IsMobile()
		g.logger.Debug("viewport changed", "width", w, "mobile", g.focus.Mobile)
	}
	entity.SetContainer(g.world, component.SurfaceScene, ui.SceneContainer(w, h))
	entity.SetContainer(g.world, component.SurfacePopup, ui.PopupContainer(w, h))
}

func (g *Game) syncUI() {
	spec, err := g.table.Scene(g.nav.Current())
	if err != nil {
		return
	}
	left, right := ui.Arrows(g.nav, spec)
	g.ui.SetScene(spec, left, right)

	global, _ := system.Counter(g.world, component.ProgressGlobal)
	local, _ := system.Counter(g.world, component.ProgressScene)
	g.ui.SetProgress(global.Text, local.Text)

	species, _ := system.Counter(g.world, component.ProgressSpecies)
	g.ui.SetMiniGame(g.focus.MiniGame != nil, species.Text)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closeTop()
	}
	if g.cfg.Dev && inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.Enabled = !g.debug.Enabled
	}

	g.syncUI()
	g.ui.Update()

	g.slide.Update()
	entity.SetOffset(g.world, component.SurfaceScene, g.slide.Offset())

	g.world.Update()
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case system.EventHotspotAction:
			if act, ok := evt.Data.(hotspot.Action); ok {
				g.handleAction(act)
			}
		case system.EventBanner:
			g.celebrated = true
			g.logger.Info("everything discovered")
			system.PlaySound(g.world, soundComplete)
			g.ui.ShowBanner()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	g.world.Draw(screen)
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close releases the scene watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
