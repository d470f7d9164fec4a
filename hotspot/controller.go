package hotspot

import (
	"github.com/charmbracelet/log"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/scenes"
)

// Controller handles pointer events for the elements of one active scene.
type Controller struct {
	policy  Policy
	store   *discovery.Store
	gate    *discovery.Gate
	logger  *log.Logger
	scene   *scenes.SceneSpec
	byID    map[discovery.ID]*scenes.ElementSpec
	local   []discovery.ID
	global  []discovery.ID
	hovered discovery.ID
	hasHov  bool
}

// NewController binds a policy to a scene. all lists the non-truck ids of
// every scene and is used for global gating.
func NewController(policy Policy, store *discovery.Store, gate *discovery.Gate, scene *scenes.SceneSpec, all []discovery.ID, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{
		policy: policy,
		store:  store,
		gate:   gate,
		logger: logger.With("scene", scene.ID),
		scene:  scene,
		byID:   make(map[discovery.ID]*scenes.ElementSpec, len(scene.Elements)),
		global: all,
	}
	for i := range scene.Elements {
		el := &scene.Elements[i]
		c.byID[el.ID] = el
		if !el.Truck {
			c.local = append(c.local, el.ID)
		}
	}
	return c
}

func (c *Controller) Scene() *scenes.SceneSpec { return c.scene }

func (c *Controller) Policy() Policy { return c.policy }

func (c *Controller) Element(id discovery.ID) (*scenes.ElementSpec, bool) {
	el, ok := c.byID[id]
	return el, ok
}

// Locked reports whether the element is a truck whose gate is still closed.
func (c *Controller) Locked(id discovery.ID) bool {
	el, ok := c.byID[id]
	if !ok {
		return false
	}
	return c.gate.Locked(el.Truck, c.local, c.global)
}

// Hovered returns the element under the pointer, if any.
func (c *Controller) Hovered() (discovery.ID, bool) {
	return c.hovered, c.hasHov
}

func (c *Controller) Enter(id discovery.ID) {
	el, ok := c.byID[id]
	if !ok || c.Locked(id) {
		return
	}
	c.hovered, c.hasHov = id, true

	if c.policy.CommitOnEnter() && !el.Composite() && !el.Truck {
		c.commit(el)
	}
}

func (c *Controller) Leave(id discovery.ID) {
	if !c.hasHov || c.hovered != id {
		return
	}
	c.hovered, c.hasHov = 0, false
}

// Click resolves a click on an element into the popup to open.
func (c *Controller) Click(id discovery.ID) Action {
	el, ok := c.byID[id]
	if !ok {
		return Action{}
	}
	if el.Truck {
		if c.Locked(id) {
			c.logger.Debug("locked element clicked", "element", id)
			return Action{}
		}
		return Action{Kind: ActionOpenJourney, Element: id}
	}
	if el.Composite() {
		return Action{Kind: ActionOpenMiniGame, Element: id}
	}
	// A tap without a preceding hover still discovers under either policy.
	c.commit(el)
	return Action{Kind: ActionOpenPopup, Element: id}
}

// Reset drops transient hover state. Committed discovery is kept.
func (c *Controller) Reset() {
	c.hovered, c.hasHov = 0, false
}

func (c *Controller) commit(el *scenes.ElementSpec) {
	if c.store.MarkDiscovered(el.ID) {
		c.logger.Info("element discovered", "element", el.ID, "name", el.Name, "policy", c.policy.Name())
	}
}

// Progress returns discovered and total non-truck elements of the scene.
func (c *Controller) Progress() (int, int) {
	return c.store.DiscoveredCount(c.local), len(c.local)
}
