package hotspot

import (
	"github.com/charmbracelet/log"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/scenes"
)

// MiniGame drives the sub-element hotspots of a composite element. Sub
// progress lives in the store, so it survives closing the popup.
type MiniGame struct {
	policy  Policy
	store   *discovery.Store
	logger  *log.Logger
	parent  *scenes.ElementSpec
	bySub   map[int]*scenes.SubElementSpec
	hovered int
	hasHov  bool
}

func NewMiniGame(policy Policy, store *discovery.Store, parent *scenes.ElementSpec, logger *log.Logger) *MiniGame {
	if logger == nil {
		logger = log.Default()
	}
	m := &MiniGame{
		policy: policy,
		store:  store,
		logger: logger.With("element", parent.ID),
		parent: parent,
		bySub:  make(map[int]*scenes.SubElementSpec, len(parent.SubElements)),
	}
	for i := range parent.SubElements {
		sub := &parent.SubElements[i]
		m.bySub[sub.ID] = sub
	}
	return m
}

func (m *MiniGame) Parent() *scenes.ElementSpec { return m.parent }

func (m *MiniGame) Sub(id int) (*scenes.SubElementSpec, bool) {
	s, ok := m.bySub[id]
	return s, ok
}

func (m *MiniGame) Hovered() (int, bool) {
	return m.hovered, m.hasHov
}

func (m *MiniGame) Enter(sub int) {
	if _, ok := m.bySub[sub]; !ok {
		return
	}
	m.hovered, m.hasHov = sub, true
	if m.policy.CommitOnEnter() {
		m.activate(sub)
	}
}

func (m *MiniGame) Leave(sub int) {
	if m.hasHov && m.hovered == sub {
		m.hovered, m.hasHov = 0, false
	}
}

// Click activates the sub-element and asks for its species popup.
func (m *MiniGame) Click(sub int) Action {
	if _, ok := m.bySub[sub]; !ok {
		return Action{}
	}
	m.activate(sub)
	return Action{Kind: ActionOpenSubPopup, Element: m.parent.ID, Sub: sub}
}

func (m *MiniGame) Reset() {
	m.hovered, m.hasHov = 0, false
}

// Progress returns activated and total sub-elements.
func (m *MiniGame) Progress() (int, int) {
	return m.store.SubDiscoveredCount(m.parent.ID), len(m.parent.SubElements)
}

func (m *MiniGame) Complete() bool {
	found, total := m.Progress()
	return total > 0 && found == total
}

func (m *MiniGame) Discovered(sub int) bool {
	return m.store.IsSubDiscovered(m.parent.ID, sub)
}

func (m *MiniGame) activate(sub int) {
	count, added := m.store.MarkSubDiscovered(m.parent.ID, sub)
	if !added {
		return
	}
	m.logger.Info("species found", "sub", sub, "found", count, "total", len(m.parent.SubElements))
	if count == len(m.parent.SubElements) && m.store.MarkDiscovered(m.parent.ID) {
		m.logger.Info("element discovered", "name", m.parent.Name, "policy", m.policy.Name())
	}
}
