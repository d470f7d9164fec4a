package hotspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/region"
)

func newMiniGame(t *testing.T, p Policy) (*MiniGame, *discovery.Store) {
	t.Helper()
	store := discovery.NewStore()
	scene := testScene()
	return NewMiniGame(p, store, &scene.Elements[2], nil), store
}

func TestMiniGameHoverCommitsAfterAllSubs(t *testing.T) {
	m, store := newMiniGame(t, HoverReveal{})

	m.Enter(1)
	m.Leave(1)
	m.Enter(2)
	m.Enter(2)
	assert.False(t, store.IsDiscovered(3), "N-1 sub-elements never commit the parent")
	found, total := m.Progress()
	assert.Equal(t, 2, found)
	assert.Equal(t, 3, total)

	m.Enter(3)
	assert.True(t, store.IsDiscovered(3))
	assert.True(t, m.Complete())
}

func TestMiniGameClickRevealCommitsOnClick(t *testing.T) {
	m, store := newMiniGame(t, ClickReveal{})

	for sub := 1; sub <= 3; sub++ {
		m.Enter(sub)
	}
	found, _ := m.Progress()
	assert.Zero(t, found)

	act := m.Click(1)
	assert.Equal(t, Action{Kind: ActionOpenSubPopup, Element: 3, Sub: 1}, act)
	m.Click(2)
	m.Click(2)
	assert.False(t, store.IsDiscovered(3))

	m.Click(3)
	assert.True(t, store.IsDiscovered(3))
}

func TestMiniGameProgressSurvivesReopen(t *testing.T) {
	store := discovery.NewStore()
	scene := testScene()

	first := NewMiniGame(ClickReveal{}, store, &scene.Elements[2], nil)
	first.Click(1)
	first.Reset()

	second := NewMiniGame(ClickReveal{}, store, &scene.Elements[2], nil)
	found, _ := second.Progress()
	assert.Equal(t, 1, found)
	assert.True(t, second.Discovered(1))
}

func TestMiniGameView(t *testing.T) {
	m, _ := newMiniGame(t, ClickReveal{})
	r := region.Rect{X: 1, Y: 2, W: 3, H: 4}

	m.Enter(2)
	v := m.View(2, r, r)
	assert.Equal(t, "Shark", v.Name)
	assert.True(t, v.Hovered)
	assert.False(t, v.ShowOverlay)
	assert.Equal(t, r, v.Rect)

	m.Click(2)
	v = m.View(2, r, r)
	require.True(t, v.Discovered)
	assert.True(t, v.ShowOverlay)
	assert.Equal(t, OpacityDefault, v.Opacity)
}

func TestMiniGameUnknownSub(t *testing.T) {
	m, store := newMiniGame(t, HoverReveal{})
	m.Enter(42)
	assert.Equal(t, ActionNone, m.Click(42).Kind)
	assert.Zero(t, store.SubDiscoveredCount(3))
}
