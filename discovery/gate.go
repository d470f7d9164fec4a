package discovery

import (
	"fmt"
	"strings"
)

// GateScope selects which elements must be discovered before a truck element
// unlocks.
type GateScope string

const (
	// GateScene requires every non-truck element of the active scene.
	GateScene GateScope = "scene"
	// GateGlobal requires every non-truck element of every scene.
	GateGlobal GateScope = "global"
)

func ParseGateScope(raw string) (GateScope, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(GateGlobal), "all":
		return GateGlobal, nil
	case string(GateScene):
		return GateScene, nil
	default:
		return "", fmt.Errorf("discovery: unknown gate scope %q", raw)
	}
}

// Gate decides whether truck elements are interaction-locked.
type Gate struct {
	Scope GateScope
	store *Store
}

func NewGate(store *Store, scope GateScope) *Gate {
	if scope == "" {
		scope = GateGlobal
	}
	return &Gate{Scope: scope, store: store}
}

// Requirement returns the ids that must be discovered under the gate's scope.
func (g *Gate) Requirement(scene, all []ID) []ID {
	if g == nil {
		return nil
	}
	if g.Scope == GateScene {
		return scene
	}
	return all
}

// Unlocked reports whether the truck gate is open. sceneIDs and allIDs must
// already exclude truck elements.
func (g *Gate) Unlocked(sceneIDs, allIDs []ID) bool {
	if g == nil || g.store == nil {
		return false
	}
	return g.store.AllDiscovered(g.Requirement(sceneIDs, allIDs))
}

// Locked reports whether an element is interaction-locked. Only truck elements
// are ever locked.
func (g *Gate) Locked(isTruck bool, sceneIDs, allIDs []ID) bool {
	if !isTruck {
		return false
	}
	return !g.Unlocked(sceneIDs, allIDs)
}
