// Package hotspot turns pointer events on mapped regions into discovery
// commits and popup requests.
package hotspot

import (
	"fmt"
	"strings"
)

// Policy decides when pointer input reveals and commits discovery.
type Policy interface {
	Name() string
	// CommitOnEnter reports whether entering a simple region commits it.
	CommitOnEnter() bool
	// RevealOnHover reports whether hovering shows the overlay rather than a
	// highlight outline.
	RevealOnHover() bool
}

type HoverReveal struct{}

func (HoverReveal) Name() string        { return "hover" }
func (HoverReveal) CommitOnEnter() bool { return true }
func (HoverReveal) RevealOnHover() bool { return true }

type ClickReveal struct{}

func (ClickReveal) Name() string        { return "click" }
func (ClickReveal) CommitOnEnter() bool { return false }
func (ClickReveal) RevealOnHover() bool { return false }

func ParsePolicy(raw string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "hover":
		return HoverReveal{}, nil
	case "click":
		return ClickReveal{}, nil
	default:
		return nil, fmt.Errorf("hotspot: unknown policy %q", raw)
	}
}
