package hotspot

import "github.com/milk9111/dayout/discovery"

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionOpenPopup
	ActionOpenMiniGame
	ActionOpenJourney
	ActionOpenSubPopup
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpenPopup:
		return "popup"
	case ActionOpenMiniGame:
		return "minigame"
	case ActionOpenJourney:
		return "journey"
	case ActionOpenSubPopup:
		return "sub_popup"
	default:
		return "none"
	}
}

// Action is what the presentation layer should open after a click.
type Action struct {
	Kind    ActionKind
	Element discovery.ID
	Sub     int
}
