package ui

import (
	"github.com/milk9111/dayout/journey"
	"github.com/milk9111/dayout/nav"
	"github.com/milk9111/dayout/scenes"
)

// Content is what a popup shows. Image is an asset path and may be empty.
type Content struct {
	Title string
	Text  string
	Image string
}

// InfoContent is the popup of a simple element.
func InfoContent(el *scenes.ElementSpec, mobile bool) Content {
	if el == nil {
		return Content{}
	}
	return Content{Title: el.Name, Text: el.Info, Image: el.Popup.Pick(mobile)}
}

// SpeciesContent is the popup of a mini-game sub-element.
func SpeciesContent(sub *scenes.SubElementSpec, mobile bool) Content {
	if sub == nil {
		return Content{}
	}
	return Content{Title: sub.Name, Image: sub.Popup.Pick(mobile)}
}

// JourneyContent is the body of the journey dialog for a node.
func JourneyContent(n journey.Node) Content {
	return Content{Title: n.Title, Text: n.Text, Image: n.Image}
}

// Arrow is the state of one navigation arrow.
type Arrow struct {
	Visible bool
	Caption string
}

// Arrows derives the arrow state of the current scene.
func Arrows(n *nav.Navigator, scene *scenes.SceneSpec) (left, right Arrow) {
	if n == nil {
		return Arrow{}, Arrow{}
	}
	left.Visible = n.HasLeft()
	right.Visible = n.HasRight()
	// one arrow per destination; left yields when both reach the same scene
	if l, ok := n.Peek(nav.DirectionLeft); ok {
		if r, ok := n.Peek(nav.DirectionRight); ok && l == r {
			left.Visible = false
		}
	}
	if scene != nil {
		left.Caption = scene.Captions.Left
		right.Caption = scene.Captions.Right
	}
	return left, right
}

// NavButton is one entry of the bottom navigation bar.
type NavButton struct {
	Scene  int
	Label  string
	Active bool
}

// NavButtons lists the scenes in table order and marks the current one.
func NavButtons(table *scenes.Table, current int) []NavButton {
	if table == nil {
		return nil
	}
	out := make([]NavButton, 0, len(table.Scenes))
	for _, s := range table.Scenes {
		label := s.NavLabel
		if label == "" {
			label = s.Title
		}
		out = append(out, NavButton{Scene: s.ID, Label: label, Active: s.ID == current})
	}
	return out
}
