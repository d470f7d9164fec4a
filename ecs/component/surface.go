package component

import (
	"image/color"

	"github.com/milk9111/dayout/region"
)

type SurfaceKind int

const (
	SurfaceScene SurfaceKind = iota
	SurfacePopup
)

func (k SurfaceKind) String() string {
	if k == SurfacePopup {
		return "popup"
	}
	return "scene"
}

// Surface is a background image that hotspots are positioned against.
// Container is the screen box it is fit into; Letterbox is written by the
// layout system.
type Surface struct {
	Kind      SurfaceKind
	Title     string
	Natural   region.Size
	Container region.Rect
	Letterbox region.Letterbox
	Ready     bool
	Fill      color.NRGBA
}

var SurfaceComponent = NewComponent[Surface]()

// Backdrop dims everything under a popup surface.
type Backdrop struct {
	Alpha float64
}

var BackdropComponent = NewComponent[Backdrop]()

// Member tags every entity built for a surface so the surface can be torn
// down as a unit.
type Member struct {
	Surface SurfaceKind
}

var MemberComponent = NewComponent[Member]()
