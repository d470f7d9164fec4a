package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dayout/discovery"
	"github.com/milk9111/dayout/region"
)

// Hotspot is an interactive region. Sub is zero for scene elements and the
// sub-element id for mini-game regions.
type Hotspot struct {
	Surface         SurfaceKind
	Element         discovery.ID
	Sub             int
	Name            string
	Truck           bool
	Region          region.Region
	MobileRegion    *region.Region
	Placement       region.Region
	MobilePlacement *region.Region
}

var HotspotComponent = NewComponent[Hotspot]()

// Bounds holds the mapped pixel rects of a hotspot.
type Bounds struct {
	Rect    region.Rect
	Overlay region.Rect
	Mapped  bool
}

var BoundsComponent = NewComponent[Bounds]()

// Overlay is what a revealed hotspot shows. Color is used when Image is
// missing.
type Overlay struct {
	Image *ebiten.Image
	Color color.NRGBA
}

var OverlayComponent = NewComponent[Overlay]()
