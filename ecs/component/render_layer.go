package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

const (
	LayerScene     = 0
	LayerSceneSpot = 1
	LayerPopup     = 10
	LayerPopupSpot = 11
)
