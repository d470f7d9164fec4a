package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite is an image drawn stretched into its owner's mapped rect. Path is
// kept so a missing image can be reported once and retried on reload.
type Sprite struct {
	Image   *ebiten.Image
	Path    string
	Missing bool
}

var SpriteComponent = NewComponent[Sprite]()
