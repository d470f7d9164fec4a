package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dayout/assets"
)

// LoadImage loads an image from assets and caches it by key. Failures are
// cached too, so a broken reference is only tried once.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	if err := missingErr(key); err != nil {
		return nil, err
	}
	img, err := assets.LoadImage(key)
	if err != nil {
		err = fmt.Errorf("render: load image %s: %w", key, err)
		markMissing(key, err)
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}
