package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	mu      sync.Mutex
	images  = map[string]*ebiten.Image{}
	missing = map[string]error{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	images[key] = img
	delete(missing, key)
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	return images[key]
}

func markMissing(key string, err error) {
	mu.Lock()
	defer mu.Unlock()
	missing[key] = err
}

func missingErr(key string) error {
	mu.Lock()
	defer mu.Unlock()
	return missing[key]
}

// Forget drops cached results so the next load hits disk again. Used by the
// scene hot reload.
func Forget() {
	mu.Lock()
	defer mu.Unlock()
	clear(images)
	clear(missing)
}
