// Package region maps percentage-based hotspot regions onto a background image
// that is drawn with contain-fit (letterboxed) inside its container.
package region

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrInvalidRegion = errors.New("region: percentages must be within [0,100]")

// Region is a rectangle in percent of the background's natural size.
type Region struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Degenerate regions are never interactable.
func (r Region) Degenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Region) Validate() error {
	for _, v := range [...]float64{r.Top, r.Left, r.Width, r.Height} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %+v", ErrInvalidRegion, r)
		}
	}
	return nil
}

// Select returns the mobile override when the viewport is mobile and one
// exists, otherwise the default region.
func Select(def Region, mobile *Region, isMobile bool) Region {
	if isMobile && mobile != nil {
		return *mobile
	}
	return def
}

// Size is a pixel width/height pair.
type Size struct {
	W, H float64
}

func (s Size) valid() bool {
	return s.W > 0 && s.H > 0
}

// Rect is a pixel rectangle positioned inside the container.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// BB converts the rect to a chipmunk bounding box. Screen y grows downward, so
// B holds the top edge and T the bottom edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

// Contains reports whether the pixel point lies inside the rect.
func (r Rect) Contains(x, y float64) bool {
	if r.Empty() {
		return false
	}
	return r.BB().ContainsVect(cp.Vector{X: x, Y: y})
}

// Offset returns the rect translated by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Letterbox is the rendered image area inside a container.
type Letterbox struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// Fit computes the contain-fit placement of an image with natural size inside
// a container with client size. It reports false when either size is
// degenerate (image not loaded yet, collapsed container).
func Fit(natural, client Size) (Letterbox, bool) {
	if !natural.valid() || !client.valid() {
		return Letterbox{}, false
	}

	imageAspect := natural.W / natural.H
	containerAspect := client.W / client.H

	if imageAspect > containerAspect {
		h := client.W / imageAspect
		return Letterbox{
			Width:   client.W,
			Height:  h,
			OffsetY: (client.H - h) / 2,
		}, true
	}

	w := client.H * imageAspect
	return Letterbox{
		Width:   w,
		Height:  client.H,
		OffsetX: (client.W - w) / 2,
	}, true
}

// Map converts a percentage region to container pixels.
func (l Letterbox) Map(r Region) Rect {
	return Rect{
		X: r.Left/100*l.Width + l.OffsetX,
		Y: r.Top/100*l.Height + l.OffsetY,
		W: r.Width / 100 * l.Width,
		H: r.Height / 100 * l.Height,
	}
}

// Bounds is the rendered image area as a rect.
func (l Letterbox) Bounds() Rect {
	return Rect{X: l.OffsetX, Y: l.OffsetY, W: l.Width, H: l.Height}
}
