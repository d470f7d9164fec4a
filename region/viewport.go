package region

// MobileBreakpoint is the viewport width below which mobile region overrides
// apply.
const MobileBreakpoint = 768

// Viewport is the reactive viewport classification. It is owned by the
// navigator and passed down to the mapper and controllers.
type Viewport struct {
	Width, Height int
	Breakpoint    int
}

func NewViewport(breakpoint int) Viewport {
	if breakpoint <= 0 {
		breakpoint = MobileBreakpoint
	}
	return Viewport{Breakpoint: breakpoint}
}

func (v Viewport) IsMobile() bool {
	bp := v.Breakpoint
	if bp <= 0 {
		bp = MobileBreakpoint
	}
	return v.Width > 0 && v.Width < bp
}

// Resize returns the viewport for the new size and whether the mobile
// classification flipped.
func (v Viewport) Resize(w, h int) (Viewport, bool) {
	was := v.IsMobile()
	v.Width = w
	v.Height = h
	return v, was != v.IsMobile()
}
