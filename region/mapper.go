package region

// Mapper keeps the last mapped rects for a set of keyed regions. It is
// recomputed when the image finishes loading, the container resizes or the
// active region set changes.
type Mapper[K comparable] struct {
	natural Size
	client  Size
	box     Letterbox
	rects   map[K]Rect
	ready   bool
}

func NewMapper[K comparable]() *Mapper[K] {
	return &Mapper[K]{rects: make(map[K]Rect)}
}

// Recompute maps regions for the given geometry. Degenerate geometry keeps the
// previous output. It reports whether the stored rects changed.
func (m *Mapper[K]) Recompute(natural, client Size, regions map[K]Region) bool {
	if m == nil {
		return false
	}

	box, ok := Fit(natural, client)
	if !ok {
		return false
	}

	next := make(map[K]Rect, len(regions))
	for k, r := range regions {
		if r.Degenerate() {
			continue
		}
		next[k] = box.Map(r)
	}

	changed := !m.ready || box != m.box || !sameRects(m.rects, next)
	m.natural = natural
	m.client = client
	m.box = box
	m.rects = next
	m.ready = true
	return changed
}

// Rect returns the mapped rect for k.
func (m *Mapper[K]) Rect(k K) (Rect, bool) {
	if m == nil || !m.ready {
		return Rect{}, false
	}
	r, ok := m.rects[k]
	return r, ok
}

// Letterbox returns the rendered image area from the last successful recompute.
func (m *Mapper[K]) Letterbox() (Letterbox, bool) {
	if m == nil {
		return Letterbox{}, false
	}
	return m.box, m.ready
}

// Len returns the number of mapped rects.
func (m *Mapper[K]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rects)
}

// Reset clears all output, e.g. when the owning view is torn down.
func (m *Mapper[K]) Reset() {
	if m == nil {
		return
	}
	m.rects = make(map[K]Rect)
	m.box = Letterbox{}
	m.natural = Size{}
	m.client = Size{}
	m.ready = false
}

func sameRects[K comparable](a, b map[K]Rect) bool {
	if len(a) != len(b) {
		return false
	}
	for k, ra := range a {
		rb, ok := b[k]
		if !ok || ra != rb {
			return false
		}
	}
	return true
}
