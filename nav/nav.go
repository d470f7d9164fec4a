// Package nav owns the active scene, arrow adjacency and the viewport
// classification handed down to the rest of the game.
package nav

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/milk9111/dayout/region"
)

type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Transition identifies one scene entrance. Token changes on every switch so
// views can restart their entrance animation.
type Transition struct {
	Token     uint64
	Direction Direction
}

type Listener func(from, to int, tr Transition)

// Navigator is the scene orchestrator.
type Navigator struct {
	order     []int
	current   int
	token     uint64
	last      Transition
	left      map[int]int
	right     map[int]int
	viewport  region.Viewport
	listeners []Listener
	logger    *log.Logger
}

// NewNavigator builds the orchestrator over ordered scene ids. The first
// scene's left arrow wraps to the last scene; every other scene's arrows
// point back toward the first.
func NewNavigator(order []int, start int, breakpoint int, logger *log.Logger) *Navigator {
	if logger == nil {
		logger = log.Default()
	}
	n := &Navigator{
		order:    slices.Clone(order),
		left:     make(map[int]int),
		right:    make(map[int]int),
		viewport: region.NewViewport(breakpoint),
		logger:   logger,
	}
	if len(n.order) > 0 {
		hub := n.order[0]
		if len(n.order) > 1 {
			n.right[hub] = n.order[1]
			n.left[n.order[1]] = hub
		}
		if len(n.order) > 2 {
			last := n.order[len(n.order)-1]
			n.left[hub] = last
			n.right[last] = hub
			n.left[last] = hub
		}
		n.current = hub
	}
	if n.index(start) >= 0 {
		n.current = start
	}
	return n
}

func (n *Navigator) Current() int { return n.current }

func (n *Navigator) Last() Transition { return n.last }

func (n *Navigator) Scenes() []int { return slices.Clone(n.order) }

func (n *Navigator) OnChange(fn Listener) {
	n.listeners = append(n.listeners, fn)
}

// NavigateTo switches scenes. Same or unknown ids are ignored.
func (n *Navigator) NavigateTo(id int) bool {
	if id == n.current || n.index(id) < 0 {
		return false
	}
	from := n.current
	n.token++
	n.last = Transition{Token: n.token, Direction: n.direction(from, id)}
	n.current = id
	n.logger.Info("scene changed", "from", from, "to", id, "direction", n.last.Direction)
	for _, fn := range n.listeners {
		fn(from, id, n.last)
	}
	return true
}

func (n *Navigator) Left() bool {
	to, ok := n.left[n.current]
	if !ok {
		return false
	}
	return n.NavigateTo(to)
}

func (n *Navigator) Right() bool {
	to, ok := n.right[n.current]
	if !ok {
		return false
	}
	return n.NavigateTo(to)
}

func (n *Navigator) HasLeft() bool {
	_, ok := n.left[n.current]
	return ok
}

func (n *Navigator) HasRight() bool {
	_, ok := n.right[n.current]
	return ok
}

// Peek returns the scene the arrow in direction d leads to.
func (n *Navigator) Peek(d Direction) (int, bool) {
	var (
		to int
		ok bool
	)
	switch d {
	case DirectionLeft:
		to, ok = n.left[n.current]
	case DirectionRight:
		to, ok = n.right[n.current]
	}
	return to, ok
}

// Viewport returns the current viewport classification.
func (n *Navigator) Viewport() region.Viewport { return n.viewport }

// Resize updates the viewport and reports whether the mobile
// classification flipped.
func (n *Navigator) Resize(w, h int) bool {
	v, flipped := n.viewport.Resize(w, h)
	n.viewport = v
	if flipped {
		n.logger.Debug("viewport class changed", "mobile", v.IsMobile(), "width", w)
	}
	return flipped
}

// direction compares positions with wrap-around: moving from the last scene
// to the first is a step right.
func (n *Navigator) direction(from, to int) Direction {
	fi, ti := n.index(from), n.index(to)
	if fi < 0 || ti < 0 || fi == ti {
		return DirectionNone
	}
	count := len(n.order)
	forward := (ti - fi + count) % count
	backward := (fi - ti + count) % count
	if forward <= backward {
		return DirectionRight
	}
	return DirectionLeft
}

func (n *Navigator) index(id int) int {
	return slices.Index(n.order, id)
}
