package nav

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Slide eases a scene in from the side it was entered from.
type Slide struct {
	spring   harmonica.Spring
	token    uint64
	offset   float64
	velocity float64
}

func NewSlide() *Slide {
	return &Slide{spring: harmonica.NewSpring(harmonica.FPS(60), 6.0, 0.9)}
}

// Start restarts the animation for a new transition. Entering to the right
// slides in from the right edge.
func (s *Slide) Start(tr Transition, distance float64) {
	if tr.Token == s.token {
		return
	}
	s.token = tr.Token
	s.velocity = 0
	switch tr.Direction {
	case DirectionRight:
		s.offset = distance
	case DirectionLeft:
		s.offset = -distance
	default:
		s.offset = 0
	}
}

func (s *Slide) Update() {
	if s.Done() {
		s.offset, s.velocity = 0, 0
		return
	}
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, 0)
}

func (s *Slide) Offset() float64 { return s.offset }

func (s *Slide) Done() bool {
	return math.Abs(s.offset) < 0.5 && math.Abs(s.velocity) < 0.5
}
