package component

// Delay is a frame-based timer. When Frames reaches zero the delay system
// emits Event and destroys the entity, so destroying it early cancels it.
type Delay struct {
	Frames int
	Event  string
}

var DelayComponent = NewComponent[Delay]()
