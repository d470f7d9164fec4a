package component

// Pointer stores per-frame pointer state.
type Pointer struct {
	X, Y    float64
	Present bool
	Clicked bool
	// Blocked is set while a UI widget or modal owns input.
	Blocked     bool
	CopyPressed bool
}

var PointerComponent = NewComponent[Pointer]()
