package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dayout/ecs"
	"github.com/milk9111/dayout/ecs/component"
)

// InputSystem copies mouse and touch state into the Pointer component.
type InputSystem struct {
	// Blocked reports whether the UI owns the pointer this frame.
	Blocked func() bool
	CopyKey ebiten.Key
}

func NewInputSystem(blocked func() bool) *InputSystem {
	return &InputSystem{Blocked: blocked, CopyKey: ebiten.KeyC}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	x, y := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	// A tap acts as hover and click at the touch point.
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		clicked = true
	}

	blocked := i.Blocked != nil && i.Blocked()
	copyPressed := inpututil.IsKeyJustPressed(i.CopyKey)

	ecs.ForEach(w, component.PointerComponent.Kind(), func(_ ecs.Entity, p *component.Pointer) {
		p.X = float64(x)
		p.Y = float64(y)
		p.Present = true
		p.Clicked = clicked
		p.Blocked = blocked
		p.CopyPressed = copyPressed
	})
}
