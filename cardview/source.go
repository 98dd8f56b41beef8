package cardview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Touch is one active touch point in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// InputSource is the raw input a Host polls each tick.
type InputSource interface {
	// Cursor returns the mouse position and whether the primary button is
	// held. ok is false when the platform has no mouse.
	Cursor() (x, y float64, pressed, ok bool)
	// AppendTouches appends the currently active touches to buf.
	AppendTouches(buf []Touch) []Touch
}

// EbitenInput reads input from Ebitengine. Only call it from Game.Update.
type EbitenInput struct {
	ids []ebiten.TouchID
}

// Cursor implements InputSource.
func (in *EbitenInput) Cursor() (x, y float64, pressed, ok bool) {
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), true
}

// AppendTouches implements InputSource.
func (in *EbitenInput) AppendTouches(buf []Touch) []Touch {
	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		tx, ty := ebiten.TouchPosition(id)
		buf = append(buf, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	return buf
}
