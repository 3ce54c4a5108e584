package ui

import "github.com/hajimehoshi/ebiten/v2"

// Widget is implemented by everything a Panel can hold.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetPosition(x, y float64)
}

// pointer holds the mouse state for one frame.
type pointer struct {
	x, y    float64
	pressed bool
}

func readPointer() pointer {
	mx, my := ebiten.CursorPosition()
	return pointer{
		x:       float64(mx),
		y:       float64(my),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

// inside reports whether the pointer is over the rectangle.
func (p pointer) inside(x, y, w, h float64) bool {
	return p.x >= x && p.x <= x+w && p.y >= y && p.y <= y+h
}
