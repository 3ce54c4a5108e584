package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a simple UI widget for boolean values
type Checkbox struct {
	Label   string
	Value   bool
	X, Y    float64
	Size    float64
	clicked bool // already toggled for the current press
}

// NewCheckbox creates a new checkbox instance
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  16,
	}
}

func (c *Checkbox) Height() float64 { return c.Size + 5 }

func (c *Checkbox) SetPosition(x, y float64) { c.X, c.Y = x, y }

// Toggle flips the value, used for keyboard shortcuts.
func (c *Checkbox) Toggle() { c.Value = !c.Value }

// Update checks for mouse interaction
func (c *Checkbox) Update() {
	c.handle(readPointer())
}

func (c *Checkbox) handle(p pointer) {
	if p.pressed && p.inside(c.X, c.Y, c.Size, c.Size) {
		if !c.clicked {
			c.Toggle()
			c.clicked = true
		}
		return
	}
	c.clicked = false
}

// Draw renders the checkbox and its label on the right
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}
