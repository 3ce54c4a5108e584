package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal bar selecting a value in [Min, Max]
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a slider with the label drawn above the bar
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     10,
	}
	s.Set(value)
	return s
}

func (s *Slider) Height() float64 { return s.H + 25 }

func (s *Slider) SetPosition(x, y float64) { s.X, s.Y = x, y }

// Set stores v clamped to [Min, Max].
func (s *Slider) Set(v float64) {
	s.Value = max(s.Min, min(s.Max, v))
}

// barY is where the bar starts, below the label.
func (s *Slider) barY() float64 { return s.Y + 18 }

// Update checks for mouse interaction
func (s *Slider) Update() {
	s.handle(readPointer())
}

func (s *Slider) handle(p pointer) {
	if !p.pressed || !p.inside(s.X, s.barY(), s.W, s.H) {
		return
	}
	ratio := (p.x - s.X) / s.W
	s.Set(s.Min + ratio*(s.Max-s.Min))
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %.2f", s.Label, s.Value), int(s.X), int(s.Y))

	y := s.barY()
	vector.FillRect(screen, float32(s.X), float32(y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
