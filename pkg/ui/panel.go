package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelPadding  = 10.0
	titleHeight   = 25.0
	sectionHeight = 25.0
)

// Panel stacks widgets vertically under a title, grouped in sections.
type Panel struct {
	X, Y    float64
	Width   float64
	Title   string
	Widgets []Widget
	Hidden  bool

	headers []header
	cursorY float64 // where the next widget goes

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA
}

type header struct {
	title string
	y     float64
}

// NewPanel creates an empty panel
func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		cursorY:     y + titleHeight,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection starts a new group of widgets with a header line.
func (p *Panel) AddSection(title string) {
	p.headers = append(p.headers, header{title: title, y: p.cursorY})
	p.cursorY += sectionHeight
}

// Add places w below the previous widget.
func (p *Panel) Add(w Widget) {
	w.SetPosition(p.X+panelPadding, p.cursorY)
	p.cursorY += w.Height()
	p.Widgets = append(p.Widgets, w)
}

// AddButton adds a full-width button.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(0, 0, p.Width-2*panelPadding, 22, label, onClick)
	p.Add(b)
	return b
}

// AddCheckbox adds a labelled checkbox.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(0, 0, label, value)
	p.Add(c)
	return c
}

// AddSlider adds a full-width slider.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(0, 0, p.Width-2*panelPadding, label, min, max, value)
	p.Add(s)
	return s
}

// Height is the space taken by the title, the headers and all widgets.
func (p *Panel) Height() float64 {
	return p.cursorY - p.Y + panelPadding
}

// Update handles input for all widgets
func (p *Panel) Update() {
	if p.Hidden {
		return
	}
	for _, w := range p.Widgets {
		w.Update()
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height()),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+panelPadding), int(p.Y+5))

	for _, h := range p.headers {
		vector.FillRect(screen,
			float32(p.X+5), float32(h.y),
			float32(p.Width-10), 20,
			color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
		ebitenutil.DebugPrintAt(screen, h.title, int(p.X+panelPadding), int(h.y+2))
	}

	for _, w := range p.Widgets {
		w.Draw(screen)
	}
}
