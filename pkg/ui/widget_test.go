package ui

import (
	"testing"
)

func TestButton_FiresOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton(10, 10, 100, 20, "Reset", func() { clicks++ })

	over := pointer{x: 50, y: 20, pressed: true}
	b.handle(over)
	b.handle(over) // still held down
	if clicks != 1 {
		t.Fatalf("clicks = %d after one press; want 1", clicks)
	}

	b.handle(pointer{x: 50, y: 20}) // released
	b.handle(over)
	if clicks != 2 {
		t.Errorf("clicks = %d after two presses; want 2", clicks)
	}

	b.handle(pointer{x: 500, y: 20, pressed: true}) // outside
	if clicks != 2 {
		t.Errorf("press outside the button fired OnClick")
	}
}

func TestCheckbox_Toggle(t *testing.T) {
	c := NewCheckbox(0, 0, "Show ranges", false)

	c.handle(pointer{x: 8, y: 8, pressed: true})
	c.handle(pointer{x: 8, y: 8, pressed: true})
	if !c.Value {
		t.Fatal("checkbox should be checked after one press")
	}

	c.handle(pointer{x: 8, y: 8})
	c.handle(pointer{x: 8, y: 8, pressed: true})
	if c.Value {
		t.Error("checkbox should be unchecked after a second press")
	}

	c.Toggle()
	if !c.Value {
		t.Error("Toggle should flip the value")
	}
}

func TestSlider_ValueFromPointer(t *testing.T) {
	s := NewSlider(0, 0, 100, "Time scale", 0, 2, 1)

	tests := []struct {
		name string
		p    pointer
		want float64
	}{
		{"middle of the bar", pointer{x: 50, y: 20, pressed: true}, 1},
		{"left end", pointer{x: 0, y: 20, pressed: true}, 0},
		{"right end", pointer{x: 100, y: 20, pressed: true}, 2},
		{"quarter", pointer{x: 25, y: 20, pressed: true}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.handle(tt.p)
			if s.Value != tt.want {
				t.Errorf("Value = %v; want %v", s.Value, tt.want)
			}
		})
	}

	s.handle(pointer{x: 75, y: 20}) // not pressed
	if s.Value != 0.5 {
		t.Errorf("hover without press changed the value to %v", s.Value)
	}
}

func TestSlider_SetClamps(t *testing.T) {
	s := NewSlider(0, 0, 100, "Time scale", 0, 2, 5)
	if s.Value != 2 {
		t.Errorf("NewSlider with 5 = %v; want 2", s.Value)
	}
	s.Set(-1)
	if s.Value != 0 {
		t.Errorf("Set(-1) = %v; want 0", s.Value)
	}
}

func TestPanel_StacksWidgets(t *testing.T) {
	p := NewPanel(10, 10, 200, "Flock")
	p.AddSection("Controls")
	b := p.AddButton("Reset", nil)
	c := p.AddCheckbox("Show ranges", true)
	s := p.AddSlider("Time scale", 0, 2, 1)

	if b.X != 20 || c.X != 20 || s.X != 20 {
		t.Errorf("widgets should be indented by the padding, got %v %v %v", b.X, c.X, s.X)
	}
	if !(b.Y < c.Y && c.Y < s.Y) {
		t.Errorf("widgets should be stacked top to bottom, got %v %v %v", b.Y, c.Y, s.Y)
	}
	if got, want := c.Y, b.Y+b.Height(); got != want {
		t.Errorf("checkbox Y = %v; want %v", got, want)
	}
	if b.W != 180 {
		t.Errorf("button width = %v; want 180", b.W)
	}
	if len(p.Widgets) != 3 {
		t.Errorf("panel holds %d widgets; want 3", len(p.Widgets))
	}
}
