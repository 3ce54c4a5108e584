package flock

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// View is what a renderer needs to draw one agent.
type View struct {
	Pos              geometry.Vector2D
	Heading          float64
	Size             float64
	Color            color.RGBA
	CohesionRadius   float64
	AlignmentRadius  float64
	SeparationRadius float64
}

// Views returns one View per agent, in flock order.
func (f *Flock) Views() []View {
	views := make([]View, len(f))
	for i, a := range f {
		views[i] = View{
			Pos:              a.Pos,
			Heading:          a.Heading,
			Size:             a.Params.Size,
			Color:            a.Color,
			CohesionRadius:   a.Params.CohesionDistance(),
			AlignmentRadius:  a.Params.AlignmentDistance(),
			SeparationRadius: a.Params.SeparationDistance(),
		}
	}
	return views
}
