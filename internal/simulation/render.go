package simulation

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

const (
	cohesionAlpha   = 32
	alignmentAlpha  = 48
	separationAlpha = 48
	bodySides       = 6
)

// whiteImage is the source texture for DrawTriangles, vertex colors tint it.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// drawRanges draws the three behavior ranges as translucent discs.
func drawRanges(screen *ebiten.Image, a flock.View) {
	x, y := float32(a.Pos.X), float32(a.Pos.Y)
	for _, r := range []struct {
		radius float64
		alpha  uint8
	}{
		{a.CohesionRadius, cohesionAlpha},
		{a.AlignmentRadius, alignmentAlpha},
		{a.SeparationRadius, separationAlpha},
	} {
		clr := color.NRGBA{R: a.Color.R, G: a.Color.G, B: a.Color.B, A: r.alpha}
		vector.FillCircle(screen, x, y, float32(r.radius), clr, true)
	}
}

// drawAgent draws a hexagonal body turned by the heading and a line showing
// where the agent is going.
func drawAgent(screen *ebiten.Image, a flock.View) {
	cr := float32(a.Color.R) / 255
	cg := float32(a.Color.G) / 255
	cb := float32(a.Color.B) / 255

	vertices := make([]ebiten.Vertex, 0, bodySides+1)
	vertices = append(vertices, ebiten.Vertex{
		DstX: float32(a.Pos.X), DstY: float32(a.Pos.Y),
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
	})
	for i := 0; i < bodySides; i++ {
		p := a.Pos.Add(geometry.Forward(a.Heading + float64(i)*360/bodySides).Mul(a.Size))
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		})
	}

	indices := make([]uint16, 0, bodySides*3)
	for i := 1; i <= bodySides; i++ {
		next := i%bodySides + 1
		indices = append(indices, 0, uint16(i), uint16(next))
	}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})

	tip := a.Pos.Add(geometry.Forward(a.Heading).Mul(a.Size * 2))
	vector.StrokeLine(screen,
		float32(a.Pos.X), float32(a.Pos.Y),
		float32(tip.X), float32(tip.Y),
		float32(a.Size/4), a.Color, true)
}
