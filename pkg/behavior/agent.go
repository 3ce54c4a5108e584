package behavior

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Agent represents a single boid in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
// Agent is a plain value: copying it copies the whole boid. Only Pos and
// Heading change after construction.
type Agent struct {
	Pos     geometry.Vector2D
	Heading float64 // degrees, 0 = up, clockwise positive
	Color   color.RGBA
	Params  Params
}

// Branch tells which rule decided the heading during an update.
type Branch int

const (
	BranchNone Branch = iota
	BranchSeparation
	BranchAlignment
	BranchCohesion
)

func (b Branch) String() string {
	switch b {
	case BranchSeparation:
		return "separation"
	case BranchAlignment:
		return "alignment"
	case BranchCohesion:
		return "cohesion"
	default:
		return "none"
	}
}

// New creates an agent at pos facing heading.
func New(pos geometry.Vector2D, heading float64, clr color.RGBA, params Params) Agent {
	return Agent{
		Pos:     pos,
		Heading: heading,
		Color:   clr,
		Params:  params,
	}
}

// Update computes the agent state for the next frame.
// flock is the frame-start snapshot and must contain the agent itself.
// It is never modified. world holds the width and height used for wraparound.
func (a Agent) Update(dt float64, flock []Agent, world geometry.Vector2D) (Agent, Branch) {
	next := a
	next.Pos = Integrate(a.Pos, a.Heading, a.Params.MoveSpeed*dt, world)

	cohesion, alignment, separation := a.Tiers(flock)

	// only self in sight
	if len(cohesion) <= 1 {
		return next, BranchNone
	}

	switch {
	case len(separation) > 1:
		com := CenterOfMass(separation)
		next.Heading = geometry.RadToDeg(a.Pos.AngleTo(com)) + 90 + 180
		return next, BranchSeparation
	case len(alignment) > 1:
		next.Heading = MeanHeading(alignment, a.Params.CircularAlignment)
		return next, BranchAlignment
	default:
		com := CenterOfMass(cohesion)
		next.Heading = geometry.RadToDeg(a.Pos.AngleTo(com)) + 90
		return next, BranchCohesion
	}
}

// Tiers returns the three nested neighbor sets of the agent.
// Each set is searched inside the previous one, never over the full flock.
func (a Agent) Tiers(flock []Agent) (cohesion, alignment, separation []Agent) {
	cohesion = Neighbors(a.Pos, flock, a.Params.CohesionDistance())
	alignment = Neighbors(a.Pos, cohesion, a.Params.AlignmentDistance())
	separation = Neighbors(a.Pos, alignment, a.Params.SeparationDistance())
	return cohesion, alignment, separation
}

// Integrate moves pos by distance along heading then wraps it to the opposite
// edge when it leaves the world.
func Integrate(pos geometry.Vector2D, heading, distance float64, world geometry.Vector2D) geometry.Vector2D {
	return pos.Add(geometry.Forward(heading).Mul(distance)).WrapToEdge(world)
}
