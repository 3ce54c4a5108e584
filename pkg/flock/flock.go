// Package flock owns the fixed population of agents and drives one frame
// of the simulation at a time.
package flock

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Size is the number of agents in every flock.
const Size = 40

const (
	minHeading      = -180
	maxHeading      = 179
	minColorChannel = 50
	maxColorChannel = 255

	// MaxWorldSize bounds each world dimension so positions fit in an int draw.
	MaxWorldSize = 1 << 30
)

var (
	ErrInvalidBounds = errors.New("world bounds out of range")
	ErrInvalidDelta  = errors.New("elapsed time must be a non-negative number")
)

// Flock is the whole population. It is an array, so assigning or passing a
// Flock copies every agent.
type Flock [Size]behavior.Agent

// Bounds is the world width (X) and height (Y).
type Bounds = geometry.Vector2D

// RandomSource draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Stats counts which rule decided each agent's heading during an Advance.
type Stats struct {
	Separation int
	Alignment  int
	Cohesion   int
	Idle       int
}

func (s *Stats) record(b behavior.Branch) {
	switch b {
	case behavior.BranchSeparation:
		s.Separation++
	case behavior.BranchAlignment:
		s.Alignment++
	case behavior.BranchCohesion:
		s.Cohesion++
	default:
		s.Idle++
	}
}

// Generate creates a new flock with random positions inside world, random
// integer headings in [-180, 179] and random colors with every channel in
// [50, 255].
func Generate(rng RandomSource, world Bounds, params behavior.Params) (Flock, error) {
	var f Flock
	if err := checkBounds(world); err != nil {
		return f, err
	}
	if err := params.Validate(); err != nil {
		return f, fmt.Errorf("cannot generate flock: %w", err)
	}

	for i := range f {
		pos := geometry.Vector2D{
			X: float64(uniformInt(rng, 0, int(world.X))),
			Y: float64(uniformInt(rng, 0, int(world.Y))),
		}
		heading := float64(uniformInt(rng, minHeading, maxHeading))
		clr := color.RGBA{
			R: uint8(uniformInt(rng, minColorChannel, maxColorChannel)),
			G: uint8(uniformInt(rng, minColorChannel, maxColorChannel)),
			B: uint8(uniformInt(rng, minColorChannel, maxColorChannel)),
			A: 255,
		}
		f[i] = behavior.New(pos, heading, clr, params)
	}
	return f, nil
}

// Advance computes the next frame. Every agent reads the same frame-start
// snapshot; results go to a separate array returned as a whole.
func Advance(f Flock, dt float64, world Bounds) (Flock, Stats, error) {
	var stats Stats
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return f, stats, fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}
	if err := checkBounds(world); err != nil {
		return f, stats, err
	}

	snapshot := f[:]
	var next Flock
	for i, a := range f {
		var branch behavior.Branch
		next[i], branch = a.Update(dt, snapshot, world)
		stats.record(branch)
	}
	return next, stats, nil
}

// SetCircularAlignment switches the alignment averaging mode of every agent.
func (f *Flock) SetCircularAlignment(on bool) {
	for i := range f {
		f[i].Params.CircularAlignment = on
	}
}

// uniformInt returns an integer in the closed range [lo, hi].
func uniformInt(rng RandomSource, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func checkBounds(world Bounds) error {
	if !world.IsFinite() || world.X <= 0 || world.Y <= 0 || world.X > MaxWorldSize || world.Y > MaxWorldSize {
		return fmt.Errorf("%w: got %v", ErrInvalidBounds, world)
	}
	return nil
}
