package behavior

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is wrapped by Params.Validate failures.
var ErrInvalidParams = errors.New("invalid agent params")

// Params holds the fixed per-agent constants.
// The three factors are multiplied by Size to get the behavior ranges.
type Params struct {
	Size      float64 // visual radius, also the base unit of all ranges
	MoveSpeed float64 // units per second

	SeparationFactor float64
	AlignmentFactor  float64
	CohesionFactor   float64

	// CircularAlignment averages headings on the unit circle instead of
	// taking the plain mean of raw degree values.
	CircularAlignment bool
}

// DefaultParams returns the reference boid: size 10, speed 200, factors 3/9/14.
func DefaultParams() Params {
	return Params{
		Size:             10,
		MoveSpeed:        200,
		SeparationFactor: 3,
		AlignmentFactor:  9,
		CohesionFactor:   14,
	}
}

// SeparationDistance is the radius inside which neighbors push the agent away.
func (p Params) SeparationDistance() float64 { return p.Size * p.SeparationFactor }

// AlignmentDistance is the radius inside which neighbors share their heading.
func (p Params) AlignmentDistance() float64 { return p.Size * p.AlignmentFactor }

// CohesionDistance is the radius inside which neighbors pull the agent in.
func (p Params) CohesionDistance() float64 { return p.Size * p.CohesionFactor }

// Validate checks that the ranges are positive and nest:
// separation <= alignment <= cohesion.
func (p Params) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %v", ErrInvalidParams, p.Size)
	}
	if p.MoveSpeed < 0 {
		return fmt.Errorf("%w: move speed must not be negative, got %v", ErrInvalidParams, p.MoveSpeed)
	}
	if p.SeparationFactor <= 0 || p.AlignmentFactor <= 0 || p.CohesionFactor <= 0 {
		return fmt.Errorf("%w: range factors must be positive, got %v/%v/%v",
			ErrInvalidParams, p.SeparationFactor, p.AlignmentFactor, p.CohesionFactor)
	}
	if p.SeparationFactor > p.AlignmentFactor || p.AlignmentFactor > p.CohesionFactor {
		return fmt.Errorf("%w: ranges must nest (separation %v <= alignment %v <= cohesion %v)",
			ErrInvalidParams, p.SeparationFactor, p.AlignmentFactor, p.CohesionFactor)
	}
	return nil
}
