package geometry

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq for float64 comparisons.
const (
	Epsilon = 1e-9
)

// Vector2D represents a 2D vector or point in screen space (Y grows downward).
// Fields are public because they are plain data: v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String implements the fmt.Stringer interface.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// ---------------------------------------------------------------------
// Arithmetic Operations
// Value receivers, new values returned.
// ---------------------------------------------------------------------

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// ---------------------------------------------------------------------
// Magnitude and distance
// ---------------------------------------------------------------------

// LenSqr calculates the squared magnitude of the vector.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Sqrt(v.LenSqr())
}

// DistanceTo calculates the Euclidean distance to another point.
func (v Vector2D) DistanceTo(other Vector2D) float64 {
	return v.Sub(other).Len()
}

// ---------------------------------------------------------------------
// Angles and headings
// Headings are in degrees: 0 points up (negative Y) and positive values
// turn clockwise on screen.
// ---------------------------------------------------------------------

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleTo returns the angle in radians of the vector going from v to other,
// measured from the positive X axis. Range: [-Pi, Pi]
func (v Vector2D) AngleTo(other Vector2D) float64 {
	return math.Atan2(other.Y-v.Y, other.X-v.X)
}

// Rotate rotates the vector by angle (in radians) around the origin.
// With Y pointing down a positive angle turns clockwise on screen.
func (v Vector2D) Rotate(angle float64) Vector2D {
	cosTheta := math.Cos(angle)
	sinTheta := math.Sin(angle)
	return Vector2D{
		X: v.X*cosTheta - v.Y*sinTheta,
		Y: v.X*sinTheta + v.Y*cosTheta,
	}
}

// Forward returns the unit vector for a heading in degrees.
func Forward(heading float64) Vector2D {
	return Vector2D{X: 0, Y: -1}.Rotate(DegToRad(heading))
}

// ---------------------------------------------------------------------
// World helpers
// ---------------------------------------------------------------------

// WrapToEdge snaps each coordinate that left [0, bounds] to the opposite edge.
// A coordinate below 0 becomes the bound, one above the bound becomes 0.
// This is not a modulo wrap: the overshoot is discarded.
func (v Vector2D) WrapToEdge(bounds Vector2D) Vector2D {
	if v.X < 0 {
		v.X = bounds.X
	}
	if v.X > bounds.X {
		v.X = 0
	}
	if v.Y < 0 {
		v.Y = bounds.Y
	}
	if v.Y > bounds.Y {
		v.Y = 0
	}
	return v
}

// Contains reports whether p lies inside the rectangle [0, v.X] x [0, v.Y].
func (v Vector2D) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X <= v.X && p.Y >= 0 && p.Y <= v.Y
}

// IsFinite reports whether both components are neither NaN nor Inf.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
