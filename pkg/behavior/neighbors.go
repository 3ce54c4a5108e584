package behavior

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Neighbors returns the members of set strictly closer than radius to self.
// An agent at self is always kept since its distance is 0.
func Neighbors(self geometry.Vector2D, set []Agent, radius float64) []Agent {
	result := make([]Agent, 0, len(set))
	for _, other := range set {
		if self.DistanceTo(other.Pos) < radius {
			result = append(result, other)
		}
	}
	return result
}

// CenterOfMass returns the unweighted average position of set.
// An empty set has no center and yields the origin.
func CenterOfMass(set []Agent) geometry.Vector2D {
	if len(set) == 0 {
		return geometry.Vector2D{}
	}
	var sum geometry.Vector2D
	for _, a := range set {
		sum = sum.Add(a.Pos)
	}
	n := float64(len(set))
	return geometry.Vector2D{X: sum.X / n, Y: sum.Y / n}
}

// MeanHeading averages the headings of set.
// The plain mean treats degrees as ordinary numbers, so -170 and 170
// average to 0. With circular set, headings are averaged as unit vectors.
func MeanHeading(set []Agent, circular bool) float64 {
	if len(set) == 0 {
		return 0
	}
	n := float64(len(set))
	if !circular {
		sum := 0.0
		for _, a := range set {
			sum += a.Heading
		}
		return sum / n
	}

	var sinSum, cosSum float64
	for _, a := range set {
		rad := geometry.DegToRad(a.Heading)
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}
	return geometry.RadToDeg(math.Atan2(sinSum/n, cosSum/n))
}
