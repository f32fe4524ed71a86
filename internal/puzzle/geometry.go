package puzzle

import (
	"math"
	"math/rand/v2"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

const placeRetries = 100

// PlacePoints scatters count points over a width x height canvas,
// rejection-sampling each one until it sits at least minSep away from
// every point placed before it. When the retry budget runs out the last
// candidate is accepted at degraded spacing, so placement always
// terminates.
func PlacePoints(count int, width, height, minSep float64, r *rand.Rand) []Point {
	points := make([]Point, 0, count)
	for len(points) < count {
		var p Point
		for range placeRetries {
			p = Point{
				X: minSep/2 + r.Float64()*(width-minSep),
				Y: minSep/2 + r.Float64()*(height-minSep),
			}
			if !tooClose(points, p, minSep) {
				break
			}
		}
		points = append(points, p)
	}
	return points
}

func tooClose(points []Point, p Point, minSep float64) bool {
	for _, q := range points {
		if dist(p, q) < minSep {
			return true
		}
	}
	return false
}

func orientation(a, b, c Point) int {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > 0:
		return 1
	case cross < 0:
		return -1
	}
	return 0
}

// SegmentsCross reports whether segments p1p2 and p3p4 properly cross:
// the endpoints of each segment lie strictly on opposite sides of the
// other. Touching endpoints and collinear overlap do not count.
func SegmentsCross(p1, p2, p3, p4 Point) bool {
	d1 := orientation(p1, p2, p3)
	d2 := orientation(p1, p2, p4)
	d3 := orientation(p3, p4, p1)
	d4 := orientation(p3, p4, p2)
	return d1*d2 < 0 && d3*d4 < 0
}
