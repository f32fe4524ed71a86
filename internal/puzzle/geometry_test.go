package puzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentsCross(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, p3, p4 Point
		want           bool
	}{
		{
			name: "x pattern",
			p1:   Point{0, 0}, p2: Point{10, 10},
			p3: Point{0, 10}, p4: Point{10, 0},
			want: true,
		},
		{
			name: "parallel",
			p1:   Point{0, 0}, p2: Point{10, 0},
			p3: Point{0, 5}, p4: Point{10, 5},
			want: false,
		},
		{
			name: "shared endpoint",
			p1:   Point{0, 0}, p2: Point{10, 10},
			p3: Point{10, 10}, p4: Point{20, 0},
			want: false,
		},
		{
			name: "t touch is not a proper crossing",
			p1:   Point{0, 0}, p2: Point{10, 0},
			p3: Point{5, 0}, p4: Point{5, 10},
			want: false,
		},
		{
			name: "disjoint",
			p1:   Point{0, 0}, p2: Point{1, 1},
			p3: Point{5, 5}, p4: Point{6, 4},
			want: false,
		},
		{
			name: "collinear overlap",
			p1:   Point{0, 0}, p2: Point{10, 0},
			p3: Point{5, 0}, p4: Point{15, 0},
			want: false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, SegmentsCross(test.p1, test.p2, test.p3, test.p4))
			// crossing is symmetric in the two segments
			assert.Equal(t, test.want, SegmentsCross(test.p3, test.p4, test.p1, test.p2))
		})
	}
}

func TestPlacePointsKeepsSeparation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		points := PlacePoints(8, 320, 240, 40, r)
		require.Len(t, points, 8)
		for i := range points {
			for j := i + 1; j < len(points); j++ {
				assert.GreaterOrEqual(t, dist(points[i], points[j]), 40.0)
			}
		}
	}
}

func TestPlacePointsTerminatesWhenCrowded(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	// spacing this many points at minSep 40 in a 50x50 box is impossible,
	// so placement has to fall back to degraded spacing
	points := PlacePoints(30, 50, 50, 40, r)
	require.Len(t, points, 30)
}
