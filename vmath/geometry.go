package vmath

import (
	"math"
)

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// CircleCircleIntersect reports whether two circles overlap or touch
func CircleCircleIntersect(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	sum := r1 + r2
	return V2MagSq(V2Sub(c2, c1)) <= sum*sum
}

// CirclePolygon approximates a circle with an n-gon, vertices relative to center
func CirclePolygon(center Vec2, radius float64, segments int) []Vec2 {
	if segments < 3 {
		segments = 3
	}
	points := make([]Vec2, segments)
	step := 2 * math.Pi / float64(segments)
	for i := range points {
		sin, cos := math.Sincos(step * float64(i))
		points[i] = Vec2{center.X + cos*radius, center.Y + sin*radius}
	}
	return points
}

// PolygonRadius returns the distance of the furthest vertex from the origin
func PolygonRadius(points []Vec2) float64 {
	var r float64
	for _, p := range points {
		if l := V2Mag(p); l > r {
			r = l
		}
	}
	return r
}
