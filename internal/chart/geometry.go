// Package chart maps pointer positions onto trend-chart data indices and
// tracks which point the user is inspecting.
package chart

import "math"

// Default SVG-style viewport the trend chart is laid out in.
const (
	DefaultWidth  = 320
	DefaultHeight = 150
	DefaultPad    = 12
)

// Geometry lays N points evenly across a padded viewport. Scores run from 1
// at the bottom to 5 at the top.
type Geometry struct {
	Width, Height float64
	PadX, PadY    float64
	N             int
}

// DefaultGeometry is the standard viewport for n points.
func DefaultGeometry(n int) Geometry {
	return Geometry{Width: DefaultWidth, Height: DefaultHeight, PadX: DefaultPad, PadY: DefaultPad, N: n}
}

// StepX is the horizontal distance between adjacent points.
func (g Geometry) StepX() float64 {
	return (g.Width - 2*g.PadX) / float64(max(1, g.N-1))
}

// X is the horizontal position of point i.
func (g Geometry) X(i int) float64 {
	return g.PadX + float64(i)*g.StepX()
}

// Y is the vertical position of a score.
func (g Geometry) Y(v float64) float64 {
	return g.PadY + (5-v)*((g.Height-2*g.PadY)/4)
}

// Pick returns the index of the point nearest to viewport coordinate x,
// clamped to the valid range. ok is false for an empty chart.
func (g Geometry) Pick(x float64) (int, bool) {
	if g.N <= 0 {
		return 0, false
	}
	step := g.StepX()
	if step <= 0 || math.IsNaN(x) {
		return 0, true
	}
	f := math.Floor((x-g.PadX)/step + 0.5)
	switch {
	case f <= 0:
		return 0, true
	case f >= float64(g.N-1):
		return g.N - 1, true
	}
	return int(f), true
}

// FromClient converts a pointer position on a rendered chart of the given
// width, whose left edge is at left, into viewport coordinates.
func (g Geometry) FromClient(clientX, left, renderedWidth float64) float64 {
	if renderedWidth <= 0 {
		return g.PadX
	}
	return (clientX - left) / renderedWidth * g.Width
}
