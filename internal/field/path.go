package field

import (
	"math"

	"github.com/cnkei/gospline"

	"flow-sketcher/internal/vec"
)

// Path is an ordered list of waypoints through world space.
type Path struct {
	Waypoints []vec.Vector
}

// NewPath creates a path from the given waypoints. The slice is copied.
func NewPath(waypoints ...vec.Vector) *Path {
	wps := make([]vec.Vector, len(waypoints))
	copy(wps, waypoints)
	return &Path{Waypoints: wps}
}

// Closest finds the waypoint closest to the given position.
// Returns the waypoint and its index, or a zero vector and -1 for an
// empty path.
func (p *Path) Closest(pos vec.Vector) (vec.Vector, int) {
	minDistSq := math.MaxFloat64
	closestIdx := -1

	for i, wp := range p.Waypoints {
		distSq := pos.Sub(wp).MagnitudeSq()
		if distSq < minDistSq {
			minDistSq = distSq
			closestIdx = i
		}
	}

	if closestIdx == -1 {
		return vec.Vector{}, -1
	}
	return p.Waypoints[closestIdx], closestIdx
}

// Length returns the total chord length along the waypoints.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Waypoints); i++ {
		total += p.Waypoints[i].Distance(p.Waypoints[i-1])
	}
	return total
}

// Resample returns a new path of n waypoints evenly spaced along a cubic
// spline through the original waypoints, parameterized by cumulative
// chord length. Consecutive waypoints must be distinct (coincident
// points collapse the parameterization; caller's responsibility).
// Paths with fewer than three waypoints are returned as copies.
func (p *Path) Resample(n int) *Path {
	if len(p.Waypoints) < 3 || n < 2 {
		return NewPath(p.Waypoints...)
	}

	ts := make([]float64, len(p.Waypoints))
	xs := make([]float64, len(p.Waypoints))
	ys := make([]float64, len(p.Waypoints))
	for i, wp := range p.Waypoints {
		if i > 0 {
			ts[i] = ts[i-1] + wp.Distance(p.Waypoints[i-1])
		}
		xs[i] = wp.X
		ys[i] = wp.Y
	}

	sx := gospline.NewCubicSpline(ts, xs)
	sy := gospline.NewCubicSpline(ts, ys)

	total := ts[len(ts)-1]
	out := make([]vec.Vector, n)
	for i := 0; i < n; i++ {
		t := total * float64(i) / float64(n-1)
		out[i] = vec.New(sx.At(t), sy.At(t), 0)
	}
	return &Path{Waypoints: out}
}
