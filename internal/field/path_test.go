package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flow-sketcher/internal/vec"
)

func TestClosest(t *testing.T) {
	p := NewPath(
		vec.New(0, 0, 0),
		vec.New(10, 0, 0),
		vec.New(10, 10, 0),
	)

	wp, idx := p.Closest(vec.New(9, 2, 0))
	assert.Equal(t, 1, idx)
	assert.True(t, wp.Equals(vec.New(10, 0, 0)))

	_, idx = NewPath().Closest(vec.New(0, 0, 0))
	assert.Equal(t, -1, idx)
}

func TestLength(t *testing.T) {
	p := NewPath(
		vec.New(0, 0, 0),
		vec.New(3, 4, 0),
		vec.New(3, 4, 0).Add(vec.New(6, 8, 0)),
	)
	assert.InDelta(t, 15, p.Length(), 1e-12)

	assert.Equal(t, 0.0, NewPath().Length())
	assert.Equal(t, 0.0, NewPath(vec.New(1, 1, 0)).Length())
}

func TestResampleStraightLine(t *testing.T) {
	p := NewPath(
		vec.New(0, 0, 0),
		vec.New(10, 0, 0),
		vec.New(20, 0, 0),
		vec.New(30, 0, 0),
	)

	r := p.Resample(7)
	assert.Len(t, r.Waypoints, 7)

	// A cubic spline through collinear points is the line itself, so the
	// resampled points land evenly along it.
	for i, wp := range r.Waypoints {
		assert.InDelta(t, float64(i)*5, wp.X, 1e-9)
		assert.InDelta(t, 0, wp.Y, 1e-9)
	}
}

func TestResampleKeepsEndpoints(t *testing.T) {
	p := NewPath(
		vec.New(0, 0, 0),
		vec.New(5, 8, 0),
		vec.New(12, 3, 0),
		vec.New(20, 10, 0),
	)

	r := p.Resample(16)
	assert.Len(t, r.Waypoints, 16)
	assert.True(t, r.Waypoints[0].Equals(p.Waypoints[0]))
	assert.InDelta(t, p.Waypoints[3].X, r.Waypoints[15].X, 1e-9)
	assert.InDelta(t, p.Waypoints[3].Y, r.Waypoints[15].Y, 1e-9)
}

func TestResampleShortPath(t *testing.T) {
	p := NewPath(vec.New(0, 0, 0), vec.New(1, 1, 0))
	r := p.Resample(10)

	// Too short to spline; comes back as a copy.
	assert.Len(t, r.Waypoints, 2)
	r.Waypoints[0].X = 99
	assert.True(t, p.Waypoints[0].Equals(vec.New(0, 0, 0)))
}
