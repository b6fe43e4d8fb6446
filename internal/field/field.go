// Package field provides 2D flow fields and waypoint paths for steering
// particles around a sketch.
package field

import (
	"flow-sketcher/internal/vec"
)

// FlowField is a grid of direction vectors covering a rectangular region
// of world space. Each cell spans Resolution pixels.
type FlowField struct {
	Cols, Rows int
	Resolution int
	vectors    [][]vec.Vector
}

// New creates an empty field of the given size.
func New(cols, rows, resolution int) *FlowField {
	vectors := make([][]vec.Vector, cols)
	for i := range vectors {
		vectors[i] = make([]vec.Vector, rows)
	}
	return &FlowField{
		Cols:       cols,
		Rows:       rows,
		Resolution: resolution,
		vectors:    vectors,
	}
}

// Generate creates a field whose cell directions come from angleAt,
// called once per cell with the cell coordinates.
func Generate(cols, rows, resolution int, angleAt func(cx, cy int) float64) *FlowField {
	f := New(cols, rows, resolution)
	for cx := 0; cx < cols; cx++ {
		for cy := 0; cy < rows; cy++ {
			f.vectors[cx][cy] = vec.FromAngle(angleAt(cx, cy))
		}
	}
	return f
}

// Set stores the vector for cell (cx, cy). Out-of-range cells are ignored.
func (f *FlowField) Set(cx, cy int, v vec.Vector) {
	if cx < 0 || cx >= f.Cols || cy < 0 || cy >= f.Rows {
		return
	}
	f.vectors[cx][cy] = v
}

// At returns the vector for cell (cx, cy). Out-of-range cells clamp to
// the nearest edge cell, so particles drifting past the border keep
// following the edge flow instead of stalling.
func (f *FlowField) At(cx, cy int) vec.Vector {
	cx = clamp(cx, 0, f.Cols-1)
	cy = clamp(cy, 0, f.Rows-1)
	return f.vectors[cx][cy]
}

// Lookup returns the flow vector for a world position.
func (f *FlowField) Lookup(pos vec.Vector) vec.Vector {
	return f.At(int(pos.X)/f.Resolution, int(pos.Y)/f.Resolution)
}

// Width returns the field's world-space width in pixels.
func (f *FlowField) Width() float64 {
	return float64(f.Cols * f.Resolution)
}

// Height returns the field's world-space height in pixels.
func (f *FlowField) Height() float64 {
	return float64(f.Rows * f.Resolution)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
