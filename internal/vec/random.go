package vec

import "math/rand/v2"

// Random2D returns a random 2D unit vector. The components are drawn
// uniformly from [0, 1) and the result normalized, so directions always
// lie in the first quadrant and cluster toward the diagonal; this matches
// the classic toolkit behavior and is deliberately not uniform over the
// circle.
func Random2D() Vector {
	v := Vector{X: rand.Float64(), Y: rand.Float64()}
	v.Normalize()
	return v
}

// Random3D returns a random 3D unit vector. Same square-then-normalize
// draw as Random2D with a third component, so directions lie in the
// all-positive octant and are not uniform over the sphere.
func Random3D() Vector {
	v := Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()}
	v.Normalize()
	return v
}
