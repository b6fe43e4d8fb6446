// Package vec provides the Euclidean vector type used throughout the
// toolkit for positions, velocities, directions and rotations.
//
// A Vector holds three components but serves double duty: with Z left at
// zero it behaves as a 2D vector (exposing an angle and 2D rotation), and
// with Z nonzero it is a general 3D vector. Arithmetic never mutates its
// operands; the magnitude, angle and rotation setters mutate in place.
package vec

import (
	"fmt"
	"math"
)

// Relative tolerance for approximate component equality.
const closeRelTol = 1e-9

// Vector represents a vector in two or three dimensional space.
// Z is the discriminator: a zero Z means the vector is treated as 2D by
// the angle accessors. Copies are independent values.
type Vector struct {
	X, Y, Z float64
}

// New returns a vector with the given components. Pass z = 0 for a 2D
// vector; struct literals work just as well.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add adds two vectors, returning a new vector.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts other from v, returning a new vector.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale multiplies the vector by a scalar, returning a new vector.
func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

// Div divides the vector by a scalar. Division by zero is not guarded;
// the components follow ordinary floating-point division and come back
// infinite or NaN.
func (v Vector) Div(k float64) Vector {
	return v.Scale(1 / k)
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Dot returns the dot product of the two vectors. A 2D vector's implicit
// zero Z contributes nothing, so mixing 2D and 3D operands is fine.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of the two vectors. Applied to two 2D
// vectors the result has only a Z component, the signed area of their
// parallelogram.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Lerp linearly interpolates from v to other by amount, returning a new
// vector. Amount is not clamped; values outside [0, 1] extrapolate.
func (v Vector) Lerp(other Vector, amount float64) Vector {
	return Vector{
		v.X + amount*(other.X-v.X),
		v.Y + amount*(other.Y-v.Y),
		v.Z + amount*(other.Z-v.Z),
	}
}

// Distance returns the distance between the tips of the two vectors.
func (v Vector) Distance(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dist is an alias for Distance.
func (v Vector) Dist(other Vector) float64 {
	return v.Distance(other)
}

// Copy returns a copy of the vector. Vector is a plain value type, so
// this is equivalent to assignment; it exists for call-site symmetry
// with the mutating methods.
func (v Vector) Copy() Vector {
	return v
}

// Components returns the components as a fixed (x, y, z) triple,
// regardless of 2D/3D mode.
func (v Vector) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Equals reports whether the two vectors are componentwise approximately
// equal, under a relative floating-point tolerance. It is not a bitwise
// comparison.
func (v Vector) Equals(other Vector) bool {
	return isClose(v.X, other.X) && isClose(v.Y, other.Y) && isClose(v.Z, other.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= closeRelTol*math.Max(math.Abs(a), math.Abs(b))
}
