package vec

import "math"

// Angle returns the angle of rotation of a 2D vector, in radians.
// It returns ErrAngle3D when Z is nonzero; the angle of a true 3D vector
// is undefined.
func (v Vector) Angle() (float64, error) {
	if v.Z != 0 {
		return 0, ErrAngle3D
	}
	return math.Atan2(v.Y, v.X), nil
}

// SetAngle rotates the vector in place so that its angle becomes theta.
// It reads the current angle first, so like Angle it returns ErrAngle3D
// when Z is nonzero.
func (v *Vector) SetAngle(theta float64) error {
	current, err := v.Angle()
	if err != nil {
		return err
	}
	v.Rotate(theta - current)
	return nil
}

// Rotate rotates the vector in place by theta radians in the XY plane.
// Z is left untouched. Unlike the angle accessors, Rotate is defined for
// 3D vectors too; it simply spins them about the Z axis.
func (v *Vector) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	x := v.X*cos - v.Y*sin
	y := v.X*sin + v.Y*cos
	v.X = x
	v.Y = y
}

// AngleBetween returns the angle between the two vectors in radians, in
// [0, pi]. Defined for both 2D and 3D vectors. Both operands must have
// nonzero magnitude; a zero operand divides by zero and the result is NaN
// (caller's responsibility).
func (v Vector) AngleBetween(other Vector) float64 {
	return math.Acos(v.Dot(other) / (v.Magnitude() * other.Magnitude()))
}

// FromAngle returns a unit 2D vector pointing at the given angle, in
// radians.
func FromAngle(theta float64) Vector {
	sin, cos := math.Sincos(theta)
	return Vector{X: cos, Y: sin}
}
