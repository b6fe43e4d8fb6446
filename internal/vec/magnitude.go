package vec

import "math"

// Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// MagnitudeSq returns the squared length of the vector. Cheaper than
// Magnitude when only comparing lengths.
func (v Vector) MagnitudeSq() float64 {
	return v.Dot(v)
}

// SetMagnitude rescales the vector in place to the given length,
// preserving its direction. The vector must have nonzero magnitude;
// rescaling a zero vector divides by zero and fills the components with
// NaN (caller's responsibility).
func (v *Vector) SetMagnitude(m float64) {
	k := m / v.Magnitude()
	v.X *= k
	v.Y *= k
	v.Z *= k
}

// SetMagnitudeSq sets the squared length of the vector, preserving its
// direction. It returns ErrNegativeMagnitudeSq when s is negative. The
// zero-magnitude precondition of SetMagnitude applies.
func (v *Vector) SetMagnitudeSq(s float64) error {
	if s < 0 {
		return ErrNegativeMagnitudeSq
	}
	v.SetMagnitude(math.Sqrt(s))
	return nil
}

// Normalize sets the magnitude of the vector to one. The vector must
// have nonzero magnitude (caller's responsibility).
func (v *Vector) Normalize() {
	v.SetMagnitude(1)
}

// Limit clamps the magnitude of the vector into [lower, upper]. The
// bounds are not validated against each other; the lower bound wins when
// they disagree.
func (v *Vector) Limit(upper, lower float64) {
	m := v.Magnitude()
	if m < lower {
		v.SetMagnitude(lower)
	} else if m > upper {
		v.SetMagnitude(upper)
	}
}

// LimitMax clamps the magnitude of the vector to at most upper.
func (v *Vector) LimitMax(upper float64) {
	if v.Magnitude() > upper {
		v.SetMagnitude(upper)
	}
}

// LimitMin clamps the magnitude of the vector to at least lower.
func (v *Vector) LimitMin(lower float64) {
	if v.Magnitude() < lower {
		v.SetMagnitude(lower)
	}
}
