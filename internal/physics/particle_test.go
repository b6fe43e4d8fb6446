package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flow-sketcher/internal/vec"
)

func TestApplyForceAccumulates(t *testing.T) {
	p := NewParticle(0, 0)
	p.ApplyForce(vec.New(1, 0, 0))
	p.ApplyForce(vec.New(0, 2, 0))

	assert.True(t, p.Acceleration.Equals(vec.New(1, 2, 0)))

	p.Update()
	assert.True(t, p.Velocity.Equals(vec.New(1, 2, 0)))
	assert.True(t, p.Position.Equals(vec.New(1, 2, 0)))
	// Accumulator clears every tick.
	assert.True(t, p.Acceleration.Equals(vec.Vector{}))
}

func TestUpdateClampsSpeed(t *testing.T) {
	p := NewParticle(0, 0)
	p.MaxSpeed = 2
	p.ApplyForce(vec.New(30, 40, 0))
	p.Update()

	assert.InDelta(t, 2, p.Velocity.Magnitude(), 1e-12)
	// Direction of the force survives the clamp.
	assert.InDelta(t, 0.6*2, p.Velocity.X, 1e-12)
	assert.InDelta(t, 0.8*2, p.Velocity.Y, 1e-12)
}

func TestSteerLimitsForce(t *testing.T) {
	p := NewParticle(0, 0)
	p.Velocity = vec.New(1, 0, 0)

	force := p.Steer(vec.New(0, 100, 0))
	assert.LessOrEqual(t, force.Magnitude(), SteerForce+1e-12)
}

func TestSeek(t *testing.T) {
	p := NewParticle(0, 0)

	force := p.Seek(vec.New(10, 0, 0))
	// Already stationary, so the full steering budget points at the target.
	assert.InDelta(t, SteerForce, force.Magnitude(), 1e-12)
	assert.Greater(t, force.X, 0.0)
	assert.InDelta(t, 0, force.Y, 1e-12)

	// Seeking the current position is a no-op, not a NaN.
	assert.True(t, p.Seek(p.Position).Equals(vec.Vector{}))
}

func TestSeekConverges(t *testing.T) {
	p := NewParticle(0, 0)
	target := vec.New(50, 30, 0)

	for i := 0; i < 300; i++ {
		p.ApplyForce(p.Seek(target))
		p.Update()
	}
	// A pure seeker oscillates through the target; the overshoot is at
	// most v^2/(2a) plus one tick of travel.
	overshoot := MaxSpeed*MaxSpeed/(2*SteerForce) + MaxSpeed
	assert.Less(t, p.Position.Distance(target), overshoot+1)
}

func TestWanderIsBounded(t *testing.T) {
	p := NewParticle(0, 0)
	p.Velocity = vec.New(2, 0, 0)

	for i := 0; i < 50; i++ {
		force := p.Wander()
		require.False(t, math.IsNaN(force.X))
		assert.LessOrEqual(t, force.Magnitude(), SteerForce+1e-12)
	}
}

func TestWrap(t *testing.T) {
	p := NewParticle(105, -3)
	assert.True(t, p.Wrap(100, 50))
	assert.InDelta(t, 5, p.Position.X, 1e-12)
	assert.InDelta(t, 47, p.Position.Y, 1e-12)

	q := NewParticle(10, 10)
	assert.False(t, q.Wrap(100, 50))
}

func TestHeading(t *testing.T) {
	p := NewParticle(0, 0)
	assert.Equal(t, 0.0, p.Heading())

	p.Velocity = vec.New(0, 3, 0)
	assert.InDelta(t, math.Pi/2, p.Heading(), 1e-12)

	// A 3D velocity is projected onto the plane for drawing.
	p.Velocity = vec.New(1, 1, 5)
	assert.InDelta(t, math.Pi/4, p.Heading(), 1e-12)
}
