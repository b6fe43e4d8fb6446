package physics

import (
	"math/rand/v2"

	"flow-sketcher/internal/vec"
)

const (
	MaxSpeed     = 4.0  // Pixels per tick (approx)
	SteerForce   = 0.25 // Max steering force per tick
	WanderJitter = 0.3  // Radians of heading noise per wander call
)

// Particle is a point mass driven by accumulated forces. Position,
// velocity and acceleration are all world-space vectors; sketches that
// stay 2D simply never touch Z.
type Particle struct {
	Position     vec.Vector
	Velocity     vec.Vector
	Acceleration vec.Vector

	MaxSpeed float64
}

func NewParticle(x, y float64) *Particle {
	return &Particle{
		Position: vec.New(x, y, 0),
		MaxSpeed: MaxSpeed,
	}
}

// ApplyForce accumulates a force into the particle's acceleration.
// Mass is treated as 1, so force and acceleration coincide.
func (p *Particle) ApplyForce(f vec.Vector) {
	p.Acceleration = p.Acceleration.Add(f)
}

// Steer returns the steering force that turns the current velocity
// toward the desired velocity, limited to SteerForce.
func (p *Particle) Steer(desired vec.Vector) vec.Vector {
	force := desired.Sub(p.Velocity)
	force.LimitMax(SteerForce)
	return force
}

// Seek returns a steering force toward the target point at full speed.
func (p *Particle) Seek(target vec.Vector) vec.Vector {
	desired := target.Sub(p.Position)
	if desired.MagnitudeSq() == 0 {
		return vec.Vector{}
	}
	desired.SetMagnitude(p.MaxSpeed)
	return p.Steer(desired)
}

// Wander returns a small random steering force: the current heading
// jittered by up to WanderJitter radians either way. Stationary
// particles wander off in a random direction.
func (p *Particle) Wander() vec.Vector {
	dir := vec.Random2D()
	if p.Velocity.MagnitudeSq() > 0 {
		dir = p.Velocity.Copy()
		dir.SetMagnitude(1)
		dir.Rotate((2*rand.Float64() - 1) * WanderJitter)
	}
	return p.Steer(dir.Scale(p.MaxSpeed))
}

// Update advances the particle one tick.
//
// Velocity picks up the accumulated acceleration and is clamped to
// MaxSpeed, position picks up velocity, and the accumulator clears.
func (p *Particle) Update() {
	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Velocity.LimitMax(p.MaxSpeed)
	p.Position = p.Position.Add(p.Velocity)
	p.Acceleration = vec.Vector{}
}

// Wrap teleports the particle to the opposite edge when it leaves the
// [0,w) x [0,h) region. Returns true if it wrapped, so callers can cut
// trails instead of drawing a line across the screen.
func (p *Particle) Wrap(w, h float64) bool {
	wrapped := false
	if p.Position.X < 0 {
		p.Position.X += w
		wrapped = true
	} else if p.Position.X >= w {
		p.Position.X -= w
		wrapped = true
	}
	if p.Position.Y < 0 {
		p.Position.Y += h
		wrapped = true
	} else if p.Position.Y >= h {
		p.Position.Y -= h
		wrapped = true
	}
	return wrapped
}

// Heading returns the direction of travel in radians, or 0 for a
// stationary particle.
func (p *Particle) Heading() float64 {
	if p.Velocity.X == 0 && p.Velocity.Y == 0 {
		return 0
	}
	theta, err := p.Velocity.Angle()
	if err != nil {
		// 3D velocity; project onto the XY plane for drawing.
		flat := vec.New(p.Velocity.X, p.Velocity.Y, 0)
		theta, _ = flat.Angle()
	}
	return theta
}
