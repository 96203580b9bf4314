package bike

import (
	"math"

	"github.com/setanarut/vec"
)

// Suspension is a damped spring between an anchor on the frame and a wheel center.
type Suspension struct {
	// Anchor is the rest position of the wheel in frame coordinates.
	Anchor    vec.Vec2
	Stiffness float64
	Damping   float64
	// Boost amplifies large forces exponentially. Zero disables it.
	Boost float64
}

// Arm returns the anchor offset rotated into world space.
func (s *Suspension) Arm(frame *RigidBody) vec.Vec2 {
	return frame.Transform().ApplyVector(s.Anchor)
}

// Apply adds the spring and damper forces to the wheel, the opposite forces to
// the frame and the torque they generate about the frame center.
func (s *Suspension) Apply(frame, wheel *RigidBody) {
	arm := s.Arm(frame)
	anchor := frame.Position().Add(arm)

	spring := anchor.Sub(wheel.Position()).Scale(s.Stiffness)
	s.applyForce(frame, wheel, s.boost(spring), arm)

	// relative velocity of the anchor point
	dv := frame.Velocity().Add(arm.Perp().Scale(frame.AngularVelocity())).Sub(wheel.Velocity())
	s.applyForce(frame, wheel, s.boost(dv.Scale(s.Damping)), arm)
}

func (s *Suspension) applyForce(frame, wheel *RigidBody, force, arm vec.Vec2) {
	wheel.ApplyForce(force)
	frame.ApplyForce(force.Neg())
	frame.ApplyTorque(force.Cross(arm))
}

func (s *Suspension) boost(force vec.Vec2) vec.Vec2 {
	if s.Boost == 0 {
		return force
	}
	return force.Scale(math.Pow(1+s.Boost, force.Mag()))
}
