package bike

// Brake is a damped rotary spring between the frame and each wheel.
//
// Lock angles are the relative wheel angles captured when the brake engages and
// serve as the spring rest angles until it is released.
type Brake struct {
	Stiffness float64
	Damping   float64
	lock      [2]float64
}

// Engage captures the current relative angle of each wheel.
func (b *Brake) Engage(frame *RigidBody, wheels [2]*RigidBody) {
	for i, wheel := range wheels {
		b.lock[i] = wheel.Angle() - frame.Angle()
	}
}

// LockAngle returns the rest angle captured for wheel i.
func (b *Brake) LockAngle(i int) float64 {
	return b.lock[i]
}

// Apply pulls each wheel back toward its lock angle. The reaction torque goes to the frame.
func (b *Brake) Apply(frame *RigidBody, wheels [2]*RigidBody) {
	for i, wheel := range wheels {
		da := wheel.Angle() - frame.Angle() - b.lock[i]
		dw := wheel.AngularVelocity() - frame.AngularVelocity()
		torque := da*b.Stiffness + dw*b.Damping
		wheel.ApplyTorque(-torque)
		frame.ApplyTorque(torque)
	}
}
