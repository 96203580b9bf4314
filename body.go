package bike

import (
	"fmt"
	"math"

	"github.com/setanarut/vec"
)

// RigidBody is a minimal 2D rigid body integrated with semi-implicit Euler.
//
// The force and torque accumulators are cleared and reseeded with gravity after
// every Integrate call, so callers only ever add to them.
type RigidBody struct {
	mass                   float64 // Mass
	massInverse            float64 // Mass inverse
	momentOfInertia        float64 // Moment of inertia
	momentOfInertiaInverse float64 // Inverse of moment of inertia
	gravity                vec.Vec2
	angle                  float64 // Angle (radians)
	w                      float64 // Angular velocity
	torque                 float64
	position               vec.Vec2
	velocity               vec.Vec2
	force                  vec.Vec2
}

// NewRigidBody initializes a rigid body with the given mass, moment of inertia
// and gravity acceleration.
func NewRigidBody(mass, moment float64, gravity vec.Vec2) *RigidBody {
	body := &RigidBody{gravity: gravity}
	body.SetMass(mass)
	body.SetMoment(moment)
	body.ResetForces()
	return body
}

func (body RigidBody) String() string {
	return fmt.Sprintf("Body pos=%v angle=%.4f vel=%v w=%.4f", body.position, body.angle, body.velocity, body.w)
}

// Mass returns mass of the body
func (body *RigidBody) Mass() float64 {
	return body.mass
}

// SetMass sets mass of the body
func (body *RigidBody) SetMass(mass float64) {
	body.mass = mass
	body.massInverse = 1 / mass
}

// Moment returns moment of inertia of the body.
func (body *RigidBody) Moment() float64 {
	return body.momentOfInertia
}

// SetMoment sets moment of inertia of the body.
func (body *RigidBody) SetMoment(moment float64) {
	body.momentOfInertia = moment
	body.momentOfInertiaInverse = 1 / moment
}

// Angle returns the angle of the body.
func (body *RigidBody) Angle() float64 {
	return body.angle
}

// SetAngle sets the angle of body.
func (body *RigidBody) SetAngle(angle float64) {
	body.angle = angle
}

// Rotation returns the rotation vector of the body.
func (body *RigidBody) Rotation() vec.Vec2 {
	return vec.ForAngle(body.angle)
}

// Position returns the position of the body.
func (body *RigidBody) Position() vec.Vec2 {
	return body.position
}

// SetPosition sets the position of the body.
func (body *RigidBody) SetPosition(position vec.Vec2) {
	body.position = position
}

// Velocity returns the velocity of the body.
func (body *RigidBody) Velocity() vec.Vec2 {
	return body.velocity
}

// SetVelocity sets the velocity of the body
func (body *RigidBody) SetVelocity(v vec.Vec2) {
	body.velocity = v
}

// AngularVelocity returns the angular velocity of the body.
func (body *RigidBody) AngularVelocity() float64 {
	return body.w
}

// SetAngularVelocity sets the angular velocity of the body.
func (body *RigidBody) SetAngularVelocity(angularVelocity float64) {
	body.w = angularVelocity
}

// Force returns the force accumulated for the next integration.
func (body *RigidBody) Force() vec.Vec2 {
	return body.force
}

// Torque returns the torque accumulated for the next integration.
func (body *RigidBody) Torque() float64 {
	return body.torque
}

// ApplyForce adds force to the accumulator.
func (body *RigidBody) ApplyForce(force vec.Vec2) {
	body.force = body.force.Add(force)
}

// ApplyTorque adds torque to the accumulator.
func (body *RigidBody) ApplyTorque(torque float64) {
	body.torque += torque
}

// ResetForces clears torque and reseeds the force accumulator with gravity.
func (body *RigidBody) ResetForces() {
	body.force = body.gravity.Scale(body.mass)
	body.torque = 0
}

// Transform returns the rigid transform of the body.
func (body *RigidBody) Transform() Transform {
	return NewTransformRigid(body.position, body.angle)
}

// Integrate advances the body by dt. Velocities are updated before positions.
func (body *RigidBody) Integrate(dt float64) {
	body.w += body.torque * body.momentOfInertiaInverse * dt
	body.velocity = body.velocity.Add(body.force.Scale(body.massInverse * dt))
	body.updatePosition(dt)
	body.ResetForces()
}

func (body *RigidBody) updatePosition(dt float64) {
	body.angle += body.w * dt
	body.position = body.position.Add(body.velocity.Scale(dt))
}

// WrapAngle wraps the angle into [0, 2π).
func (body *RigidBody) WrapAngle() {
	body.angle = wrapAngle(body.angle)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
