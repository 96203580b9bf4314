package bike

import (
	"math"

	"github.com/setanarut/vec"
)

// DeathCause tells why a bike died.
type DeathCause uint8

const (
	Survived DeathCause = iota
	// A wheel touched a hazard polygon.
	HitHazard
	// The rider's head touched any polygon.
	HitHead
)

func (c DeathCause) String() string {
	switch c {
	case HitHazard:
		return "hazard"
	case HitHead:
		return "head"
	default:
		return "none"
	}
}

// Bike is a frame body connected to two wheel bodies by suspensions.
//
// Wheel 0 starts at the left (rear when facing right), wheel 1 at the right.
type Bike struct {
	tuning      Tuning
	frame       *RigidBody
	wheels      [2]*RigidBody
	suspensions [2]Suspension
	brake       Brake

	alive       bool
	cause       DeathCause
	facing      Direction
	facingBlend float64
	toggling    bool
	braking     bool
	jump        *JumpState
	lastJump    Direction
}

// NewBike places a bike at start with the wheel bottoms resting on the start point.
func NewBike(start vec.Vec2, tuning Tuning) *Bike {
	t := tuning
	gravity := vec.Vec2{X: 0, Y: t.Gravity}
	b := &Bike{
		tuning:      t,
		frame:       NewRigidBody(t.FrameMass, t.FrameInertia, gravity),
		alive:       true,
		facing:      Right,
		facingBlend: 1,
		brake:       Brake{Stiffness: t.BrakeStiffness, Damping: t.BrakeDamping},
	}
	framePos := start.Sub(vec.Vec2{X: 0, Y: t.WheelY + t.WheelRadius})
	b.frame.SetPosition(framePos)

	anchors := [2]vec.Vec2{{X: -t.WheelX, Y: t.WheelY}, {X: t.WheelX, Y: t.WheelY}}
	for i, anchor := range anchors {
		b.suspensions[i] = Suspension{
			Anchor:    anchor,
			Stiffness: t.SuspensionStiffness,
			Damping:   t.SuspensionFriction,
			Boost:     t.SuspensionBoost,
		}
		wheel := NewRigidBody(t.WheelMass, t.WheelInertia, gravity)
		wheel.SetPosition(framePos.Add(anchor))
		b.wheels[i] = wheel
	}
	return b
}

// Frame returns the frame body.
func (b *Bike) Frame() *RigidBody {
	return b.frame
}

// Wheel returns wheel i (0 or 1).
func (b *Bike) Wheel(i int) *RigidBody {
	return b.wheels[i]
}

// Alive reports whether the rider is still alive.
func (b *Bike) Alive() bool {
	return b.alive
}

// DeathCause returns what killed the rider, Survived while alive.
func (b *Bike) DeathCause() DeathCause {
	return b.cause
}

// Facing returns the current facing.
func (b *Bike) Facing() Direction {
	return b.facing
}

// FacingBlend returns the cosmetic mirror factor in [-1, 1].
func (b *Bike) FacingBlend() float64 {
	return b.facingBlend
}

// Braking reports whether the brake is engaged.
func (b *Bike) Braking() bool {
	return b.braking
}

// Jump returns the active jump, nil when idle.
func (b *Bike) Jump() *JumpState {
	return b.jump
}

// Tuning returns the constants the bike was built with.
func (b *Bike) Tuning() Tuning {
	return b.tuning
}

// HeadPosition returns the world position of the rider's head.
func (b *Bike) HeadPosition() vec.Vec2 {
	return b.frame.Transform().Apply(vec.Vec2{X: b.tuning.HeadX, Y: b.tuning.HeadY})
}

// Update advances the bike by one substep of length dt.
func (b *Bike) Update(dt float64, level *Level, in Input) {
	t := &b.tuning

	// toggle direction
	if in.ToggleDirection && !b.toggling {
		b.facing = b.facing.Opposite()
	}
	b.toggling = in.ToggleDirection
	if b.facing == Right {
		b.facingBlend = math.Min(1, b.facingBlend+dt*t.FacingRate)
	} else {
		b.facingBlend = math.Max(-1, b.facingBlend-dt*t.FacingRate)
	}

	// brake
	braking := in.Wheel == WheelBrake
	if braking && !b.braking {
		b.brake.Engage(b.frame, b.wheels)
	}
	b.braking = braking
	if braking {
		b.brake.Apply(b.frame, b.wheels)
	} else {
		b.frame.WrapAngle()
		b.wheels[0].WrapAngle()
		b.wheels[1].WrapAngle()
	}

	// gas
	if in.Wheel == WheelAccelerate {
		wheel := b.driveWheel()
		s := b.facing.Sign()
		if s*wheel.AngularVelocity() < t.MaxSpeed {
			wheel.ApplyTorque(t.Gas * s)
			b.frame.ApplyTorque(-t.Gas * s)
		}
	}

	// suspension
	for i := range b.wheels {
		b.suspensions[i].Apply(b.frame, b.wheels[i])
	}

	// jump
	if b.jump != nil {
		if !b.jump.advance(b.frame, dt, t) {
			b.jump = nil
		}
	} else if in.Jump != NoDirection && in.Jump != b.lastJump {
		b.jump = startJump(b.frame, in.Jump, t.JumpStrength)
	}
	b.lastJump = in.Jump

	b.frame.Integrate(dt)

	for _, wheel := range b.wheels {
		c, ok := level.Query(wheel.Position(), t.WheelRadius)
		if ok && c.Kind == Hazard {
			b.kill(HitHazard)
			ok = false
		}
		resolveWheel(wheel, c, ok, t.WheelRadius, dt)
	}

	head := b.HeadPosition()
	if _, ok := level.Query(head, t.HeadRadius); ok {
		b.kill(HitHead)
	}

	level.Pickup(head, t.HeadRadius)
	level.Pickup(b.frame.Position(), t.FrameRadius)
	for _, wheel := range b.wheels {
		level.Pickup(wheel.Position(), t.WheelRadius)
	}
}

// driveWheel returns the wheel behind the rider.
func (b *Bike) driveWheel() *RigidBody {
	if b.facing == Left {
		return b.wheels[1]
	}
	return b.wheels[0]
}

func (b *Bike) kill(cause DeathCause) {
	if b.alive {
		b.cause = cause
	}
	b.alive = false
}

// resolveWheel integrates a wheel, turning its motion into rolling about the
// contact when it moves into a wall.
func resolveWheel(wheel *RigidBody, c Contact, ok bool, radius, dt float64) {
	if !ok {
		wheel.Integrate(dt)
		return
	}
	n := c.Normal
	wheel.position = wheel.position.Add(n.Scale(c.Penetration))
	if n.Dot(wheel.velocity) >= 0 {
		wheel.Integrate(dt)
		return
	}

	wheel.w = n.Cross(wheel.velocity) / radius
	wheel.torque += n.Cross(wheel.force) * radius
	wheel.w += wheel.torque * wheel.momentOfInertiaInverse * dt
	wheel.velocity = n.Perp().Scale(wheel.w * radius)

	wheel.updatePosition(dt)
	wheel.ResetForces()
}
