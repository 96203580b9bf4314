package bike

import "github.com/setanarut/vec"

// BodySnapshot is the pose of one body.
type BodySnapshot struct {
	Position vec.Vec2
	Angle    float64
}

// Snapshot is an immutable copy of everything a renderer may read after a substep.
type Snapshot struct {
	Frame       BodySnapshot
	Wheels      [2]BodySnapshot
	Head        vec.Vec2
	Facing      Direction
	FacingBlend float64
	Alive       bool
	Braking     bool

	StarsRemaining int
	StarCount      int
	PhysicsTime    float64
	State          State
}

// Snapshot copies the bike pose. Level and clock fields are left zero.
func (b *Bike) Snapshot() Snapshot {
	s := Snapshot{
		Frame:       BodySnapshot{b.frame.Position(), b.frame.Angle()},
		Head:        b.HeadPosition(),
		Facing:      b.facing,
		FacingBlend: b.facingBlend,
		Alive:       b.alive,
		Braking:     b.braking,
	}
	for i, w := range b.wheels {
		s.Wheels[i] = BodySnapshot{w.Position(), w.Angle()}
	}
	return s
}
