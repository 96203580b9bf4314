package bike

import "math"

// JumpState is an active lean jump.
//
// The frame gets an angular velocity kick toward Direction. Spin in the other
// direction is dropped first and what remains is kept in Reserved. After the
// kick duration the kick is taken back, but never past Reserved.
type JumpState struct {
	Direction Direction
	Elapsed   float64
	Reserved  float64
	reversed  bool
}

func startJump(frame *RigidBody, dir Direction, strength float64) *JumpState {
	s := dir.Sign()
	w := math.Max(s*frame.AngularVelocity(), 0)
	frame.SetAngularVelocity(s * (w + strength))
	return &JumpState{
		Direction: dir,
		Reserved:  s * w,
	}
}

// advance steps the jump by dt and reports whether it is still active.
func (j *JumpState) advance(frame *RigidBody, dt float64, t *Tuning) bool {
	j.Elapsed += dt
	if !j.reversed && j.Elapsed >= t.JumpDuration {
		j.reversed = true
		s := j.Direction.Sign()
		w := math.Max(s*frame.AngularVelocity()-t.JumpStrength, s*j.Reserved)
		frame.SetAngularVelocity(s * w)
	}
	return j.Elapsed <= t.JumpDuration+t.JumpPause
}
