package bike

// Direction is Left or Right. The zero value means no direction.
type Direction int8

const (
	NoDirection Direction = 0
	Left        Direction = -1
	Right       Direction = 1
)

// Sign returns -1 for Left, 1 for Right and 0 otherwise.
func (d Direction) Sign() float64 {
	return float64(d)
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// WheelCommand is what the rider does with the rear wheel.
type WheelCommand uint8

const (
	WheelNone WheelCommand = iota
	WheelBrake
	WheelAccelerate
)

func (c WheelCommand) String() string {
	switch c {
	case WheelBrake:
		return "brake"
	case WheelAccelerate:
		return "accelerate"
	default:
		return "none"
	}
}

// Input is the discrete per-substep command. The simulation reads nothing else.
type Input struct {
	// Held to flip facing; only the rising edge counts.
	ToggleDirection bool
	Wheel           WheelCommand
	// Lean jump direction, NoDirection when not jumping.
	Jump Direction
}
