package bike

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Tuning holds every physical constant of the simulation.
type Tuning struct {
	Gravity float64 `yaml:"gravity"`

	FrameMass    float64 `yaml:"frame_mass"`
	FrameInertia float64 `yaml:"frame_inertia"`
	// Radius of the frame center probe used for star pickups.
	FrameRadius float64 `yaml:"frame_radius"`

	WheelMass    float64 `yaml:"wheel_mass"`
	WheelInertia float64 `yaml:"wheel_inertia"`
	WheelRadius  float64 `yaml:"wheel_radius"`
	// Rest offset of the rear wheel anchor on the frame. The front anchor mirrors X.
	WheelX float64 `yaml:"wheel_x"`
	WheelY float64 `yaml:"wheel_y"`

	SuspensionStiffness float64 `yaml:"suspension_stiffness"`
	SuspensionFriction  float64 `yaml:"suspension_friction"`
	// Exponential amplification of large suspension forces, force *= (1+boost)^|force|.
	// Zero disables it.
	SuspensionBoost float64 `yaml:"suspension_boost"`

	BrakeStiffness float64 `yaml:"brake_stiffness"`
	BrakeDamping   float64 `yaml:"brake_damping"`

	Gas      float64 `yaml:"gas"`
	MaxSpeed float64 `yaml:"max_speed"`

	JumpStrength float64 `yaml:"jump_strength"`
	JumpDuration float64 `yaml:"jump_duration"`
	JumpPause    float64 `yaml:"jump_pause"`

	HeadX      float64 `yaml:"head_x"`
	HeadY      float64 `yaml:"head_y"`
	HeadRadius float64 `yaml:"head_radius"`

	StarRadius float64 `yaml:"star_radius"`

	// Rate at which the cosmetic facing blend moves toward ±1, per second.
	FacingRate float64 `yaml:"facing_rate"`

	Timestep float64 `yaml:"timestep"`
	// Maximum substeps per Advance call, 0 for no limit.
	MaxSubsteps int `yaml:"max_substeps"`
}

// DefaultTuning returns the stock bike.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity: 100,

		FrameMass:    20,
		FrameInertia: 5000,
		FrameRadius:  10,

		WheelMass:    1,
		WheelInertia: 50,
		WheelRadius:  8,
		WheelX:       17,
		WheelY:       12,

		SuspensionStiffness: 700,
		SuspensionFriction:  40,

		// The restoring spring feels weird while riding, so only the damper is on.
		BrakeStiffness: 0,
		BrakeDamping:   20000,

		Gas:      17000,
		MaxSpeed: 50,

		JumpStrength: 4,
		JumpDuration: 0.15,
		JumpPause:    0.35,

		HeadX:      0,
		HeadY:      -21,
		HeadRadius: 4.5,

		StarRadius: 8,

		FacingRate: 20,

		Timestep:    0.0002,
		MaxSubsteps: 2500,
	}
}

// LoadTuning decodes YAML from r on top of DefaultTuning and validates the result.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks the values that would otherwise divide by zero or never advance time.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"frame_mass", t.FrameMass},
		{"frame_inertia", t.FrameInertia},
		{"wheel_mass", t.WheelMass},
		{"wheel_inertia", t.WheelInertia},
		{"wheel_radius", t.WheelRadius},
		{"timestep", t.Timestep},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%s must be positive, got %v: %w", p.name, p.value, ErrInvalidTuning)
		}
	}
	if t.MaxSubsteps < 0 {
		return fmt.Errorf("max_substeps must not be negative, got %d: %w", t.MaxSubsteps, ErrInvalidTuning)
	}
	if t.SuspensionBoost < 0 {
		return fmt.Errorf("suspension_boost must not be negative, got %v: %w", t.SuspensionBoost, ErrInvalidTuning)
	}
	if t.JumpDuration < 0 || t.JumpPause < 0 {
		return fmt.Errorf("jump timings must not be negative: %w", ErrInvalidTuning)
	}
	return nil
}
