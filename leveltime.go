package bike

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// LevelTime is a completion time in centiseconds.
type LevelTime uint32

// InvalidLevelTime marks a level that was never completed.
const InvalidLevelTime LevelTime = 0xffffffff

// NewLevelTime truncates seconds to centiseconds. Negative and NaN inputs give
// zero; times too long to represent saturate just below InvalidLevelTime.
func NewLevelTime(seconds float64) LevelTime {
	cs := math.Floor(seconds * 100)
	switch {
	case !(cs > 0):
		return 0
	case cs >= float64(InvalidLevelTime):
		return InvalidLevelTime - 1
	}
	return LevelTime(cs)
}

// Valid reports whether t is a real time.
func (t LevelTime) Valid() bool {
	return t != InvalidLevelTime
}

// Seconds returns t in seconds.
func (t LevelTime) Seconds() float64 {
	return float64(t) / 100
}

// String formats t as MM:SS:CC.
func (t LevelTime) String() string {
	if !t.Valid() {
		return "--:--:--"
	}
	return fmt.Sprintf("%02d:%02d:%02d", t/(100*60), t/100%60, t%100)
}

// ParseLevelTime parses the String form.
func ParseLevelTime(s string) (LevelTime, error) {
	if s == "--:--:--" {
		return InvalidLevelTime, nil
	}
	var m, sec, cs uint32
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &m, &sec, &cs); err != nil {
		return InvalidLevelTime, fmt.Errorf("parse level time %q: %w", s, err)
	}
	if sec >= 60 || cs >= 100 {
		return InvalidLevelTime, fmt.Errorf("parse level time %q: out of range", s)
	}
	return LevelTime(m*6000 + sec*100 + cs), nil
}

// MarshalYAML implements yaml.Marshaler.
func (t LevelTime) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *LevelTime) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseLevelTime(node.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
