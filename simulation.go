package bike

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of an attempt.
type State uint8

const (
	Playing State = iota
	Completed
	GameOver
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Simulation runs a bike on a level with a fixed timestep decoupled from the frame rate.
//
// All state is owned by the goroutine calling Advance. Renderers running elsewhere
// should only ever receive Snapshot values.
type Simulation struct {
	logger *zap.Logger
	tuning Tuning
	level  *Level
	bike   *Bike

	attempt     string
	state       State
	time        float64 // wall clock time fed through Advance
	physicsTime float64
	stateTime   float64
	substeps    uint64
}

// NewSimulation validates tuning and starts the first attempt. A nil logger disables logging.
func NewSimulation(level *Level, tuning Tuning, logger *zap.Logger) (*Simulation, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}
	if level == nil {
		return nil, fmt.Errorf("new simulation: nil level")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulation{
		logger: logger.With(zap.String("level_name", level.Name())),
		tuning: tuning,
		level:  level,
	}
	s.Reset()
	return s, nil
}

// Reset revives the stars, rebuilds the bike at the start and zeroes both clocks.
func (s *Simulation) Reset() {
	s.level.Reset()
	s.bike = NewBike(s.level.Start(), s.tuning)
	s.state = Playing
	s.time = 0
	s.physicsTime = 0
	s.stateTime = 0
	s.substeps = 0
	s.attempt = uuid.NewString()
	s.logger.Debug("attempt started",
		zap.String("attempt", s.attempt),
		zap.Int("stars", s.level.StarCount()),
	)
}

// Advance feeds frameDelta seconds of wall clock time and runs as many substeps
// as fit. Substepping stops as soon as the attempt is completed or lost.
func (s *Simulation) Advance(frameDelta float64, in Input) State {
	s.stateTime += frameDelta
	if s.state != Playing {
		return s.state
	}
	s.time += frameDelta

	dt := s.tuning.Timestep
	steps := 0
	for s.physicsTime+dt < s.time {
		if s.tuning.MaxSubsteps > 0 && steps >= s.tuning.MaxSubsteps {
			s.logger.Warn("substep limit reached, dropping backlog",
				zap.String("attempt", s.attempt),
				zap.Int("substeps", steps),
				zap.Float64("backlog", s.time-s.physicsTime),
			)
			s.time = s.physicsTime
			break
		}
		s.physicsTime += dt
		s.bike.Update(dt, s.level, in)
		s.substeps++
		steps++

		if s.level.StarsRemaining() == 0 {
			s.setState(Completed)
			s.logger.Info("level completed",
				zap.String("attempt", s.attempt),
				zap.Stringer("time", NewLevelTime(s.physicsTime)),
				zap.Uint64("substeps", s.substeps),
			)
			break
		}
		if !s.bike.Alive() {
			s.setState(GameOver)
			s.logger.Info("rider died",
				zap.String("attempt", s.attempt),
				zap.Stringer("cause", s.bike.DeathCause()),
				zap.Float64("physics_time", s.physicsTime),
				zap.Int("stars_remaining", s.level.StarsRemaining()),
			)
			break
		}
	}
	return s.state
}

func (s *Simulation) setState(state State) {
	s.state = state
	s.stateTime = 0
}

// State returns the attempt state.
func (s *Simulation) State() State {
	return s.state
}

// StateTime returns the wall clock time since the last state change.
func (s *Simulation) StateTime() float64 {
	return s.stateTime
}

// PhysicsTime returns the simulated time of the attempt.
func (s *Simulation) PhysicsTime() float64 {
	return s.physicsTime
}

// Substeps returns the number of substeps run in this attempt.
func (s *Simulation) Substeps() uint64 {
	return s.substeps
}

// AttemptID identifies the current attempt in logs and records.
func (s *Simulation) AttemptID() string {
	return s.attempt
}

// Level returns the level.
func (s *Simulation) Level() *Level {
	return s.level
}

// Bike returns the bike of the current attempt.
func (s *Simulation) Bike() *Bike {
	return s.bike
}

// Tuning returns the constants of the simulation.
func (s *Simulation) Tuning() Tuning {
	return s.tuning
}

// Snapshot returns an immutable view of the attempt for renderers.
func (s *Simulation) Snapshot() Snapshot {
	snap := s.bike.Snapshot()
	snap.StarsRemaining = s.level.StarsRemaining()
	snap.StarCount = s.level.StarCount()
	snap.PhysicsTime = s.physicsTime
	snap.State = s.state
	return snap
}
