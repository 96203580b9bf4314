package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/setanarut/bike"
	"github.com/setanarut/bike/internal/injector"
	"github.com/setanarut/bike/utils/records"
	"golang.org/x/sync/errgroup"
)

// headlessFrame is the frame delta fed to the simulation in headless runs.
const headlessFrame = 1.0 / 60

type outcome struct {
	path  string
	name  string
	state bike.State
	cause bike.DeathCause
	time  float64
	stars int
	total int
	best  bike.LevelTime
	isNew bool
}

func (o outcome) String() string {
	s := fmt.Sprintf("%-24s %-10s %d/%d stars  %6.2fs", o.name, o.state, o.total-o.stars, o.total, o.time)
	switch o.state {
	case bike.GameOver:
		s += "  " + o.cause.String()
	case bike.Completed:
		s += "  best " + o.best.String()
		if o.isNew {
			s += " (new)"
		}
	}
	return s
}

// runHeadless simulates every level in parallel with the accelerator held.
func runHeadless(ctx context.Context, opts options, store *records.Store, w io.Writer) error {
	results := make([]outcome, len(opts.levels))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range opts.levels {
		g.Go(func() error {
			o, err := simulateHeadless(ctx, path, opts, store)
			if err != nil {
				return err
			}
			results[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range results {
		fmt.Fprintln(w, o)
	}
	return store.Save()
}

func simulateHeadless(ctx context.Context, path string, opts options, store *records.Store) (outcome, error) {
	level, err := loadLevel(path, opts)
	if err != nil {
		return outcome{}, err
	}
	sim, cleanup, err := injector.InitializeSimulation(level, opts.tuning, opts.logPath)
	if err != nil {
		return outcome{}, err
	}
	defer cleanup()

	store.RecordAttempt(level, time.Now())
	in := bike.Input{Wheel: bike.WheelAccelerate}
	for elapsed := 0.0; elapsed < opts.headless; elapsed += headlessFrame {
		if err := ctx.Err(); err != nil {
			return outcome{}, err
		}
		if sim.Advance(headlessFrame, in) != bike.Playing {
			break
		}
	}

	o := outcome{
		path:  path,
		name:  level.Name(),
		state: sim.State(),
		cause: sim.Bike().DeathCause(),
		time:  sim.PhysicsTime(),
		stars: level.StarsRemaining(),
		total: level.StarCount(),
	}
	if o.state == bike.Completed {
		o.isNew = store.Submit(level, bike.NewLevelTime(sim.PhysicsTime()))
	}
	o.best = store.Best(level)
	return o, nil
}
