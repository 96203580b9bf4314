package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/bike"
	"github.com/setanarut/bike/internal/injector"
	"github.com/setanarut/bike/utils/records"
	"github.com/setanarut/vec"
	"golang.org/x/sync/errgroup"
)

const frameInterval = 16 * time.Millisecond

type screenState uint8

const (
	inMenu screenState = iota
	inLevel
)

type game struct {
	opts   options
	store  *records.Store
	screen tcell.Screen
	render *renderer
	sound  *sound
	keys   keyLatch

	state    screenState
	selected int
	menu     []menuEntry

	sim     *bike.Simulation
	cleanup func()
	best    bike.LevelTime
	newBest bool
	notice  string
}

func newGame(opts options, store *records.Store) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	g := &game{
		opts:   opts,
		store:  store,
		screen: screen,
		render: newRenderer(screen),
	}
	g.refreshMenu()
	snd, err := newSound(opts.mute)
	if err != nil {
		g.notice = fmt.Sprintf("sound disabled: %v", err)
	}
	g.sound = snd
	return g, nil
}

func (g *game) close() {
	g.closeLevel()
	g.sound.close()
	g.screen.Fini()
	if err := g.store.Save(); err != nil {
		fmt.Printf("bike: %v\n", err)
	}
}

// run pumps terminal events into the game loop until the player quits.
func (g *game) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 100)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		for {
			ev := g.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		// Wakes the pump from PollEvent after the context is done, so it
		// sees the cancellation instead of polling again.
		defer g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		defer cancel()
		return g.loop(ctx, events)
	})
	return eg.Wait()
}

func (g *game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := g.handle(ev)
			if err != nil || quit {
				return err
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.update(now, dt)
			g.draw()
		}
	}
}

func (g *game) handle(ev tcell.Event) (quit bool, err error) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, resized := ev.(*tcell.EventResize); resized {
			g.screen.Sync()
		}
		return false, nil
	}
	now := time.Now()
	switch key.Key() {
	case tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyEscape:
		if g.state == inMenu {
			return true, nil
		}
		g.toMenu()
		return false, nil
	case tcell.KeyEnter:
		return false, g.enter()
	}
	if g.state == inMenu {
		switch key.Key() {
		case tcell.KeyUp:
			g.selected = max(g.selected-1, 0)
		case tcell.KeyDown:
			g.selected = min(g.selected+1, len(g.menu)-1)
		}
		return false, nil
	}
	if c, ok := controlFor(key); ok {
		g.keys.press(c, now)
	}
	return false, nil
}

// enter starts the selected level from the menu, leaves a completed level and
// restarts any other attempt.
func (g *game) enter() error {
	switch {
	case g.state == inMenu:
		return g.openLevel(g.selected)
	case g.sim.State() == bike.Completed:
		g.toMenu()
	default:
		g.sim.Reset()
		g.keys.clear()
		g.store.RecordAttempt(g.sim.Level(), time.Now())
		g.newBest = false
	}
	return nil
}

func (g *game) openLevel(i int) error {
	level, err := loadLevel(g.opts.levels[i], g.opts)
	if err != nil {
		g.notice = err.Error()
		return nil
	}
	sim, cleanup, err := injector.InitializeSimulation(level, g.opts.tuning, g.opts.logPath)
	if err != nil {
		return err
	}
	g.sim, g.cleanup = sim, cleanup
	g.best = g.store.Best(level)
	g.newBest = false
	g.notice = ""
	g.keys.clear()
	g.state = inLevel
	g.store.RecordAttempt(level, time.Now())
	return nil
}

type menuEntry struct {
	name string
	best bike.LevelTime
}

// refreshMenu reloads the level names and best times.
func (g *game) refreshMenu() {
	g.menu = g.menu[:0]
	for _, path := range g.opts.levels {
		entry := menuEntry{name: path, best: bike.InvalidLevelTime}
		if level, err := loadLevel(path, g.opts); err == nil {
			entry.name = level.Name()
			entry.best = g.store.Best(level)
		}
		g.menu = append(g.menu, entry)
	}
}

func (g *game) toMenu() {
	g.closeLevel()
	g.state = inMenu
	g.refreshMenu()
}

func (g *game) closeLevel() {
	if g.cleanup != nil {
		g.cleanup()
	}
	g.sim, g.cleanup = nil, nil
}

func (g *game) update(now time.Time, dt float64) {
	if g.state != inLevel {
		return
	}
	before := g.sim.State()
	stars := g.sim.Level().StarsRemaining()

	after := g.sim.Advance(dt, g.keys.Input(now))

	if g.sim.Level().StarsRemaining() < stars && after != bike.Completed {
		g.sound.play(cueStar)
	}
	if before == bike.Playing && after != bike.Playing {
		switch after {
		case bike.Completed:
			g.newBest = g.store.Submit(g.sim.Level(), bike.NewLevelTime(g.sim.PhysicsTime()))
			g.best = g.store.Best(g.sim.Level())
			g.sound.play(cueFinish)
		case bike.GameOver:
			g.sound.play(cueCrash)
		}
	}
}

func (g *game) draw() {
	switch g.state {
	case inMenu:
		g.drawMenu()
	case inLevel:
		g.drawLevel()
	}
	g.render.show()
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	focusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func (g *game) drawMenu() {
	r := g.render
	r.begin(vec.Vec2{})
	r.text(2, 1, "SELECT LEVEL", textStyle)
	for i, entry := range g.menu {
		style := textStyle
		if i == g.selected {
			style = focusStyle
		}
		r.text(2, 3+i, fmt.Sprintf(" %-32s %s ", entry.name, entry.best), style)
	}
	r.text(2, 4+len(g.menu), "up/down select  enter play  esc quit", dimStyle)
	if g.notice != "" {
		r.text(2, 6+len(g.menu), g.notice, dimStyle)
	}
}

func (g *game) drawLevel() {
	r := g.render
	snap := g.sim.Snapshot()
	r.begin(snap.Frame.Position)
	bike.DrawLevel(g.sim.Level(), r)
	bike.DrawSnapshot(snap, g.sim.Tuning(), r)

	hud := fmt.Sprintf(" stars %d/%d  time %s  best %s ",
		snap.StarCount-snap.StarsRemaining, snap.StarCount,
		bike.NewLevelTime(snap.PhysicsTime), g.best)
	r.text(0, 0, hud, textStyle)

	var banner string
	switch snap.State {
	case bike.Completed:
		banner = "LEVEL COMPLETED  enter: menu"
		if g.newBest {
			banner = "NEW BEST TIME  enter: menu"
		}
	case bike.GameOver:
		banner = fmt.Sprintf("GAME OVER (%s)  enter: retry  esc: menu", g.sim.Bike().DeathCause())
	}
	if banner != "" {
		r.text(max((r.w-len(banner))/2, 0), r.h/2-4, banner, focusStyle)
	}
	if g.notice != "" {
		r.text(0, r.h-1, g.notice, dimStyle)
	}
}
