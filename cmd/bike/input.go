package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/setanarut/bike"
)

// Terminals report key presses and auto repeats but never releases, so a key
// counts as held until holdWindow passes without another event for it. The
// window has to outlast the initial auto repeat delay of common terminals.
// The toggle is not held: every press is one tap.
const holdWindow = 550 * time.Millisecond

type control uint8

const (
	ctrlUp control = iota
	ctrlDown
	ctrlLeft
	ctrlRight
	ctrlToggle
	ctrlCount
)

type keyLatch struct {
	last [ctrlCount]time.Time
	// taps not yet handed out, and whether the previous Input carried one
	taps    int
	tapping bool
}

// controlFor maps a key event to a held control.
func controlFor(ev *tcell.EventKey) (control, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ctrlUp, true
	case tcell.KeyDown:
		return ctrlDown, true
	case tcell.KeyLeft:
		return ctrlLeft, true
	case tcell.KeyRight:
		return ctrlRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ctrlToggle, true
		case 'w', 'k':
			return ctrlUp, true
		case 's', 'j':
			return ctrlDown, true
		case 'a', 'h':
			return ctrlLeft, true
		case 'd', 'l':
			return ctrlRight, true
		}
	}
	return 0, false
}

func (k *keyLatch) press(c control, now time.Time) {
	if c == ctrlToggle {
		k.taps++
		return
	}
	k.last[c] = now
}

func (k *keyLatch) held(c control, now time.Time) bool {
	t := k.last[c]
	return !t.IsZero() && now.Sub(t) < holdWindow
}

func (k *keyLatch) clear() {
	*k = keyLatch{}
}

// tap hands out one pending toggle. A tap is followed by an Input without one,
// so back to back taps each make a rising edge.
func (k *keyLatch) tap() bool {
	if k.tapping || k.taps == 0 {
		k.tapping = false
		return false
	}
	k.taps--
	k.tapping = true
	return true
}

// Input builds the bike input for the keys held at now and consumes at most
// one toggle tap.
func (k *keyLatch) Input(now time.Time) bike.Input {
	up, down := k.held(ctrlUp, now), k.held(ctrlDown, now)
	left, right := k.held(ctrlLeft, now), k.held(ctrlRight, now)

	in := bike.Input{ToggleDirection: k.tap()}
	switch {
	case down && !up:
		in.Wheel = bike.WheelBrake
	case up && !down:
		in.Wheel = bike.WheelAccelerate
	}
	switch {
	case left && !right:
		in.Jump = bike.Left
	case right && !left:
		in.Jump = bike.Right
	}
	return in
}
