package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type cue struct {
	freq     float64
	duration time.Duration
}

var (
	cueStar   = []cue{{1320, 60 * time.Millisecond}}
	cueCrash  = []cue{{220, 90 * time.Millisecond}, {110, 160 * time.Millisecond}}
	cueFinish = []cue{{660, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1320, 160 * time.Millisecond}}
)

// sound plays short tones. The zero value is muted.
type sound struct {
	enabled bool
}

// newSound opens the speaker. Failing to do so is not fatal, the game runs muted.
func newSound(mute bool) (*sound, error) {
	if mute {
		return &sound{}, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &sound{}, err
	}
	return &sound{enabled: true}, nil
}

func (s *sound) play(cues []cue) {
	if s == nil || !s.enabled {
		return
	}
	streamers := make([]beep.Streamer, 0, len(cues))
	for _, c := range cues {
		sine, err := generators.SineTone(sampleRate, c.freq)
		if err != nil {
			continue
		}
		tone := beep.Take(sampleRate.N(c.duration), sine)
		streamers = append(streamers, &effects.Volume{Streamer: tone, Base: 2, Volume: -2})
	}
	speaker.Play(beep.Seq(streamers...))
}

func (s *sound) close() {
	if s != nil && s.enabled {
		speaker.Close()
	}
}
