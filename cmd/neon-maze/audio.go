package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/neon-maze/event"
)

const sampleRate = beep.SampleRate(44100)

// cue is one synthesized tone burst.
type cue struct {
	freq     float64
	duration time.Duration
}

// cuePlayer maps simulation events to short sine bursts. No assets; every
// sound is generated.
type cuePlayer struct {
	ready bool
	cues  map[event.EventType]cue
}

func newCuePlayer() *cuePlayer {
	return &cuePlayer{
		cues: map[event.EventType]cue{
			event.EventMoveTick:   {freq: 220, duration: 20 * time.Millisecond},
			event.EventJump:       {freq: 440, duration: 60 * time.Millisecond},
			event.EventBoostStart: {freq: 520, duration: 40 * time.Millisecond},
			event.EventCollect:    {freq: 880, duration: 70 * time.Millisecond},
			event.EventPowerUp:    {freq: 660, duration: 90 * time.Millisecond},
			event.EventDamage:     {freq: 110, duration: 120 * time.Millisecond},
			event.EventScrape:     {freq: 150, duration: 50 * time.Millisecond},
			event.EventEnemyAlert: {freq: 330, duration: 80 * time.Millisecond},
			event.EventLevelUp:    {freq: 990, duration: 150 * time.Millisecond},
			event.EventLevelReady: {freq: 780, duration: 100 * time.Millisecond},
		},
	}
}

func (p *cuePlayer) init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		p.ready = true
	}
	return err
}

func (p *cuePlayer) play(t event.EventType) {
	if !p.ready {
		return
	}
	c, ok := p.cues[t]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(c.duration), sine))
}
