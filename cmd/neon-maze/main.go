// Command neon-maze is the terminal frontend: a top-down tcell view of
// the simulation with beep audio cues.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neon-maze/core"
	"github.com/lixenwraith/neon-maze/event"
	"github.com/lixenwraith/neon-maze/game"
	"github.com/lixenwraith/neon-maze/level"
	"github.com/lixenwraith/neon-maze/parameter"
)

// moveHoldWindow is how long a direction key keeps its axis engaged.
// Terminals report repeats, not releases, so held keys refresh the stamp.
const moveHoldWindow = 200 * time.Millisecond

type frontend struct {
	screen tcell.Screen
	ctx    *game.Context
	audio  *cuePlayer

	// Directional intent with per-axis timestamps
	moveX, moveZ     float64
	moveXAt, moveZAt time.Time

	boost    bool
	fullView bool
	muted    bool
	quit     bool
}

func main() {
	configPath := flag.String("config", "", "level config file (YAML)")
	seed := flag.Int64("seed", 0, "RNG seed override (0 = from config/clock)")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	cfg := level.DefaultConfig()
	if *configPath != "" {
		loaded, err := level.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, err := game.NewContext(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	if err := ctx.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	f := &frontend{
		screen: screen,
		ctx:    ctx,
		audio:  newCuePlayer(),
		muted:  *mute,
	}
	if err := f.audio.init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	}

	f.run()
}

func (f *frontend) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	for !f.quit {
		select {
		case ev := <-events:
			f.handleEvent(ev)
		case <-ticker.C:
			f.frame()
		}
	}
}

func (f *frontend) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		f.handleKey(tev)
	}
}

func (f *frontend) handleKey(ev *tcell.EventKey) {
	now := time.Now()
	input := f.ctx.Input()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.quit = true
		return
	case tcell.KeyUp:
		f.moveZ, f.moveZAt = -1, now
	case tcell.KeyDown:
		f.moveZ, f.moveZAt = 1, now
	case tcell.KeyLeft:
		f.moveX, f.moveXAt = -1, now
	case tcell.KeyRight:
		f.moveX, f.moveXAt = 1, now
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			f.quit = true
			return
		case 'w', 'k':
			f.moveZ, f.moveZAt = -1, now
		case 's', 'j':
			f.moveZ, f.moveZAt = 1, now
		case 'a', 'h':
			f.moveX, f.moveXAt = -1, now
		case 'd', 'l':
			f.moveX, f.moveXAt = 1, now
		case ' ':
			input.Jump = true
		case 'b':
			f.boost = !f.boost
		case 'r':
			input.Restart = true
		case 'c':
			input.CameraToggle = true
		case 'm':
			input.MuteToggle = true
		case 'p':
			if f.ctx.Paused() {
				f.ctx.Resume()
			} else {
				f.ctx.Pause()
			}
		}
	}
}

func (f *frontend) frame() {
	now := time.Now()
	if now.Sub(f.moveXAt) > moveHoldWindow {
		f.moveX = 0
	}
	if now.Sub(f.moveZAt) > moveHoldWindow {
		f.moveZ = 0
	}

	input := f.ctx.Input()
	input.MoveX = f.moveX
	input.MoveZ = f.moveZ
	input.Boost = f.boost

	f.ctx.Step()

	for _, ev := range f.ctx.DrainEvents() {
		f.consume(ev)
	}

	f.render()
}

func (f *frontend) consume(ev event.GameEvent) {
	switch ev.Type {
	case event.EventCameraToggle:
		f.fullView = !f.fullView
	case event.EventMuteToggle:
		f.muted = !f.muted
	default:
		if !f.muted {
			f.audio.play(ev.Type)
		}
	}

	// Boost toggle is sticky in the frontend; drop it when the
	// simulation cuts boost at the energy floor
	if ev.Type == event.EventBoostEnd {
		f.boost = false
	}

	if ev.Type == event.EventDamage {
		if p, ok := ev.Payload.(*event.DamagePayload); ok && p.Fatal {
			f.boost = false
		}
	}
}

// phaseLabel is the HUD banner per phase.
func phaseLabel(p core.GamePhase) string {
	switch p {
	case core.PhaseLoading:
		return "LOADING"
	case core.PhaseTransitioning:
		return "LEVEL COMPLETE"
	case core.PhaseGameOver:
		return "GAME OVER - press r to restart"
	case core.PhaseGameWon:
		return "YOU WIN - press r to play again"
	default:
		return ""
	}
}
