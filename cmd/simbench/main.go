// Command simbench drives the simulation headless as fast as it will go,
// with synthetic input, and reports per-frame cost and event volume.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/neon-maze/game"
	"github.com/lixenwraith/neon-maze/level"
)

func main() {
	frames := flag.Int("frames", 10000, "number of frames to simulate")
	seed := flag.Int64("seed", 1, "RNG seed (also seeds synthetic input)")
	configPath := flag.String("config", "", "level config file (YAML)")
	verbose := flag.Bool("v", false, "per-event-type breakdown")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := level.DefaultConfig()
	if *configPath != "" {
		cfg, err = level.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	cfg.Seed = *seed

	ctx, err := game.NewContext(cfg)
	if err != nil {
		logger.Fatal("init context", zap.Error(err))
	}
	if err := ctx.Start(); err != nil {
		logger.Fatal("start", zap.Error(err))
	}

	logger.Info("benchmark start",
		zap.Int("frames", *frames),
		zap.Int64("seed", *seed),
		zap.Int("initial_size", cfg.InitialSize),
	)

	inputRng := rand.New(rand.NewSource(*seed))
	input := ctx.Input()

	eventCounts := make(map[string]int)
	totalEvents := 0

	start := time.Now()
	for frame := 0; frame < *frames; frame++ {
		// Random-walk intent, re-rolled every half second of frames
		if frame%30 == 0 {
			input.MoveX = float64(inputRng.Intn(3) - 1)
			input.MoveZ = float64(inputRng.Intn(3) - 1)
			input.Boost = inputRng.Intn(4) == 0
			input.Jump = inputRng.Intn(10) == 0
		}

		ctx.Step()

		for _, ev := range ctx.DrainEvents() {
			totalEvents++
			if *verbose {
				eventCounts[ev.Type.String()]++
			}
		}
	}
	elapsed := time.Since(start)

	snap := ctx.Snapshot()
	logger.Info("benchmark done",
		zap.Duration("elapsed", elapsed),
		zap.Int64("avg_frame_ns", elapsed.Nanoseconds()/int64(*frames)),
		zap.Int("events", totalEvents),
		zap.Int("score", snap.Score),
		zap.Int("level", snap.Level),
		zap.Int("health", snap.Health),
		zap.String("phase", snap.Phase.String()),
	)

	if *verbose {
		for name, count := range eventCounts {
			logger.Info("event volume", zap.String("type", name), zap.Int("count", count))
		}
	}
}
