package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/internal/simulation"
)

var (
	// configFlag points to a JSON or TOML config, empty runs with the defaults.
	configFlag = flag.String("config", "", "path to the configuration file (.json or .toml)")

	// schemaFlag overrides the JSON schema built into the binary.
	schemaFlag = flag.String("schema", "", "path to a JSON schema replacing the built-in internal/simulation/schema/config.schema.json")

	debugFlag = flag.Bool("debug", false, "log every frame")
)

func main() {
	flag.Parse()

	level := golog.InfoLevel
	if *debugFlag {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	if err := run(logger); err != nil {
		logger.Errorf("flock simulation failed: %v", err)
		os.Exit(1)
	}
}

func run(logger golog.Logger) error {
	ctx := context.Background()

	cfg := simulation.DefaultConfig()
	if *configFlag != "" {
		loaded, err := simulation.LoadConfig(*configFlag, *schemaFlag)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Infof("Loaded config from %s", *configFlag)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Infof("Random seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	system, err := actor.NewActorSystem("FlockWorld", actor.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() {
		if err := system.Stop(ctx); err != nil {
			logger.Errorf("failed to stop actor system: %v", err)
		}
	}()

	game, err := simulation.NewGame(ctx, cfg, system, rng)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
