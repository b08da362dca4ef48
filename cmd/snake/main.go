package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/xVismar/the-snake/pkg/config"
	"github.com/xVismar/the-snake/pkg/game"
	"github.com/xVismar/the-snake/pkg/input"
	"github.com/xVismar/the-snake/pkg/renderer"
	"github.com/xVismar/the-snake/pkg/tui"
)

// options are the command-line settings that are not part of config.Config
type options struct {
	ui      string
	auto    bool
	logPath string
}

func main() {
	cfg, opts, err := parseArgs(os.Args[1:], os.LookupEnv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("snake: %v", err)
	}

	logger, closeLog, err := openLog(opts.logPath)
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	defer closeLog()

	sim, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	logger.Printf("started %dx%d %s grid, speed %d", cfg.GridWidth, cfg.GridHeight, cfg.Boundary, cfg.Speed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pilot game.Controller
	if opts.auto {
		pilot = game.Autopilot{Grid: sim.Grid()}
	}

	switch opts.ui {
	case "tcell":
		err = runTcell(ctx, sim, pilot, cfg.TickInterval())
	default:
		err = runANSI(ctx, sim, pilot, cfg.TickInterval())
	}
	if err != nil {
		logger.Printf("fatal: %v", err)
		log.Fatalf("snake: %v", err)
	}
	fmt.Println("\n  Thanks for playing! 👋")
}

// parseArgs layers defaults, the optional JSON file, the environment and
// explicitly set flags, in that order
func parseArgs(args []string, lookup func(string) (string, bool)) (config.Config, options, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	var (
		path     = fs.String("config", "", "JSON config file")
		width    = fs.Int("width", config.DefaultWidth, "grid width in cells")
		height   = fs.Int("height", config.DefaultHeight, "grid height in cells")
		length   = fs.Int("length", config.DefaultInitialLength, "initial snake length")
		seed     = fs.Int64("seed", 0, "random seed for reproducible games")
		boundary = fs.String("boundary", config.BoundaryWrap, "edge behaviour: wrap or solid")
		speed    = fs.Int("speed", config.DefaultSpeed, "ticks per second")
		opts     options
	)
	fs.StringVar(&opts.ui, "ui", "ansi", "front end: ansi or tcell")
	fs.BoolVar(&opts.auto, "auto", false, "let the autopilot play")
	fs.StringVar(&opts.logPath, "log", "", "write diagnostics to this file")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return cfg, opts, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.GridWidth = *width
		case "height":
			cfg.GridHeight = *height
		case "length":
			cfg.InitialLength = *length
		case "seed":
			cfg.Seed = seed
		case "boundary":
			cfg.Boundary = *boundary
		case "speed":
			cfg.Speed = *speed
		}
	})

	if opts.ui != "ansi" && opts.ui != "tcell" {
		return cfg, opts, fmt.Errorf("unknown -ui %q", opts.ui)
	}
	return cfg, opts, cfg.Validate()
}

func openLog(path string) (*log.Logger, func(), error) {
	prefix := fmt.Sprintf("[%s] ", uuid.NewString()[:8])
	if path == "" {
		return log.New(io.Discard, prefix, log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, prefix, log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

// runANSI drives the simulation with raw keyboard input and full ANSI redraws
func runANSI(ctx context.Context, sim *game.Simulation, pilot game.Controller, interval time.Duration) error {
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(sim.Grid())
	render.HideCursor()
	defer render.ShowCursor()

	inputChan := inputHandler.GetInputChan()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	snap := sim.Snapshot()
	render.Render(snap)

	next := game.None
	for {
		select {
		case <-ctx.Done():
			return nil

		case inputEvent := <-inputChan:
			if input.IsQuit(inputEvent) {
				return nil
			}
			// Reversals would be dropped by the simulation anyway; keep
			// the earlier turn instead.
			if dir, ok := input.ParseDirection(inputEvent); ok && dir != snap.Direction.Opposite() {
				next = dir
			}

		case <-ticker.C:
			if pilot != nil {
				next = pilot.Next(snap)
			}
			var err error
			if snap, err = sim.Tick(next); err != nil {
				return err
			}
			next = game.None
			render.Render(snap)
		}
	}
}

// runTcell drives the simulation on a tcell screen
func runTcell(ctx context.Context, sim *game.Simulation, pilot game.Controller, interval time.Duration) error {
	screen, err := tui.NewScreen(sim.Grid())
	if err != nil {
		return err
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cmds := screen.Events(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	snap := sim.Snapshot()
	screen.Draw(snap)

	next := game.None
	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd, ok := <-cmds:
			if !ok || cmd.Quit {
				return nil
			}
			if cmd.Dir != snap.Direction.Opposite() {
				next = cmd.Dir
			}

		case <-ticker.C:
			if pilot != nil {
				next = pilot.Next(snap)
			}
			if snap, err = sim.Tick(next); err != nil {
				return err
			}
			next = game.None
			screen.Draw(snap)
		}
	}
}
