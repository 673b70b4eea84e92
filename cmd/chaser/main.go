package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/chaser/audio"
	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/core"
	debugsrv "github.com/lixenwraith/chaser/debug"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/logging"
	"github.com/lixenwraith/chaser/maze"
	"github.com/lixenwraith/chaser/render"
)

func main() {
	cfg, err := config.Load(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if logFile := logging.Setup(cfg.Debug, cfg.LogLevel); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("Exited with error")
		fmt.Fprintf(os.Stderr, "chaser: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	rng, seed := maze.NewRand(uint64(cfg.Seed))
	log.Info().
		Uint64("seed", seed).
		Int("rows", cfg.Rows).
		Int("cols", cfg.Cols).
		Int("chasers", cfg.Chasers).
		Str("config", cfg.Source).
		Msg("Starting")

	// Geometry errors surface before the terminal is touched
	world, err := engine.BuildWorld(engine.WorldConfig{
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Player:  cfg.PlayerSpawn(),
		Chasers: cfg.Chasers,
	}, rng)
	if err != nil {
		return err
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.ParseBindings(cfg.Keys)
		if err != nil {
			return err
		}
		keys = input.MergeKeyTable(keys, override)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the stack
	core.SetCrashFinisher(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Mute)
	if !cfg.Mute {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, runs silent
			log.Warn().Err(err).Msg("Audio initialization failed")
		} else {
			defer sound.Cleanup()
		}
	}

	handler := input.NewHandler(keys, engine.NewTimeProvider(), cfg.HoldDuration())
	canvas := render.NewTerminalRenderer(screen, render.NewLayout(cfg.CellSize, cfg.LineSize), rng)
	sim := engine.NewSimulation(world.Grid, handler, canvas, sound, cfg.TickInterval())

	if cfg.DebugAddr != "" {
		srv := debugsrv.NewServer(cfg.DebugAddr)
		sim.Observe(srv.Observe)
		if _, err := srv.Start(); err != nil {
			return fmt.Errorf("debug server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input.Listen(screen, handler)

	if err := sim.Run(ctx); err != nil {
		return err
	}
	log.Info().Uint64("ticks", sim.Tick()).Msg("Shutdown")
	return nil
}
