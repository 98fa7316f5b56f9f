package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/ted-dokos/cube-engine/internal/clock"
	"github.com/ted-dokos/cube-engine/internal/config"
	"github.com/ted-dokos/cube-engine/internal/event"
	"github.com/ted-dokos/cube-engine/internal/handoff"
	"github.com/ted-dokos/cube-engine/internal/logger"
	"github.com/ted-dokos/cube-engine/internal/platform"
	"github.com/ted-dokos/cube-engine/internal/render"
	"github.com/ted-dokos/cube-engine/internal/sim"
)

func init() {
	// The window and all drawing stay on the main thread.
	runtime.LockOSThread()
}

func main() {

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}
	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	simQueue := event.NewQueue()
	renderQueue := event.NewQueue()
	snapshots := handoff.New[sim.Snapshot](cfg.Render.SnapshotBuffer)

	state := sim.NewState(float32(cfg.Window.Width) / float32(cfg.Window.Height))
	state.MouseSensitivity = float32(cfg.Simulation.MouseSensitivity)

	win := platform.NewWindow(
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Title,
		simQueue, renderQueue,
		state.Snapshot().Entities,
		cancel,
	)
	win.Init()
	defer win.Close()
	win.UpdateCamera(state.Camera)

	simLoop := sim.NewLoop(state, simQueue, snapshots, clock.Real{}, cfg.Window.Width, cfg.Window.Height)
	renderLoop := render.NewLoop(renderQueue, snapshots, win, clock.Real{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		simLoop.Run(ctx)
	}()

	// The render loop owns the main thread until shutdown.
	renderLoop.Run(ctx)
	cancel()
	wg.Wait()
	slog.Info("Shutdown complete")
}
