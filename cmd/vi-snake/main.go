package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/service"
	"github.com/lixenwraith/vi-snake/spectator"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/store"
	"github.com/lixenwraith/vi-snake/ui"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Resolve(flags, os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(2)
	}

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panics in any goroutine restore the terminal before reporting
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		logger.Error("crash", "panic", r, "stack", string(debug.Stack()))
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()
	storeSvc := store.NewService()
	audioSvc := audio.NewService()
	spectatorSvc := spectator.NewService()

	hub := service.NewHub()
	for _, svc := range []service.Service{storeSvc, audioSvc, spectatorSvc} {
		if err := hub.Register(svc); err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			os.Exit(1)
		}
	}

	env := &service.Env{Config: cfg, Log: logger, Registry: reg}
	if err := hub.InitAll(env); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	app := ui.NewApp(screen,
		ui.WithStore(storeSvc.Store()),
		ui.WithMusic(audioSvc.Player()),
		ui.WithFrames(spectatorSvc.Hub()),
		ui.WithEngineConfig(cfg.Game.EngineConfig()),
		ui.WithLogger(logger),
		ui.WithRegistry(reg),
	)

	app.Run()
	app.Close()
	screen.Fini()

	if err := hub.StopAll(); err != nil {
		logger.Warn("shutdown incomplete", "error", err)
	}
	logger.Info("exit")
}
