package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/audio"
	"github.com/lixenwraith/gridsnake/constant"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/layout"
	"github.com/lixenwraith/gridsnake/render"
	"github.com/lixenwraith/gridsnake/status"
)

var (
	modeFlag        = flag.String("mode", "auto", "Layout mode: auto, standard, compact")
	tickFlag        = flag.Duration("tick", constant.TickInterval, "Simulation tick interval")
	seedFlag        = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	lengthFlag      = flag.Int("length", constant.InitialLength, "Initial snake length")
	soundFlag       = flag.Bool("sound", false, "Play a chime when the snake eats")
	debugFlag       = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	pauseHiddenFlag = flag.Bool("pause-hidden", true, "Pause the simulation while the effect is hidden")
	themeFlag       = flag.String("theme", "night", "Initial theme: day, night")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridsnake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("gridsnake: seed=%d mode=%s tick=%v", seed, cfg.Mode, cfg.TickInterval)

	var chime *audio.Chime
	if *soundFlag {
		chime = audio.NewChime()
		if err := chime.Initialize(); err != nil {
			// Non-fatal, runs silently
			log.Printf("gridsnake: audio init failed: %v", err)
		}
		defer chime.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	reg := status.NewRegistry()
	page := layout.New(w, h, cfg.CompactFor(w), render.PaletteByName(*themeFlag))
	pres := &presenter{screen: screen, layout: page, reg: reg}

	opts := []engine.Option{
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithRegistry(reg),
	}
	if chime != nil {
		opts = append(opts, engine.WithEatHook(func(*engine.State) { chime.Play() }))
	}

	driver, err := engine.NewDriver(cfg, w, h, page, pres, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	done := make(chan error, 1)
	core.Go(func() {
		done <- driver.Run(ctx)
	})

	events := make(chan tcell.Event, constant.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	a := &app{cfg: cfg, layout: page, presenter: pres, post: driver}
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				driver.Stop()
				return waitDriver(done)
			}
		case err := <-done:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

func waitDriver(done <-chan error) error {
	err := <-done
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func configFromFlags() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	mode, err := engine.ParseLayoutMode(*modeFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Mode = mode
	cfg.TickInterval = *tickFlag
	cfg.InitialLength = *lengthFlag
	cfg.PauseHidden = *pauseHiddenFlag
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
