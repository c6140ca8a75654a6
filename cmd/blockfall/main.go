package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/audio/speakerout"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/frontend/terminal"
	"github.com/plus3/blockfall/frontend/window"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/loop"
)

type flags struct {
	config   string
	seed     uint64
	frontend string
	debug    bool
	noAudio  bool
	overlay  bool
	set      map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	f := &flags{set: make(map[string]bool)}
	fs.StringVar(&f.config, "config", "", "Path to a YAML config file.")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed for the piece sequence. 0 seeds from the clock.")
	fs.StringVar(&f.frontend, "frontend", "", "Frontend to use: terminal or window.")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging.")
	fs.BoolVar(&f.noAudio, "no-audio", false, "Disable sound.")
	fs.BoolVar(&f.overlay, "overlay", false, "Show the debug overlay (window frontend only).")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// resolve loads the config file, if any, and lets explicitly set flags
// override it.
func (f *flags) resolve() (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return cfg, err
		}
	}

	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["frontend"] {
		cfg.Frontend = f.frontend
	}
	if f.debug {
		cfg.Logging.Debug = true
	}
	if f.noAudio {
		cfg.Audio = false
	}
	return cfg, cfg.Validate()
}

func main() {
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := f.resolve()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	state, stats, err := run(cfg, f.overlay)
	if err != nil {
		log.Fatalf("blockfall: %v", err)
	}

	fmt.Printf("%s: %d rows cleared, %d pieces, %d ticks\n", state, stats.RowsCleared, stats.PiecesSpawned, stats.Ticks)
}

func run(cfg config.Config, overlay bool) (game.State, game.Stats, error) {
	logger, logCloser, err := cfg.Logging.NewLogger()
	if err != nil {
		return 0, game.Stats{}, err
	}
	defer logCloser.Close()

	blueprints, err := cfg.Blueprints()
	if err != nil {
		return 0, game.Stats{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("starting %dx%d game with %d blueprints, seed %d", cfg.Field.Width, cfg.Field.Height, len(blueprints), seed)

	controller, err := game.New(game.Config{
		Field:      field.New(cfg.Field.Width, cfg.Field.Height),
		Blueprints: blueprints,
		Rand:       game.NewRand(seed),
		Logger:     logger,
	})
	if err != nil {
		return 0, game.Stats{}, err
	}

	var cues loop.CuePlayer
	if cfg.Audio {
		synth := audio.NewSynth(audio.DefaultSampleRate)
		out, err := speakerout.Open(synth.SampleRate())
		if err != nil {
			// The game runs fine without sound.
			logger.Printf("audio disabled: %v", err)
		} else {
			defer out.Close()
			cues = audio.NewPlayer(synth, out, logger)
		}
	}

	var state game.State
	switch cfg.Frontend {
	case config.FrontendWindow:
		state, err = window.Run(window.New(window.Options{
			Controller: controller,
			Cues:       cues,
			Interval:   cfg.Loop.TickInterval,
			Overlay:    overlay,
			Logger:     logger,
		}))
	default:
		state, err = runTerminal(controller, cues, cfg.Loop, logger)
	}
	return state, controller.Stats(), err
}

func runTerminal(controller *game.Controller, cues loop.CuePlayer, cfg config.Loop, logger *log.Logger) (game.State, error) {
	screen, err := terminal.New()
	if err != nil {
		return 0, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := loop.NewSession(controller, loop.Options{
		Input:        screen,
		Renderer:     screen,
		Cues:         cues,
		Interval:     cfg.TickInterval,
		PollInterval: cfg.PollInterval,
		Logger:       logger,
	})
	state, err := session.Run(ctx)
	if state == game.GameOver {
		holdFinalBoard(ctx, screen, cfg.PollInterval)
	}
	screen.Close()

	if errors.Is(err, context.Canceled) {
		return state, nil
	}
	return state, err
}

// holdFinalBoard keeps the lost game on screen until a key press or
// loop.DefaultLinger has passed.
func holdFinalBoard(ctx context.Context, screen *terminal.Screen, poll time.Duration) {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	var linger loop.Linger
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if linger.Done(poll.Seconds(), len(screen.Poll()) > 0) {
				return
			}
		}
	}
}
