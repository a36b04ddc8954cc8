// Command swipesim replays a swipe gesture through a single row and
// prints the translation and notifications frame by frame.
//
// A script is a TOML file:
//
//	settle = 600
//
//	[layout]
//	leading = 80
//	trailing = 100
//	size = 300
//
//	[[step]]
//	phase = "active"
//	offset = 60
//
//	[[step]]
//	phase = "ended"
//	offset = 60
//	velocity = 400
//
//	[[step]]
//	control = "close"
//	frames = 20
//
// Without -script, -drag and -control build the same kind of script.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/llehouerou/swiperow/internal/config"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "TOML gesture script")
		configPath = flag.String("config", "", "config file (default: the usual config locations)")
		drag       = flag.String("drag", "", "comma separated drag offsets, one frame each, then release")
		velocity   = flag.Float64("velocity", 0, "release velocity after -drag, in units per second")
		control    = flag.String("control", "", "open_leading, open_trailing or close, after -drag")
		leading    = flag.Float64("leading", 80, "leading panel size, 0 for none")
		trailing   = flag.Float64("trailing", 100, "trailing panel size, 0 for none")
		size       = flag.Float64("size", 300, "row size along the swipe axis")
		fps        = flag.Int("fps", 0, "frames per second (default: ui.fps from the config)")
		verbose    = flag.Bool("v", false, "print debug records to stderr")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("swipesim: ")

	paths := config.Paths()
	if *configPath != "" {
		paths = []string{*configPath}
	}
	cfg, err := config.LoadFrom(paths...)
	if err != nil {
		log.Fatal(err)
	}

	var sc Script
	if *scriptPath != "" {
		sc, err = loadScript(*scriptPath)
	} else {
		sc, err = scriptFromFlags(Layout{Leading: *leading, Trailing: *trailing, Size: *size}, *drag, *velocity, *control)
	}
	if err != nil {
		log.Fatal(err)
	}

	uiCfg := cfg.GetUIConfig()
	if *fps > 0 {
		uiCfg.FPS = *fps
	}

	var logOut io.Writer = io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sim := newSimulator(os.Stdout, cfg.SwipeOptions(), sc.Layout, uiCfg.FrameInterval(), logger)
	if !sim.run(sc) {
		fmt.Fprintf(os.Stderr, "row still moving after %d settle frames\n", sc.Settle)
		os.Exit(1)
	}
}
