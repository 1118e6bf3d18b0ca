// Command memong-tty runs the Pong simulation in the terminal.
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

	"github.com/plus3/memong/config"
	"github.com/plus3/memong/engine"
	"github.com/plus3/memong/frontend/tty"
)

// defaultTPS paces the terminal, which has no vsync to lean on.
const defaultTPS = 60

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults to the user config directory.")
	debug := flag.Bool("debug", false, "Write debug logs to the configured log file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong-tty: %v\n", err)
		return 1
	}
	if *debug {
		cfg.Debug.Log = true
	}

	logFile, err := cfg.Debug.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong-tty: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keymap, err := tty.NewKeymap(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong-tty: %v\n", err)
		return 1
	}

	term, err := tty.Open(keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong-tty: %v\n", err)
		return 1
	}
	defer term.Close()

	tps := cfg.Window.TPS
	if tps == 0 {
		tps = defaultTPS
	}
	loop := engine.NewLoop(term,
		engine.WithInterval(time.Second/time.Duration(tps)),
		engine.WithVerbose(cfg.Debug.Log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("memong-tty: running at %d ticks per second", tps)
	err = loop.Run(ctx, term)
	log.Printf("memong-tty: stopped after %d ticks", loop.Counters().Ticks)

	if err != nil && !errors.Is(err, context.Canceled) {
		term.Close()
		fmt.Fprintf(os.Stderr, "memong-tty: %v\n", err)
		return 1
	}
	return 0
}
