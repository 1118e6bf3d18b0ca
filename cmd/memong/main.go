// Command memong opens a window and runs the two-player Pong simulation until
// a player quits or the window is closed.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/plus3/memong/config"
	"github.com/plus3/memong/frontend/window"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to a TOML config file. Defaults to the user config directory.")
	debug := flag.Bool("debug", false, "Write debug logs to the configured log file.")
	overlay := flag.Bool("overlay", false, "Show the ImGui debug overlay.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong: %v\n", err)
		return 1
	}
	if *debug {
		cfg.Debug.Log = true
	}
	if *overlay {
		cfg.Debug.Overlay = true
	}

	logFile, err := cfg.Debug.OpenLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "memong: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	log.Println("memong starting")
	if err := window.Run(cfg); err != nil {
		log.Printf("memong: %v", err)
		fmt.Fprintf(os.Stderr, "memong: %v\n", err)
		return 1
	}
	log.Println("memong stopped")
	return 0
}
