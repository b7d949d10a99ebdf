// Package main is the entry point for the trawl file manager.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/trawlfm/trawl/internal/app"
	"github.com/trawlfm/trawl/internal/config"
	"github.com/trawlfm/trawl/internal/renderer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, writeConfig := parseFlags()

	if writeConfig {
		path := opts.ConfigPath
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("wrote default configuration to %s\n", path)
		return 0
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	screen, err := renderer.New(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	application.SetScreen(screen)

	// Restore the terminal before dying on SIGINT/SIGTERM; a session
	// left in raw mode on the alternate screen is unusable.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Shutdown()
		os.Exit(1)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, bool) {
	var opts app.Options
	var showVersion bool
	var writeConfig bool

	flag.StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.KeybindPath, "keybinds", "", "Path to keybinding file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogPath, "log-file", "", "Write logs to this file (default: logging disabled)")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the default configuration file and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "trawl - terminal file manager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: trawl [options] [directory]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("trawl %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.StartDir = flag.Arg(0)
	}
	return opts, writeConfig
}

// defaultConfigPath points at the conventional location; a missing
// file simply means defaults.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "trawl.json"
	}
	return filepath.Join(dir, "trawl", "config.json")
}
