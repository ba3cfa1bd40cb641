package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iw2rmb/vegetor"
	"github.com/iw2rmb/vegetor/internal/app"
	"github.com/iw2rmb/vegetor/internal/config"
	"github.com/iw2rmb/vegetor/internal/store"
)

var (
	configFlag  = flag.String("config", "", "path to the config file (default ~/.config/vegetor/config.toml)")
	versionFlag = flag.Bool("version", false, "print the version and exit")
)

func main() {
	// Panic recovery: leave the terminal usable even if setup crashes.
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVEGETOR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vegetor [-config path] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Println("vegetor", vegetor.Version())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configFlag, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "vegetor: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "vegetor.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	logger := zerolog.New(logFile).Level(cfg.Log.ZerologLevel()).With().Timestamp().Logger()
	log.Logger = logger
	log.Info().Str("version", vegetor.Version()).Str("path", path).Msg("starting")

	var sessions *store.Sessions
	if cfg.Session.RememberCaret {
		sessions, err = store.Open(filepath.Join(dataDir, "sessions.db"), 0)
		if err != nil {
			log.Warn().Err(err).Msg("session store unavailable")
			sessions = nil
		}
		defer sessions.Close()
	}

	welcome := ""
	if cfg.Welcome.File != "" {
		data, err := os.ReadFile(cfg.Welcome.File)
		if err != nil {
			log.Warn().Err(err).Str("file", cfg.Welcome.File).Msg("welcome file unreadable")
		} else {
			welcome = string(data)
		}
	}

	m, err := app.New(app.Options{
		Path:     path,
		Welcome:  welcome,
		Config:   cfg,
		Sessions: sessions,
		Logger:   &logger,
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	log.Info().Msg("exiting")
	return nil
}

// emergencyReset restores the main screen, the cursor and default
// attributes.
func emergencyReset() {
	out := termenv.NewOutput(os.Stdout)
	out.ExitAltScreen()
	out.ShowCursor()
	out.Reset()
}
