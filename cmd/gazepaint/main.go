package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gazepaint/internal/config"
	"gazepaint/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "tool configuration (TOML); empty uses the built-in tools")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the config seed or the clock")
	logPath := flag.String("log", "", "write logs to this file")
	debug := flag.Bool("debug", false, "log every structure and generation")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Engine.Seed = *seed
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = uint64(time.Now().UnixNano())
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gazepaint")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		logger.Info("starting", "seed", cfg.Engine.Seed, "tools", len(cfg.Tools))
	}

	var m tea.Model
	if flag.NArg() > 0 {
		m, err = tui.NewWithPath(cfg, flag.Arg(0), tui.WithLogger(logger))
	} else {
		m, err = tui.New(cfg, tui.WithLogger(logger))
	}
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
