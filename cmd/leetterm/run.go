package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	clog "github.com/charmbracelet/log"

	"github.com/lixenwraith/leetterm/app"
	"github.com/lixenwraith/leetterm/audio"
	"github.com/lixenwraith/leetterm/config"
	"github.com/lixenwraith/leetterm/highlight"
	"github.com/lixenwraith/leetterm/leetcode/offline"
	"github.com/lixenwraith/leetterm/store"
	"github.com/lixenwraith/leetterm/terminal"
)

func run(configPath, colorFlag string) error {
	// restore the terminal before the stack trace lands on it
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nleetterm crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	colorMode := resolveColorMode(cfg, colorFlag)

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	if err := st.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("store schema: %w", err)
	}

	svc, err := offline.NewService()
	if err != nil {
		return fmt.Errorf("load problem catalog: %w", err)
	}

	cues := audio.NewCues()
	if cfg.Sound {
		if err := cues.Init(); err != nil {
			logger.Warn("audio unavailable", "err", err)
		}
	}

	term := terminal.New(colorMode)
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	logger.Info("started", "color_mode", cfg.ColorMode, "data_dir", cfg.DataDir)

	a := app.New(app.Options{
		Terminal:    term,
		Auth:        svc,
		Problems:    svc,
		Judge:       svc,
		Store:       st,
		Cues:        cues,
		Highlighter: highlight.New(cfg.HighlightStyle),
		Config:      cfg,
		Logger:      logger,
	})
	return a.Run(app.NewLogin())
}

// newLogger writes to a file under the data dir; stdout belongs to the
// renderer while raw mode is active
func newLogger(cfg config.Config) *clog.Logger {
	level, err := clog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = clog.InfoLevel
	}

	var sink io.Writer = io.Discard
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
			sink = f
		}
	}

	return clog.NewWithOptions(sink, clog.Options{
		Prefix:          "leetterm",
		Level:           level,
		ReportTimestamp: true,
	})
}

func resolveColorMode(cfg config.Config, flag string) terminal.ColorMode {
	mode := cfg.ColorMode
	if flag != "" {
		mode = flag
	}
	switch mode {
	case "256":
		return terminal.ColorMode256
	case "truecolor", "true", "24bit":
		return terminal.ColorModeTrue
	default:
		return terminal.DetectColorMode()
	}
}
