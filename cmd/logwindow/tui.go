package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/logwindow/internal/clipboard"
	"github.com/tinytelemetry/logwindow/internal/model"
	"github.com/tinytelemetry/logwindow/internal/tui"
)

func runTUI(cfg appConfig) error {
	// The TUI owns the terminal: log only to a file, if one is configured.
	log, closeLog, err := cfg.openLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	defer log.Sync()

	conv, loc, err := cfg.newConverter()
	if err != nil {
		return err
	}
	logType, err := model.ParseLogType(cfg.DefaultLogType)
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Converter:      conv,
		Clipboard:      clipboard.System{},
		Clock:          model.RealClock{},
		Location:       loc,
		Logger:         log,
		CopyOnConvert:  cfg.CopyOnConvert,
		DefaultLogType: logType,
	}
	log.Debugw("starting tui", "timezone", loc.String(), "window", cfg.Window, "config", cfg.ConfigPath)

	app := tui.NewApp(tui.NewFormPage(deps), tui.NewResultPage(deps))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal; use \"logwindow convert\" instead")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
