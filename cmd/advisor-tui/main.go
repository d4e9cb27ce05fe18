package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rgehrsitz/savings-advisor/internal/calculation"
	"github.com/rgehrsitz/savings-advisor/internal/config"
	"github.com/rgehrsitz/savings-advisor/internal/logging"
	"github.com/rgehrsitz/savings-advisor/internal/session"
	"github.com/rgehrsitz/savings-advisor/internal/tui"
)

func main() {
	// Optional profile file to prefill the wizard
	profilePath := ""
	if len(os.Args) > 1 {
		profilePath = os.Args[1]
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			fmt.Printf("Error: Profile file not found: %s\n", profilePath)
			os.Exit(1)
		}
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	engine := calculation.NewEngine()
	engine.SetLogger(logger.Sugar())

	model := tui.NewModel(session.New(engine), profilePath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs only when settings name an output file; the terminal belongs to the wizard
func newLogger() (*zap.Logger, error) {
	path := ""
	if _, err := os.Stat(config.DefaultSettingsFile); err == nil {
		path = config.DefaultSettingsFile
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	if settings.Logging.OutputFile == "" {
		return zap.NewNop(), nil
	}
	return logging.NewLogger(settings.Logging, "")
}
