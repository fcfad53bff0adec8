package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/amountfield/internal/amount"
	"github.com/jask/amountfield/internal/config"
	"github.com/jask/amountfield/internal/logging"
	"github.com/jask/amountfield/internal/tui"
)

// usage: amountfield [preset ...]
//
// With no arguments every preset in the presets file is shown.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	var presets config.Presets
	if cfg.Presets.Path != "" {
		if presets, err = config.LoadPresets(cfg.Presets.Path); err != nil {
			log.Fatalf("presets: %v", err)
		}
	}
	fromConfig := len(presets) == 0
	if fromConfig {
		// fall back to the [field] section of the main config
		presets = config.Presets{{Name: "amount", Label: "Amount", Field: cfg.Field}}
	}

	selected, err := presets.Select(os.Args[1:])
	if err != nil {
		if errors.Is(err, config.ErrUnknownPreset) {
			fmt.Fprintf(os.Stderr, "%v\navailable: %v\n", err, presets.Names())
			os.Exit(2)
		}
		log.Fatalf("select presets: %v", err)
	}

	logger.Info().Strs("fields", selected.Names()).Msg("starting")
	app := tui.New(selected, logger)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}

	for _, f := range app.Fields() {
		if v, ok := f.Amount(); ok {
			fmt.Printf("%s\t%s\n", f.Label(), amount.Format(v))
		}
	}

	if fromConfig && cfg.Remember {
		if v, ok := app.Fields()[0].Amount(); ok {
			if err := config.RememberAmount(cfg, v); err != nil {
				logger.Error().Err(err).Msg("remember amount")
				fmt.Fprintf(os.Stderr, "remember amount: %v\n", err)
			}
		}
	}
}
