package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unikit/internal/config"
	"unikit/internal/observ"
)

// appState is filled by setupApp before any command runs.
type appState struct {
	cfg     config.Config
	timer   *observ.Timer
	cleanup func()
}

var app appState

func setupApp(cmd *cobra.Command, _ []string) error {
	app.timer = observ.NewTimer()

	if err := setupColor(cmd); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	app.cfg = cfg

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return err
	}
	app.cleanup = func() {
		stopTracing()
		stopProfiling()
	}
	return nil
}

func teardownApp(cmd *cobra.Command, _ []string) {
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings && app.timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), app.timer.Summary())
	}
	if app.cleanup != nil {
		app.cleanup()
		app.cleanup = nil
	}
}

func setupColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --color %q (expected: auto|on|off)", colorFlag)
	}
	return nil
}

// loadConfig: файл, поверх него .env и окружение. Флаги команд
// применяются позже и побеждают всё.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	idx := app.timer.Begin("config")
	defer app.timer.End(idx, "")

	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
		if errors.Is(err, config.ErrNoConfig) {
			err = nil
		}
	}
	if err != nil {
		return config.Config{}, err
	}

	envDir := "."
	if cfg.Path != "" {
		envDir = filepath.Dir(cfg.Path)
	}
	lookup, err := config.LoadEnv(envDir)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg, lookup); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
