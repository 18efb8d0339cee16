package main

import (
	"fmt"

	"github.com/edwinsyarief/parallax"
	"github.com/edwinsyarief/parallax/internal/logging"
	"github.com/edwinsyarief/parallax/preset"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/spf13/cobra"
)

type runOptions struct {
	presetPath string
	watch      bool
	logLevel   string
	logFormat  string
	width      int
	height     int
}

func newRunCmd() *cobra.Command {
	opts := runOptions{width: 960, height: 540}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the demo window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.presetPath, "preset", "p", "", "YAML preset file (defaults are used if empty)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the preset when it changes")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn or error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "console", "console or json")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "window width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "window height")
	return cmd
}

func run(opts runOptions) error {
	logCfg := logging.DefaultConfig()
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(opts.logFormat)
	if err != nil {
		return err
	}
	logCfg.Level, logCfg.Format = level, format
	logger := logging.New(logCfg)
	parallax.SetLogger(logging.WithComponent(logger, "parallax"))

	config := parallax.DefaultConfig()
	if opts.presetPath != "" {
		config, err = preset.Load(opts.presetPath)
		if err != nil {
			return err
		}
	}
	if opts.width < 1 || opts.height < 1 {
		return fmt.Errorf("invalid window size %dx%d", opts.width, opts.height)
	}

	game, err := newGame(opts.width, opts.height, config, logging.WithComponent(logger, "demo"))
	if err != nil {
		return err
	}
	defer game.Close()

	if opts.watch && opts.presetPath != "" {
		if err := game.watch(opts.presetPath); err != nil {
			return fmt.Errorf("watch %s: %w", opts.presetPath, err)
		}
	}

	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("parallax")
	return ebiten.RunGame(game)
}
