package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/dayout/common"
	"github.com/milk9111/dayout/config"
	"github.com/milk9111/dayout/scenes"
)

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:           "dayout",
	Short:         "Explore a fish landing dock and discover where the catch goes",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the scene table",
	RunE:  runValidate,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.ScenesDir, "scenes", cfg.ScenesDir, "directory checked for scene files before the embedded ones")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	run := rootCmd.Flags()
	run.StringVar(&cfg.Policy, "policy", cfg.Policy, "reveal policy: hover or click")
	run.StringVar(&cfg.GateScope, "gating", cfg.GateScope, "truck gating scope: scene or global")
	run.IntVar(&cfg.StartScene, "scene", cfg.StartScene, "scene to start in")
	run.BoolVar(&cfg.Dev, "dev", cfg.Dev, "show hover areas; press C to copy the hovered region")
	run.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload scene files when they change")
	run.DurationVar(&cfg.BannerDelay, "banner-delay", cfg.BannerDelay, "delay before the completion banner")
	run.BoolVarP(&cfg.BaseMonitor, "monitor", "m", cfg.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")

	rootCmd.AddCommand(validateCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dayout", Level: log.InfoLevel, ReportTimestamp: true})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadTable() (*scenes.Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	scenes.Dir = cfg.ScenesDir
	return scenes.LoadTable()
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	table, err := loadTable()
	if err != nil {
		return err
	}

	if cfg.BaseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("Ayala's Dayout")

	game, err := NewGame(cfg, table, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	logger.Info("starting", "policy", cfg.Policy, "gating", cfg.GateScope, "scene", cfg.StartScene)
	return ebiten.RunGame(game)
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	table, err := loadTable()
	if err != nil {
		return err
	}
	for _, s := range table.Scenes {
		logger.Info("scene ok", "scene", s.ID, "title", s.Title, "elements", len(s.Elements), "discoverable", len(table.NonTruckIDs(s.ID)))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d scenes, %d discoverable elements\n", len(table.Scenes), len(table.AllNonTruckIDs()))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("dayout", "err", err)
		os.Exit(1)
	}
}
