package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/annotate/lipgloss"
	"github.com/fwojciec/annotate/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// commandContext carries the shared flag values and lazily built dependencies
// for the subcommands.
type commandContext struct {
	configFlag *string
	debugFlag  *bool
	themeFlag  *string

	cfg    *toml.Config
	logger *zap.Logger
}

// config loads the configuration file once and caches it.
func (c *commandContext) config() (toml.Config, error) {
	if c.cfg == nil {
		cfg, err := toml.Load(*c.configFlag)
		if err != nil {
			return toml.Config{}, err
		}
		c.cfg = &cfg
	}
	return *c.cfg, nil
}

// newLogger builds the debug logger. Logs go to a file so they don't corrupt
// the alternate-screen TUI; without --debug everything is discarded.
func (c *commandContext) newLogger() (*zap.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	if !*c.debugFlag {
		c.logger = zap.NewNop()
		return c.logger, nil
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zapCfg.OutputPaths = []string{"annotate.log"}
	zapCfg.ErrorOutputPaths = []string{"annotate.log"}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	c.logger = logger
	return c.logger, nil
}

// theme resolves the color theme from the --theme flag, falling back to the
// config file.
func (c *commandContext) theme() (*lipgloss.Theme, error) {
	name := *c.themeFlag
	if name == "" {
		cfg, err := c.config()
		if err != nil {
			return nil, err
		}
		name = cfg.UI.Theme
	}
	switch strings.ToLower(name) {
	case "", "dark":
		return lipgloss.DarkTheme(), nil
	case "light":
		return lipgloss.LightTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q (want dark or light)", name)
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var debugFlag bool
	var themeFlag string

	ctx := &commandContext{
		configFlag: &configFlag,
		debugFlag:  &debugFlag,
		themeFlag:  &themeFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "annotate",
		Short:         "Terminal annotation sessions for scoring items and choosing between A/B pairs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Write debug logs to annotate.log")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Color theme (dark or light)")

	rootCmd.AddCommand(newScoreCommand(ctx))
	rootCmd.AddCommand(newChooseCommand(ctx))
	rootCmd.AddCommand(newFlattenCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))

	return rootCmd
}

// derivedPath returns a sibling output path for an input path.
// foo.json + "-scores" -> foo-scores.json
func derivedPath(inputPath, suffix, ext string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+suffix+ext)
}
