package commands

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"calc555/internal/app"
)

var (
	configPath string
	capText    string
	verbose    bool
	noColor    bool

	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "calc555",
		Short:        "555 timer astable calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)

			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if noColor {
				cfg.Color = false
			}
			if capText == "" {
				capText = cfg.DefaultCapacitor
			}
			appCtx = app.New(cfg, logger)
			logger.Debug("config loaded", "path", configPath, "capacitor", capText)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "JSON config file")
	root.PersistentFlags().StringVarP(&capText, "capacitor", "c", "", `timing capacitor, e.g. "22µF", "100n", "47pF" (default from config)`)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output")

	root.AddCommand(
		resistorsCmd(),
		periodCmd(),
		frequencyCmd(),
		plotCmd(),
		interactiveCmd(),
		configCmd(),
	)
	return root
}

// parseFloats converts positional arguments to numbers.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		out[i] = v
	}
	return out, nil
}
