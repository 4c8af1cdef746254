package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"calc555/internal/app"
)

func configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if configPath == "" {
					return fmt.Errorf("--write needs --config")
				}
				if err := app.SaveConfig(configPath, appCtx.Config); err != nil {
					return err
				}
				appCtx.Log.Info("config written", "path", configPath)
				return nil
			}
			b, err := json.MarshalIndent(appCtx.Config, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "write the effective configuration to --config")
	return cmd
}
