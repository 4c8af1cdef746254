package commands

import (
	"github.com/spf13/cobra"

	"calc555/internal/tui"
)

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Run the menu-driven calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m := tui.New(appCtx.Calculator, appCtx.Palette(out), appCtx.Formatter, capText)
			return tui.Run(m, cmd.InOrStdin(), out)
		},
	}
}
