package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"calc555/internal/domain"
)

func plotCmd() *cobra.Command {
	var (
		r1, r2, period, hz, duty float64
		output, kind             string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the output and capacitor waveforms",
		Long: "Draw the 555 output and timing capacitor voltage for a few cycles.\n" +
			"Give either --r1 and --r2, or --duty with --period or --frequency.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result domain.Result
				err    error
			)
			flags := cmd.Flags()
			switch {
			case flags.Changed("r1") || flags.Changed("r2"):
				result, err = appCtx.Calculator.FromResistors(capText, r1, r2)
			case flags.Changed("period"):
				result, err = appCtx.Calculator.FromPeriod(capText, period, duty)
			case flags.Changed("frequency"):
				result, err = appCtx.Calculator.FromFrequency(capText, hz, duty)
			default:
				return fmt.Errorf("give --r1 and --r2, --period or --frequency")
			}
			if err != nil {
				return err
			}

			if kind == "" && output != "-" {
				kind = strings.TrimPrefix(filepath.Ext(output), ".")
			}

			r := appCtx.PlotRenderer(kind)
			if output == "-" {
				if err := r.Render(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if err := writePlot(output, r, result); err != nil {
				return err
			}
			appCtx.Log.Info("plot written", "output", output, "frequency_hz", result.Timing.Frequency)
			return nil
		},
	}
	cmd.Flags().Float64Var(&r1, "r1", 0, "R1 in ohms")
	cmd.Flags().Float64Var(&r2, "r2", 0, "R2 in ohms")
	cmd.Flags().Float64Var(&period, "period", 0, "period (below 1: seconds, else ms)")
	cmd.Flags().Float64Var(&hz, "frequency", 0, "frequency in Hz")
	cmd.Flags().Float64Var(&duty, "duty", 0, "duty ratio (fraction or percent)")
	cmd.Flags().StringVarP(&output, "output", "o", "calc555.png", `output file, "-" for stdout`)
	cmd.Flags().StringVar(&kind, "format", "", "image format (default from file extension)")
	cmd.MarkFlagsRequiredTogether("r1", "r2")
	cmd.MarkFlagsMutuallyExclusive("period", "frequency")
	return cmd
}

// writePlot renders to path. A failed render leaves no file behind.
func writePlot(path string, r domain.Renderer, result domain.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, result); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
