package commands

import (
	"github.com/spf13/cobra"

	"calc555/internal/domain"
)

// calcCmd builds a two-number subcommand that runs calc and renders the
// result as text.
func calcCmd(use, short, long string, calc func(a, b float64) (domain.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			result, err := calc(v[0], v[1])
			if err != nil {
				return err
			}
			return appCtx.TextRenderer().Render(cmd.OutOrStdout(), result)
		},
	}
}

func resistorsCmd() *cobra.Command {
	return calcCmd(
		"resistors <r1> <r2>",
		"Calculate timing from R1 and R2 in ohms",
		"Calculate frequency, period, duty ratio and high/low times from explicit resistors.",
		func(r1, r2 float64) (domain.Result, error) {
			return appCtx.Calculator.FromResistors(capText, r1, r2)
		},
	)
}

func periodCmd() *cobra.Command {
	return calcCmd(
		"period <period> <duty>",
		"Calculate R1 and R2 from a period and duty ratio",
		"A period below 1 is in seconds, anything else in milliseconds.\n"+
			"A duty ratio below 1 is a fraction, anything else a percentage.",
		func(period, duty float64) (domain.Result, error) {
			return appCtx.Calculator.FromPeriod(capText, period, duty)
		},
	)
}

func frequencyCmd() *cobra.Command {
	return calcCmd(
		"frequency <hz> <duty>",
		"Calculate R1 and R2 from a frequency and duty ratio",
		"A duty ratio below 1 is a fraction, anything else a percentage.",
		func(hz, duty float64) (domain.Result, error) {
			return appCtx.Calculator.FromFrequency(capText, hz, duty)
		},
	)
}
