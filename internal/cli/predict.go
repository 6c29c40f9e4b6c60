package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/arloliu/rssifit/pathloss"
)

func (a *app) newPredictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Evaluate a fitted model",
		Long: `The 'predict' command evaluates RSSI(d) = A - 10*n*log10(d) for --distance, or
inverts it to the expected distance for --rssi.`,
		Args: cobra.NoArgs,
		RunE: a.runPredict,
	}

	cmd.Flags().Float64("a", 0, "reference signal strength A")
	cmd.Flags().Float64("n", 0, "path-loss exponent n")
	cmd.Flags().Float64("distance", 0, "distance to predict the RSSI at")
	cmd.Flags().Float64("rssi", 0, "RSSI to predict the distance for")
	cmd.MarkFlagsMutuallyExclusive("distance", "rssi")
	cmd.MarkFlagsOneRequired("distance", "rssi")

	return cmd
}

func (a *app) runPredict(cmd *cobra.Command, _ []string) error {
	coeffs := pathloss.Coefficients{
		A: a.v.GetFloat64("a"),
		N: a.v.GetFloat64("n"),
	}
	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("distance") {
		d := a.v.GetFloat64("distance")
		if !(d > 0) || math.IsInf(d, 0) {
			return fmt.Errorf("distance must be positive and finite, got %v", d)
		}
		_, err := fmt.Fprintf(out, "rssi(%g) = %.4f\n", d, coeffs.RSSI(pathloss.Distance(d)))

		return err
	}

	if coeffs.N == 0 {
		return errors.New("n must be non-zero to invert the model")
	}
	rssi := a.v.GetFloat64("rssi")
	_, err := fmt.Fprintf(out, "distance(%g) = %.4f\n", rssi, float64(coeffs.Distance(rssi)))

	return err
}
