package cmd

import (
	"fmt"
	"strconv"

	"github.com/gnames/gn"
	"github.com/sakemonkey/sakedb/pkg/formula"
	"github.com/spf13/cobra"
)

// getCalcCmd returns the calc command with its brewing-arithmetic
// subcommands.
func getCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Brewing calculations",
		Long: `Stand-alone brewing arithmetic: the same formulas used for the
calculated recipe fields.

Examples:
  sakedb calc gravity 25.5 1.012
  sakedb calc abv 12.5 1.010
  sakedb calc smv 1.010
  sakedb calc dilution 14 1.020 12 1.010 10`,
	}

	calcCmd.AddCommand(
		getGravityCmd(),
		getABVCmd(),
		getSMVCmd(),
		getDilutionCmd(),
	)

	return calcCmd
}

func getGravityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gravity <measured_temp_C> <measured_gravity>",
		Short: "Correct a gravity reading to 20 C",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			got := formula.CorrectedGravity(vals[0], vals[1])
			fmt.Printf("%.4f\n", got)
			return nil
		},
	}
}

func getABVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abv <brix_pct> <final_gravity>",
		Short: "Alcohol by volume from Brix and final gravity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			got := formula.ABV(vals[0], vals[1])
			fmt.Printf("%.1f%%\n", got)
			return nil
		},
	}
}

func getSMVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smv <final_gravity>",
		Short: "Sake Meter Value from final gravity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			fmt.Printf("%+.1f\n", formula.SMV(vals[0]))
			return nil
		},
	}
}

func getDilutionCmd() *cobra.Command {
	return &cobra.Command{
		Use: "dilution <current_brix> <current_gravity> " +
			"<target_brix> <target_gravity> <current_volume_L>",
		Short: "Water addition to reach a target profile",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseFloats(args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			res := formula.Dilution(
				vals[0], vals[1], vals[2], vals[3], vals[4],
			)
			fmt.Printf("water to add:  %.2f L\n", res.WaterToAddL)
			fmt.Printf("final volume:  %.2f L\n", res.FinalVolumeL)
			fmt.Printf("final brix:    %.2f\n", res.FinalBrix)
			fmt.Printf("final gravity: %.4f\n", res.FinalGravity)
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	res := make([]float64, len(args))
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number", arg)
		}
		res[i] = f
	}
	return res, nil
}
