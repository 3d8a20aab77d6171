package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinoval/sinoval/cnnum"
)

var priceSuffix string

var priceCmd = &cobra.Command{
	Use:   "price AMOUNT",
	Short: "Render an amount as uppercase Chinese numerals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseFloatArg("AMOUNT", args[0])
		if err != nil {
			return err
		}
		out := cnnum.PriceWithSuffix(amount, priceSuffix)
		if out == "" {
			return fmt.Errorf("amount %v cannot be rendered", amount)
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	priceCmd.Flags().StringVar(&priceSuffix, "suffix", "整", "suffix for exact integer amounts")
	rootCmd.AddCommand(priceCmd)
}
