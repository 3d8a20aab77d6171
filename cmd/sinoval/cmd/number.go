package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinoval/sinoval/cnnum"
)

var numberCmd = &cobra.Command{
	Use:   "number VALUE",
	Short: "Render a number as plain Chinese numerals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cnnum.NumberString(args[0])
		if out == "" {
			return fmt.Errorf("value %q cannot be rendered", args[0])
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(numberCmd)
}
