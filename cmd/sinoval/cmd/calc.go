package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sinoval/sinoval/decmath"
)

var calcScale int

var calcCmd = &cobra.Command{
	Use:   "calc {add|sub|mul|div} A B",
	Short: "Decimal-safe arithmetic on two numbers",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseFloatArg("A", args[1])
		if err != nil {
			return err
		}
		b, err := parseFloatArg("B", args[2])
		if err != nil {
			return err
		}

		var res float64
		switch op := args[0]; op {
		case "add":
			res = decmath.Add(a, b)
		case "sub":
			res = decmath.Sub(a, b)
		case "mul":
			res = decmath.Mul(a, b)
		case "div":
			res, err = decmath.Div(a, b)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown operation %q", op)
		}
		if calcScale > 0 {
			res = decmath.Round(res, calcScale)
		}

		fmt.Println(strconv.FormatFloat(res, 'f', -1, 64))
		return nil
	},
}

func init() {
	calcCmd.Flags().IntVar(&calcScale, "scale", 0, "round the result to this many decimal places")
	rootCmd.AddCommand(calcCmd)
}
