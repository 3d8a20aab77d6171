package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sinoval",
	Short: "China-specific value conversions",
	Long: `sinoval converts values the way Chinese maps and financial documents need:

  calc    - decimal-safe float arithmetic
  price   - uppercase Chinese numerals for amounts (壹仟元整)
  number  - plain Chinese numerals (一千)
  coord   - WGS-84 / GCJ-02 / BD-09 coordinate transforms`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func parseFloatArg(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return f, nil
}
