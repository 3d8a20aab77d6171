package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sinoval/sinoval/coord"
)

var conversions = map[string]func(lng, lat float64) (float64, float64){
	"wgs84togcj02": coord.WGS84ToGCJ02,
	"gcj02towgs84": coord.GCJ02ToWGS84,
	"bd09togcj02":  coord.BD09ToGCJ02,
	"gcj02tobd09":  coord.GCJ02ToBD09,
	"wgs84tobd09":  coord.WGS84ToBD09,
	"bd09towgs84":  coord.BD09ToWGS84,
}

var coordCmd = &cobra.Command{
	Use:   "coord CONVERSION LNG LAT",
	Short: "Convert coordinates between WGS-84, GCJ-02 and BD-09",
	Long: `Convert a (longitude, latitude) pair between reference systems.

Conversions: wgs84togcj02, gcj02towgs84, bd09togcj02, gcj02tobd09,
wgs84tobd09, bd09towgs84.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, ok := conversions[args[0]]
		if !ok {
			return fmt.Errorf("unknown conversion %q", args[0])
		}
		lng, err := parseFloatArg("LNG", args[1])
		if err != nil {
			return err
		}
		lat, err := parseFloatArg("LAT", args[2])
		if err != nil {
			return err
		}
		outLng, outLat := conv(lng, lat)
		fmt.Printf("%.14f %.14f\n", outLng, outLat)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coordCmd)
}
