package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/store"
)

var boundariesCmd = &cobra.Command{
	Use:   "boundaries <file>",
	Short: "Check a GeoJSON boundary file covers the configured countries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := viper.GetString("boundary.file")
		if len(args) == 1 {
			file = args[0]
		}
		if file == "" {
			return fmt.Errorf("no boundary file given")
		}

		b, err := store.LoadBoundaryFile(file)
		if err != nil {
			return err
		}

		missing := 0
		for _, code := range loadOptions().Countries {
			iso, err := consts.ISOCodeKey(code)
			if err != nil {
				iso = code
			}
			lat, lon, ok := b.Center(iso)
			if !ok {
				missing++
				fmt.Printf("%s  missing\n", iso)
				continue
			}
			fmt.Printf("%s  centre %.4f, %.4f\n", iso, lat, lon)
		}

		fmt.Printf("%d features, %d countries missing\n", b.Len(), missing)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundariesCmd)
}
