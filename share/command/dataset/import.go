package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/mobility-api/store"
)

var importTarget string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Clean the csv dataset and upsert it into mongodb or postgres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := loadOptions()

		file, err := os.Open(viper.GetString("dataset.file"))
		if err != nil {
			return err
		}
		defer file.Close()

		records, indicators, err := store.ReadCSV(file, opts)
		if err != nil {
			return err
		}
		records = opts.Clean(records)

		// refuse to persist a table the service would not load
		if _, err := store.NewDataset(records, indicators); err != nil {
			return err
		}

		ctx := context.Background()
		target, err := openTarget(ctx, importTarget)
		if err != nil {
			return err
		}
		defer target.Close()

		saved, err := target.SaveRecords(ctx, records)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"prefix": "import",
			"target": importTarget,
			"rows":   len(records),
			"saved":  saved,
		}).Info("dataset imported")
		fmt.Printf("imported %d rows into %s\n", len(records), importTarget)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importTarget, "target", "t", "mongo", "import target: mongo or postgres")
}
