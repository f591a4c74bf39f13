package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
	"github.com/bitmark-inc/mobility-api/view"
)

var (
	inspectCountry    string
	inspectDate       string
	inspectDeaths     bool
	inspectIndicators []string
	inspectLang       string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the dashboard views of one selection as yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectCountry == "" {
			return fmt.Errorf("--country is required")
		}

		date, err := time.Parse(consts.DateLayout, inspectDate)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}

		if dir := viper.GetString("i18n.dir"); dir != "" {
			if err := utils.InitI18NBundle(dir); err != nil {
				return err
			}
		}

		ds, err := store.LoadCSV(viper.GetString("dataset.file"), loadOptions())
		if err != nil {
			return err
		}

		// dates typed on the command line are UTC calendar dates
		sel, err := view.NewSelection(ds, view.RawSelection{
			Country:    inspectCountry,
			Date:       utils.DateToUnix(date, time.UTC),
			Deaths:     inspectDeaths,
			Indicators: inspectIndicators,
		}, time.UTC)
		if err != nil {
			return err
		}

		dashboard, err := view.Dashboard(ds, sel, utils.NewLocalizer(inspectLang))
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(dashboard)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "List the countries of the cleaned dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := store.LoadCSV(viper.GetString("dataset.file"), loadOptions())
		if err != nil {
			return err
		}

		for _, country := range ds.Countries() {
			totals, err := view.CountryTotals(ds, country)
			if err != nil {
				return err
			}
			fmt.Printf("%-20s cases %10s  deaths %8s\n", country, totals.TotalCasesText, totals.TotalDeathsText)
		}
		fmt.Printf("indicators: %s\n", strings.Join(utils.IndicatorNames(nil, ds.Indicators()), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(countriesCmd)

	inspectCmd.Flags().StringVar(&inspectCountry, "country", "", "country name")
	inspectCmd.Flags().StringVar(&inspectDate, "date", consts.AnalysisStart.Format(consts.DateLayout), "as-of date, YYYY-MM-DD")
	inspectCmd.Flags().BoolVar(&inspectDeaths, "deaths", false, "show deaths instead of cases")
	inspectCmd.Flags().StringSliceVar(&inspectIndicators, "indicators", nil, "indicator keys")
	inspectCmd.Flags().StringVar(&inspectLang, "lang", "en", "label language")
}
