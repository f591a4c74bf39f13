package view

import (
	"strconv"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
)

// Totals sums the daily counts over every record given, whatever the
// metric mode or slider date.
func Totals(records []schema.Record) schema.Totals {
	var cases, deaths int64
	for _, r := range records {
		cases += r.NewCases
		deaths += r.NewDeaths
	}

	return schema.Totals{
		TotalCases:      cases,
		TotalDeaths:     deaths,
		TotalCasesText:  strconv.FormatInt(cases, 10),
		TotalDeathsText: strconv.FormatInt(deaths, 10),
	}
}

// CountryTotals is Totals over the whole window of one country
func CountryTotals(ds store.DatasetStore, country string) (schema.Totals, error) {
	records, err := ds.RecordsFor(country)
	if err != nil {
		return schema.Totals{}, err
	}
	return Totals(records), nil
}
