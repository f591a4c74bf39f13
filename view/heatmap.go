package view

import (
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

// Heatmap pivots the indicator readings of the date into a country ×
// indicator matrix. Only indicator columns present in the dataset appear.
func Heatmap(ds store.DatasetStore, date time.Time, loc *i18n.Localizer) schema.HeatmapView {
	columns := ds.Indicators()
	records := ds.RecordsAt(date)

	view := schema.HeatmapView{
		Date:         utils.DateOf(date),
		Rows:         make([]string, len(records)),
		Columns:      columns,
		ColumnLabels: utils.IndicatorNames(loc, columns),
		Values:       make([][]*float64, len(records)),
	}

	for i, r := range records {
		view.Rows[i] = r.Country
		row := make([]*float64, len(columns))
		for j, c := range columns {
			row[j] = r.Mobility.Value(c)
		}
		view.Values[i] = row
	}

	return view
}
