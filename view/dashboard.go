package view

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
)

// Dashboard computes every view of one selection. The views only share the
// dataset and the selection, so their order does not matter.
func Dashboard(ds store.DatasetStore, sel schema.Selection, loc *i18n.Localizer) (schema.Dashboard, error) {
	profile, err := Profile(ds, sel.Country)
	if err != nil {
		return schema.Dashboard{}, err
	}

	totals, err := CountryTotals(ds, sel.Country)
	if err != nil {
		return schema.Dashboard{}, err
	}

	series, err := TimeSeries(ds, sel, consts.DefaultTimeSeriesWidth, loc)
	if err != nil {
		return schema.Dashboard{}, err
	}

	perMillion, err := PerMillionSeries(ds, sel.Country, sel.MetricMode, consts.DefaultPerMillionWidth)
	if err != nil {
		return schema.Dashboard{}, err
	}

	return schema.Dashboard{
		Selection:  sel,
		Profile:    profile,
		Totals:     totals,
		Choropleth: Choropleth(ds, sel.AsOfDate, sel.MetricMode, loc),
		Heatmap:    Heatmap(ds, sel.AsOfDate, loc),
		TimeSeries: series,
		PerMillion: perMillion,
	}, nil
}
