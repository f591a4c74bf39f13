package view

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

// TimeSeries resamples the selected country into buckets of width days and
// reports the mean daily count with the mean of every selected indicator.
func TimeSeries(ds store.DatasetStore, sel schema.Selection, width int, loc *i18n.Localizer) (schema.TimeSeriesView, error) {
	records, err := ds.RecordsFor(sel.Country)
	if err != nil {
		return schema.TimeSeriesView{}, err
	}

	buckets, err := Resample(records, width)
	if err != nil {
		return schema.TimeSeriesView{}, err
	}

	points := make([]schema.TimeSeriesPoint, len(buckets))
	for i, b := range buckets {
		values := make(map[schema.Indicator]*float64, len(sel.Indicators))
		for _, indicator := range sel.Indicators {
			values[indicator] = b.Mobility.Value(indicator)
		}
		points[i] = schema.TimeSeriesPoint{
			Date:       b.Start,
			Metric:     b.Metric(sel.MetricMode),
			Indicators: values,
		}
	}

	return schema.TimeSeriesView{
		Country:         sel.Country,
		MetricMode:      sel.MetricMode,
		MetricLabel:     utils.DailyLabel(loc, sel.MetricMode),
		Width:           width,
		Indicators:      sel.Indicators,
		IndicatorLabels: utils.IndicatorNames(loc, sel.Indicators),
		Points:          points,
	}, nil
}

// PerMillionSeries resamples the per-million rate of one country for the
// line chart.
func PerMillionSeries(ds store.DatasetStore, country string, mode schema.MetricMode, width int) (schema.PerMillionView, error) {
	records, err := ds.RecordsFor(country)
	if err != nil {
		return schema.PerMillionView{}, err
	}

	buckets, err := Resample(records, width)
	if err != nil {
		return schema.PerMillionView{}, err
	}

	points := make([]schema.PerMillionPoint, len(buckets))
	for i, b := range buckets {
		points[i] = schema.PerMillionPoint{
			Date:  b.Start,
			Value: b.PerMillion(mode),
		}
	}

	return schema.PerMillionView{
		Country:    country,
		MetricMode: mode,
		Width:      width,
		Points:     points,
	}, nil
}
