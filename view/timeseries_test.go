package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
)

func weeklyDataset(t *testing.T) store.DatasetStore {
	ds, err := store.NewDataset(dailyRecords("Portugal", "PRT", "2020-04-01", 30), nil)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestTimeSeries(t *testing.T) {
	ds := weeklyDataset(t)
	sel := schema.Selection{
		Country:    "Portugal",
		AsOfDate:   testDate("2020-04-10"),
		MetricMode: schema.MetricCases,
		Indicators: []schema.Indicator{schema.Workplaces, schema.Parks},
	}

	view, err := TimeSeries(ds, sel, 7, nil)
	assert.NoError(t, err)
	assert.Equal(t, "New cases", view.MetricLabel)
	assert.Equal(t, []string{"Workplaces", "Parks"}, view.IndicatorLabels)
	if !assert.Len(t, view.Points, 5) {
		return
	}

	first := view.Points[0]
	assert.Equal(t, testDate("2020-04-01"), first.Date)
	assert.InDelta(t, 3, first.Metric, 1e-9)
	assert.Len(t, first.Indicators, 2)
	assert.InDelta(t, -3, *first.Indicators[schema.Workplaces], 1e-9)
	assert.InDelta(t, 6, *first.Indicators[schema.Parks], 1e-9)

	last := view.Points[4]
	assert.Equal(t, testDate("2020-04-29"), last.Date)
	assert.InDelta(t, -28.5, *last.Indicators[schema.Workplaces], 1e-9)
}

func TestTimeSeriesDeaths(t *testing.T) {
	ds := weeklyDataset(t)
	sel := schema.Selection{
		Country:    "Portugal",
		MetricMode: schema.MetricDeaths,
		Indicators: []schema.Indicator{schema.Residential},
	}

	view, err := TimeSeries(ds, sel, 3, nil)
	assert.NoError(t, err)
	assert.Equal(t, "New deaths", view.MetricLabel)
	if assert.Len(t, view.Points, 10) {
		assert.InDelta(t, 0, view.Points[0].Metric, 1e-9)
		assert.InDelta(t, 2, view.Points[9].Metric, 1e-9)
		assert.Nil(t, view.Points[0].Indicators[schema.Residential])
	}
}

func TestTimeSeriesErrors(t *testing.T) {
	ds := weeklyDataset(t)

	_, err := TimeSeries(ds, schema.Selection{Country: "Narnia"}, 7, nil)
	assert.True(t, errors.Is(err, store.ErrCountryNotFound))

	_, err = TimeSeries(ds, schema.Selection{Country: "Portugal"}, 0, nil)
	assert.True(t, errors.Is(err, ErrInvalidSelection))
}

func TestPerMillionSeries(t *testing.T) {
	ds := weeklyDataset(t)

	view, err := PerMillionSeries(ds, "Portugal", schema.MetricCases, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, view.Width)
	if assert.Len(t, view.Points, 10) {
		assert.Equal(t, testDate("2020-04-04"), view.Points[1].Date)
		assert.InDelta(t, 0.4, view.Points[1].Value, 1e-9)
	}

	view, err = PerMillionSeries(ds, "Portugal", schema.MetricDeaths, 7)
	assert.NoError(t, err)
	assert.Len(t, view.Points, 5)
	assert.InDelta(t, 0, view.Points[0].Value, 1e-9)
}
