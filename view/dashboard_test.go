package view

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

func TestProfile(t *testing.T) {
	ds := fixtureDataset(t)

	profile, err := Profile(ds, "Spain")
	assert.NoError(t, err)
	assert.Equal(t, "ESP", profile.ISOCode)
	assert.Equal(t, "flags/ESP.svg", profile.FlagAsset)
	assert.InDelta(t, 40.463667, profile.Latitude, 1e-9)
	assert.InDelta(t, -3.74922, profile.Longitude, 1e-9)

	_, err = Profile(ds, "Narnia")
	assert.True(t, errors.Is(err, store.ErrCountryNotFound))
}

func TestDashboard(t *testing.T) {
	ds := fixtureDataset(t)

	sel, err := NewSelection(ds, RawSelection{
		Country:    "Portugal",
		Date:       utils.DateToUnix(testDate("2020-04-01"), time.UTC),
		Indicators: []string{"parks"},
	}, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	dashboard, err := Dashboard(ds, sel, nil)
	assert.NoError(t, err)
	assert.Equal(t, sel, dashboard.Selection)
	assert.Equal(t, "PRT", dashboard.Profile.ISOCode)
	assert.Equal(t, int64(2626), dashboard.Totals.TotalCases)
	assert.Len(t, dashboard.Choropleth.Entries, 2)
	assert.Equal(t, []string{"Spain", "Portugal"}, dashboard.Heatmap.Rows)
	assert.Equal(t, []schema.Indicator{schema.Parks}, dashboard.TimeSeries.Indicators)
	assert.Equal(t, 7, dashboard.TimeSeries.Width)
	assert.Equal(t, 3, dashboard.PerMillion.Width)

	// 2020-03-31 to 2020-04-02 fall into one bucket
	if assert.Len(t, dashboard.TimeSeries.Points, 1) {
		parks := dashboard.TimeSeries.Points[0].Indicators[schema.Parks]
		assert.InDelta(t, (-76.0-75.0)/2, *parks, 1e-9)
	}
}
