package view

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

func TestLegend(t *testing.T) {
	labels := []string{}
	for _, tick := range Legend() {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"1", "3", "7", "20", "148", "403", "1097", "2981"}, labels)
}

func TestChoroplethPortugal(t *testing.T) {
	ds := fixtureDataset(t)

	view := Choropleth(ds, testDate("2020-04-01"), schema.MetricCases, nil)
	assert.Equal(t, testDate("2020-04-01"), view.Date)
	assert.Equal(t, 0.0, view.ZMin)
	assert.Equal(t, 8.0, view.ZMax)
	assert.Equal(t, "new cases per million", view.Label)

	found := []schema.ChoroplethEntry{}
	for _, e := range view.Entries {
		if e.ISOCode == "PRT" {
			found = append(found, e)
		}
	}
	if !assert.Len(t, found, 1) {
		return
	}
	assert.Equal(t, "Portugal", found[0].Country)
	assert.InDelta(t, 79.242, found[0].RawValue, 1e-9)
	assert.InDelta(t, math.Log(79.242), found[0].LogValue, 1e-9)
	assert.Equal(t, "Portugal: 79.2 new cases per million", found[0].DisplayText)
}

func TestChoroplethDeaths(t *testing.T) {
	ds := fixtureDataset(t)

	view := Choropleth(ds, testDate("2020-04-02"), schema.MetricDeaths, nil)
	if assert.Len(t, view.Entries, 2) {
		assert.Equal(t, "PRT", view.Entries[0].ISOCode)
		assert.Equal(t, "Portugal: 2.2 new deaths per million", view.Entries[0].DisplayText)
		assert.Equal(t, "MLT", view.Entries[1].ISOCode)
		assert.Equal(t, 0.0, view.Entries[1].LogValue)
	}
}

func TestChoroplethEmptyDate(t *testing.T) {
	ds := fixtureDataset(t)

	view := Choropleth(ds, testDate("2020-06-01"), schema.MetricCases, nil)
	assert.NotNil(t, view.Entries)
	assert.Empty(t, view.Entries)
	assert.Len(t, view.Legend, 8)
}

func TestChoroplethLocalized(t *testing.T) {
	if err := utils.InitI18NBundle("../i18n"); err != nil {
		t.Fatal(err)
	}
	ds := fixtureDataset(t)

	view := Choropleth(ds, testDate("2020-04-02"), schema.MetricCases, utils.NewLocalizer("pt"))
	assert.Equal(t, "novos casos por milhão", view.Label)
	if assert.NotEmpty(t, view.Entries) {
		assert.Equal(t, "Portugal: 76.8 novos casos por milhão", view.Entries[0].DisplayText)
	}
}
