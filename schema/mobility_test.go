package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIndicator(t *testing.T) {
	cases := map[string]Indicator{
		"parks":                                         Parks,
		"Workplaces":                                    Workplaces,
		" residential ":                                 Residential,
		"transit_stations_percent_change_from_baseline": TransitStations,
	}
	for input, expected := range cases {
		actual, err := ParseIndicator(input)
		assert.NoError(t, err)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseIndicator("beaches")
	assert.Error(t, err)
}

func TestIndicatorColumnAndName(t *testing.T) {
	assert.Equal(t, "workplaces_percent_change_from_baseline", Workplaces.Column())
	assert.Equal(t, "Transit Station", TransitStations.DisplayName())
	assert.Equal(t, 4, Workplaces.Index())
	assert.Equal(t, -1, Indicator("beaches").Index())
}

func TestMobilityMissingReading(t *testing.T) {
	m := NewMobility()
	_, ok := m.Get(Parks)
	assert.False(t, ok)
	assert.Nil(t, m.Value(Parks))

	m.Set(Parks, -12.5)
	v, ok := m.Get(Parks)
	assert.True(t, ok)
	assert.Equal(t, -12.5, v)
	assert.Equal(t, -12.5, *m.Value(Parks))
}

func TestMobilityRowKeepsMissingIndicators(t *testing.T) {
	record := Record{
		Country:            "Portugal",
		ISOCode:            "PRT",
		Date:               time.Date(2020, time.April, 1, 0, 0, 0, 0, time.UTC),
		NewCases:           1035,
		NewCasesPerMillion: 101.5,
		Mobility:           NewMobility(),
		Latitude:           39.4,
		Longitude:          -8.2,
	}
	record.Mobility.Set(Workplaces, -61)

	row := NewMobilityRow(record)
	assert.Nil(t, row.Parks)
	if assert.NotNil(t, row.Workplaces) {
		assert.Equal(t, float64(-61), *row.Workplaces)
	}

	back := row.Record()
	assert.Equal(t, record.Country, back.Country)
	assert.Equal(t, record.Date, back.Date)
	assert.Equal(t, record.NewCases, back.NewCases)
	_, ok := back.Mobility.Get(Parks)
	assert.False(t, ok)
	v, ok := back.Mobility.Get(Workplaces)
	assert.True(t, ok)
	assert.Equal(t, float64(-61), v)
}

func TestMetricModeFromFlag(t *testing.T) {
	assert.Equal(t, MetricCases, MetricModeFromFlag(false))
	assert.Equal(t, MetricDeaths, MetricModeFromFlag(true))
	assert.Equal(t, "new deaths per million", MetricDeaths.PerMillionLabel())
}
