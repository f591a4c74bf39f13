package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/schema"
)

func TestIndicatorNameDefaultsToEnglish(t *testing.T) {
	loc := NewLocalizer("en")
	assert.Equal(t, "Transit Station", IndicatorName(loc, schema.TransitStations))
	assert.Equal(t, "Workplaces", IndicatorName(nil, schema.Workplaces))
	assert.Equal(t, []string{"Parks", "Residential"}, IndicatorNames(loc, []schema.Indicator{schema.Parks, schema.Residential}))
}

func TestMetricLabelsDefaultToEnglish(t *testing.T) {
	loc := NewLocalizer("en")
	assert.Equal(t, "new cases per million", PerMillionLabel(loc, schema.MetricCases))
	assert.Equal(t, "new deaths per million", PerMillionLabel(loc, schema.MetricDeaths))
	assert.Equal(t, "New deaths", DailyLabel(loc, schema.MetricDeaths))
}

func TestLocalizedMessageFiles(t *testing.T) {
	assert.NoError(t, InitI18NBundle("../i18n"))

	loc := NewLocalizer("pt-PT,pt;q=0.9")
	assert.Equal(t, "Parques", IndicatorName(loc, schema.Parks))
	assert.Equal(t, "novos casos por milhão", PerMillionLabel(loc, schema.MetricCases))

	en := NewLocalizer("en")
	assert.Equal(t, "Parks", IndicatorName(en, schema.Parks))
}
