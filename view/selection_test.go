package view

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

func TestNewSelectionDefaults(t *testing.T) {
	ds := fixtureDataset(t)

	sel, err := NewSelection(ds, RawSelection{
		Country: "Portugal",
		Date:    utils.DateToUnix(testDate("2020-04-01"), time.UTC),
	}, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, "Portugal", sel.Country)
	assert.Equal(t, testDate("2020-04-01"), sel.AsOfDate)
	assert.Equal(t, schema.MetricCases, sel.MetricMode)
	assert.Equal(t, []schema.Indicator{schema.Workplaces}, sel.Indicators)
}

func TestNewSelectionIndicatorsDeduplicated(t *testing.T) {
	ds := fixtureDataset(t)

	sel, err := NewSelection(ds, RawSelection{
		Country:    "Spain",
		Deaths:     true,
		Indicators: []string{"parks", "workplaces_percent_change_from_baseline", "parks", "workplaces"},
	}, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, schema.MetricDeaths, sel.MetricMode)
	assert.Equal(t, []schema.Indicator{schema.Parks, schema.Workplaces}, sel.Indicators)
}

func TestNewSelectionClampsDate(t *testing.T) {
	ds := fixtureDataset(t)
	start, end := ds.Window()

	sel, err := NewSelection(ds, RawSelection{Country: "Malta", Date: 0}, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, start, sel.AsOfDate)

	sel, err = NewSelection(ds, RawSelection{
		Country: "Malta",
		Date:    utils.DateToUnix(testDate("2022-01-01"), time.UTC),
	}, time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, end, sel.AsOfDate)
}

func TestNewSelectionLocalMidnight(t *testing.T) {
	ds := fixtureDataset(t)
	loc := time.FixedZone("GMT+8", 8*3600)

	sel, err := NewSelection(ds, RawSelection{
		Country: "Malta",
		Date:    utils.DateToUnix(testDate("2020-04-02"), loc),
	}, loc)
	assert.NoError(t, err)
	assert.Equal(t, testDate("2020-04-02"), sel.AsOfDate)
}

func TestNewSelectionInvalid(t *testing.T) {
	ds := fixtureDataset(t)

	_, err := NewSelection(ds, RawSelection{Country: "Narnia"}, time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidSelection))

	_, err = NewSelection(ds, RawSelection{Country: "Portugal", Indicators: []string{"beaches"}}, time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidSelection))
}
