package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
)

func newTestDataset(t *testing.T) DatasetStore {
	records := []schema.Record{
		testRecord("Spain", "ESP", "2020-04-02", 30, 3),
		testRecord("Portugal", "PRT", "2020-04-02", 20, 2),
		testRecord("Portugal", "PRT", "2020-04-01", 10, 1),
		testRecord("Austria", "AUT", "2020-04-01", 5, 0),
		testRecord("Spain", "ESP", "2020-04-01", 15, 1),
	}
	ds, err := NewDataset(records, nil)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

func TestDatasetCountriesSorted(t *testing.T) {
	ds := newTestDataset(t)
	assert.Equal(t, []string{"Austria", "Portugal", "Spain"}, ds.Countries())
	assert.True(t, ds.HasCountry("Portugal"))
	assert.False(t, ds.HasCountry("Narnia"))
	assert.Equal(t, 5, ds.Len())
}

func TestDatasetRecordsForSortedByDate(t *testing.T) {
	ds := newTestDataset(t)

	records, err := ds.RecordsFor("Portugal")
	assert.NoError(t, err)
	if assert.Len(t, records, 2) {
		assert.Equal(t, testDate("2020-04-01"), records[0].Date)
		assert.Equal(t, testDate("2020-04-02"), records[1].Date)
	}

	_, err = ds.RecordsFor("Narnia")
	assert.True(t, errors.Is(err, ErrCountryNotFound))
}

func TestDatasetRecordsAtKeepsNaturalOrder(t *testing.T) {
	ds := newTestDataset(t)

	records := ds.RecordsAt(testDate("2020-04-01"))
	if assert.Len(t, records, 3) {
		assert.Equal(t, "Portugal", records[0].Country)
		assert.Equal(t, "Austria", records[1].Country)
		assert.Equal(t, "Spain", records[2].Country)
	}

	// time of day and location do not matter
	noon := time.Date(2020, time.April, 2, 12, 0, 0, 0, time.FixedZone("GMT+2", 7200))
	assert.Len(t, ds.RecordsAt(noon), 2)

	assert.Empty(t, ds.RecordsAt(testDate("2020-05-01")))
}

func TestDatasetReturnsCopies(t *testing.T) {
	ds := newTestDataset(t)

	records, _ := ds.RecordsFor("Portugal")
	records[0].NewCases = 999999

	again, _ := ds.RecordsFor("Portugal")
	assert.Equal(t, int64(10), again[0].NewCases)

	countries := ds.Countries()
	countries[0] = "Narnia"
	assert.Equal(t, "Austria", ds.Countries()[0])
}

func TestDatasetIndicators(t *testing.T) {
	ds := newTestDataset(t)
	assert.Equal(t, schema.AllIndicators[:], ds.Indicators())

	partial, err := NewDataset(nil, []schema.Indicator{schema.Residential, schema.Parks, schema.Parks})
	assert.NoError(t, err)
	assert.Equal(t, []schema.Indicator{schema.Parks, schema.Residential}, partial.Indicators())
	assert.Empty(t, partial.Countries())
}

func TestDatasetWindow(t *testing.T) {
	ds := newTestDataset(t)
	start, end := ds.Window()
	assert.Equal(t, consts.AnalysisStart, start)
	assert.Equal(t, consts.AnalysisEnd, end)
}

func TestDatasetRejectsDuplicates(t *testing.T) {
	_, err := NewDataset([]schema.Record{
		testRecord("Portugal", "PRT", "2020-04-01", 10, 1),
		testRecord("Portugal", "PRT", "2020-04-01", 11, 1),
	}, nil)
	assert.True(t, errors.Is(err, ErrDuplicateRecord))
}

func TestDatasetRejectsInconsistentCountry(t *testing.T) {
	other := testRecord("Portugal", "PRT", "2020-04-02", 10, 1)
	other.ISOCode = "POR"

	_, err := NewDataset([]schema.Record{
		testRecord("Portugal", "PRT", "2020-04-01", 10, 1),
		other,
	}, nil)
	assert.True(t, errors.Is(err, ErrInconsistentCountry))
}

func TestDatasetRejectsOutOfWindow(t *testing.T) {
	_, err := NewDataset([]schema.Record{
		testRecord("Portugal", "PRT", "2020-02-29", 10, 1),
	}, nil)
	assert.True(t, errors.Is(err, ErrRecordOutOfWindow))

	_, err = NewDataset([]schema.Record{
		testRecord("Portugal", "PRT", "2021-03-03", 10, 1),
	}, nil)
	assert.True(t, errors.Is(err, ErrRecordOutOfWindow))
}
