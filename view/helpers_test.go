package view

import (
	"testing"
	"time"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
)

func testDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixtureDataset(t *testing.T) store.DatasetStore {
	ds, err := store.LoadCSV("../store/fixtures/mobility.csv", nil)
	if err != nil {
		t.Fatal(err)
	}
	return ds
}

// dailyRecords returns n consecutive days of one country starting at start,
// with cases i and workplaces -i on day i.
func dailyRecords(country, iso, start string, n int) []schema.Record {
	first := testDate(start)
	records := make([]schema.Record, n)
	for i := 0; i < n; i++ {
		m := schema.NewMobility()
		m.Set(schema.Workplaces, -float64(i))
		m.Set(schema.Parks, float64(i*2))
		records[i] = schema.Record{
			Country:            country,
			ISOCode:            iso,
			Date:               first.AddDate(0, 0, i),
			NewCases:           int64(i),
			NewDeaths:          int64(i / 10),
			NewCasesPerMillion: float64(i) / 10,
			Mobility:           m,
		}
	}
	return records
}
