package store

import (
	"time"

	"github.com/bitmark-inc/mobility-api/schema"
)

func testDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRecord(country, iso, date string, cases, deaths int64) schema.Record {
	return schema.Record{
		Country:   country,
		ISOCode:   iso,
		Date:      testDate(date),
		NewCases:  cases,
		NewDeaths: deaths,
		Mobility:  schema.NewMobility(),
		Latitude:  float64(len(country)),
		Longitude: float64(len(iso)),
	}
}
