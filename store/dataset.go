package store

import (
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

const (
	datasetLogPrefix = "dataset"
)

var (
	ErrCountryNotFound     = fmt.Errorf("country not found")
	ErrDuplicateRecord     = fmt.Errorf("duplicate record for country and date")
	ErrInconsistentCountry = fmt.Errorf("inconsistent country attributes")
	ErrRecordOutOfWindow   = fmt.Errorf("record outside the analysis window")
)

// DatasetStore - read-only access to the cleaned country × date table.
// Every returned slice is a copy, so callers can never alter the dataset.
type DatasetStore interface {
	// Countries returns the country names sorted alphabetically
	Countries() []string
	HasCountry(country string) bool
	// RecordsFor returns the records of a country sorted by date
	RecordsFor(country string) ([]schema.Record, error)
	// RecordsAt returns one record per country reporting the date, in the
	// natural row order of the source
	RecordsAt(date time.Time) []schema.Record
	// Indicators returns the indicator columns present in the source
	Indicators() []schema.Indicator
	Window() (time.Time, time.Time)
	Len() int
}

type dataset struct {
	records    []schema.Record
	byCountry  map[string][]int
	byDate     map[string][]int
	countries  []string
	indicators []schema.Indicator
	start      time.Time
	end        time.Time
}

func dateKey(date time.Time) string {
	return utils.DateOf(date).Format(consts.DateLayout)
}

// NewDataset builds the dataset store over the analysis window and checks
// its invariants. A nil indicator list means all six indicators are present.
func NewDataset(records []schema.Record, indicators []schema.Indicator) (DatasetStore, error) {
	d := &dataset{
		records:    make([]schema.Record, len(records)),
		byCountry:  make(map[string][]int),
		byDate:     make(map[string][]int),
		indicators: normalizeIndicators(indicators),
		start:      consts.AnalysisStart,
		end:        consts.AnalysisEnd,
	}

	seen := make(map[string]struct{})
	for i, r := range records {
		r.Date = utils.DateOf(r.Date)
		if r.Date.Before(d.start) || r.Date.After(d.end) {
			return nil, fmt.Errorf("%w: %s on %s", ErrRecordOutOfWindow, r.Country, r.Date.Format(consts.DateLayout))
		}

		key := r.Country + "|" + dateKey(r.Date)
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s on %s", ErrDuplicateRecord, r.Country, r.Date.Format(consts.DateLayout))
		}
		seen[key] = struct{}{}

		if rows, ok := d.byCountry[r.Country]; ok {
			first := d.records[rows[0]]
			if first.ISOCode != r.ISOCode || first.Latitude != r.Latitude || first.Longitude != r.Longitude {
				return nil, fmt.Errorf("%w: %s", ErrInconsistentCountry, r.Country)
			}
		} else {
			d.countries = append(d.countries, r.Country)
		}

		d.records[i] = r
		d.byCountry[r.Country] = append(d.byCountry[r.Country], i)
		d.byDate[dateKey(r.Date)] = append(d.byDate[dateKey(r.Date)], i)
	}

	for _, rows := range d.byCountry {
		sort.SliceStable(rows, func(a, b int) bool {
			return d.records[rows[a]].Date.Before(d.records[rows[b]].Date)
		})
	}
	sort.Strings(d.countries)

	log.WithFields(log.Fields{
		"prefix":     datasetLogPrefix,
		"records":    len(d.records),
		"countries":  len(d.countries),
		"indicators": len(d.indicators),
	}).Info("dataset ready")

	return d, nil
}

func normalizeIndicators(indicators []schema.Indicator) []schema.Indicator {
	if indicators == nil {
		return append([]schema.Indicator{}, schema.AllIndicators[:]...)
	}

	present := make(map[schema.Indicator]bool)
	for _, i := range indicators {
		present[i] = true
	}

	result := []schema.Indicator{}
	for _, i := range schema.AllIndicators {
		if present[i] {
			result = append(result, i)
		}
	}
	return result
}

func (d *dataset) collect(rows []int) []schema.Record {
	result := make([]schema.Record, len(rows))
	for i, row := range rows {
		result[i] = d.records[row]
	}
	return result
}

func (d *dataset) Countries() []string {
	return append([]string{}, d.countries...)
}

func (d *dataset) HasCountry(country string) bool {
	_, ok := d.byCountry[country]
	return ok
}

func (d *dataset) RecordsFor(country string) ([]schema.Record, error) {
	rows, ok := d.byCountry[country]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, country)
	}
	return d.collect(rows), nil
}

func (d *dataset) RecordsAt(date time.Time) []schema.Record {
	return d.collect(d.byDate[dateKey(date)])
}

func (d *dataset) Indicators() []schema.Indicator {
	return append([]schema.Indicator{}, d.indicators...)
}

func (d *dataset) Window() (time.Time, time.Time) {
	return d.start, d.end
}

func (d *dataset) Len() int {
	return len(d.records)
}
