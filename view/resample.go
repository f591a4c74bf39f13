package view

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

const day = 24 * time.Hour

// Bucket holds the column means of the records falling into a run of
// consecutive calendar days. Mobility entries are NaN when no record of
// the bucket carries a reading.
type Bucket struct {
	Start               time.Time
	Size                int
	NewCases            float64
	NewDeaths           float64
	NewCasesPerMillion  float64
	NewDeathsPerMillion float64
	Mobility            schema.Mobility
}

// Metric returns the mean daily count matching the metric mode
func (b Bucket) Metric(mode schema.MetricMode) float64 {
	if mode == schema.MetricDeaths {
		return b.NewDeaths
	}
	return b.NewCases
}

// PerMillion returns the mean per-million rate matching the metric mode
func (b Bucket) PerMillion(mode schema.MetricMode) float64 {
	if mode == schema.MetricDeaths {
		return b.NewDeathsPerMillion
	}
	return b.NewCasesPerMillion
}

type accumulator struct {
	start     time.Time
	size      int
	cases     float64
	deaths    float64
	casesPM   float64
	deathsPM  float64
	mobility  [schema.IndicatorCount]float64
	mobilityN [schema.IndicatorCount]int
}

func (a *accumulator) add(r schema.Record) {
	a.size++
	a.cases += float64(r.NewCases)
	a.deaths += float64(r.NewDeaths)
	a.casesPM += r.NewCasesPerMillion
	a.deathsPM += r.NewDeathsPerMillion
	for n, v := range r.Mobility {
		if math.IsNaN(v) {
			continue
		}
		a.mobility[n] += v
		a.mobilityN[n]++
	}
}

func (a *accumulator) bucket() Bucket {
	n := float64(a.size)
	b := Bucket{
		Start:               a.start,
		Size:                a.size,
		NewCases:            a.cases / n,
		NewDeaths:           a.deaths / n,
		NewCasesPerMillion:  a.casesPM / n,
		NewDeathsPerMillion: a.deathsPM / n,
		Mobility:            schema.NewMobility(),
	}
	for i := range b.Mobility {
		if a.mobilityN[i] > 0 {
			b.Mobility[i] = a.mobility[i] / float64(a.mobilityN[i])
		}
	}
	return b
}

// Resample groups one country's records into buckets of width calendar
// days starting at the earliest record. Days without a record are left out
// of the means and buckets without any record are dropped.
func Resample(records []schema.Record, width int) ([]Bucket, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: bucket width %d", ErrInvalidSelection, width)
	}
	if len(records) == 0 {
		return []Bucket{}, nil
	}

	sorted := make([]schema.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := utils.DateOf(sorted[0].Date)
	span := time.Duration(width) * day

	buckets := []Bucket{}
	var current *accumulator
	for _, r := range sorted {
		date := utils.DateOf(r.Date)
		index := int64(date.Sub(first) / span)
		start := first.Add(time.Duration(index) * span)

		if current == nil || !current.start.Equal(start) {
			if current != nil {
				buckets = append(buckets, current.bucket())
			}
			current = &accumulator{start: start}
		}
		current.add(r)
	}
	buckets = append(buckets, current.bucket())

	return buckets, nil
}
