package schema

import (
	"math"
	"time"
)

// Mobility holds one reading per indicator, in AllIndicators order.
// A NaN entry means the source had no reading.
type Mobility [IndicatorCount]float64

// NewMobility returns a Mobility without any reading
func NewMobility() Mobility {
	var m Mobility
	for n := range m {
		m[n] = math.NaN()
	}
	return m
}

// Get returns the reading of an indicator and whether there is one
func (m Mobility) Get(i Indicator) (float64, bool) {
	n := i.Index()
	if n < 0 || math.IsNaN(m[n]) {
		return 0, false
	}
	return m[n], true
}

// Value returns the reading as a pointer, nil when there is none
func (m Mobility) Value(i Indicator) *float64 {
	v, ok := m.Get(i)
	if !ok {
		return nil
	}
	return &v
}

// Set stores a reading, ignoring unknown indicators
func (m *Mobility) Set(i Indicator, v float64) {
	if n := i.Index(); n >= 0 {
		m[n] = v
	}
}

// Record is one country-day row of the dataset
type Record struct {
	Country             string    `json:"country_name" yaml:"country_name"`
	ISOCode             string    `json:"iso_code" yaml:"iso_code"`
	Date                time.Time `json:"date" yaml:"date"`
	NewCases            int64     `json:"new_cases" yaml:"new_cases"`
	NewDeaths           int64     `json:"new_deaths" yaml:"new_deaths"`
	NewCasesPerMillion  float64   `json:"new_cases_per_million" yaml:"new_cases_per_million"`
	NewDeathsPerMillion float64   `json:"new_deaths_per_million" yaml:"new_deaths_per_million"`
	Mobility            Mobility  `json:"-" yaml:"-"`
	Latitude            float64   `json:"latitude" yaml:"latitude"`
	Longitude           float64   `json:"longitude" yaml:"longitude"`
}

// PerMillion returns the per-million rate matching the metric mode
func (r Record) PerMillion(mode MetricMode) float64 {
	if mode == MetricDeaths {
		return r.NewDeathsPerMillion
	}
	return r.NewCasesPerMillion
}

// Count returns the raw daily count matching the metric mode
func (r Record) Count(mode MetricMode) int64 {
	if mode == MetricDeaths {
		return r.NewDeaths
	}
	return r.NewCases
}
