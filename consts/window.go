package consts

import "time"

const (
	// DefaultSliderMarkEvery labels one slider day out of this many
	DefaultSliderMarkEvery = 50

	DefaultTimeSeriesWidth = 7
	DefaultPerMillionWidth = 3

	DateLayout          = "2006-01-02"
	FlagAssetPathFormat = "flags/%s.svg"

	LegendDomainMin = 0
	LegendDomainMax = 8
)

var (
	// AnalysisStart and AnalysisEnd bound the analysis window, both inclusive.
	AnalysisStart = time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	AnalysisEnd   = time.Date(2021, time.March, 2, 0, 0, 0, 0, time.UTC)

	// LegendTickPositions are the log-domain positions shown on the choropleth colour bar
	LegendTickPositions = []float64{0, 1, 2, 3, 5, 6, 7, 8}

	// AllowedBucketWidths are the resampling widths exposed to clients
	AllowedBucketWidths = []int{3, 7}
)
