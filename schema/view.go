package schema

import "time"

type ChoroplethEntry struct {
	ISOCode     string  `json:"iso_code" yaml:"iso_code"`
	Country     string  `json:"country_name" yaml:"country_name"`
	RawValue    float64 `json:"raw_value" yaml:"raw_value"`
	LogValue    float64 `json:"log_value" yaml:"log_value"`
	DisplayText string  `json:"display_text" yaml:"display_text"`
}

// LegendTick places a raw-value label at a log-domain position of the colour bar
type LegendTick struct {
	Position float64 `json:"position" yaml:"position"`
	Label    string  `json:"label" yaml:"label"`
}

type ChoroplethView struct {
	Date       time.Time         `json:"date" yaml:"date"`
	MetricMode MetricMode        `json:"metric_mode" yaml:"metric_mode"`
	Label      string            `json:"label" yaml:"label"`
	Entries    []ChoroplethEntry `json:"entries" yaml:"entries"`
	Legend     []LegendTick      `json:"legend" yaml:"legend"`
	ZMin       float64           `json:"zmin" yaml:"zmin"`
	ZMax       float64           `json:"zmax" yaml:"zmax"`
}

// HeatmapView is an indicator × country matrix; Values[row][column] is nil
// when the country has no reading for that indicator.
type HeatmapView struct {
	Date         time.Time    `json:"date" yaml:"date"`
	Rows         []string     `json:"rows" yaml:"rows"`
	Columns      []Indicator  `json:"columns" yaml:"columns"`
	ColumnLabels []string     `json:"column_labels" yaml:"column_labels"`
	Values       [][]*float64 `json:"values" yaml:"values"`
}

type TimeSeriesPoint struct {
	Date       time.Time              `json:"bucket_date" yaml:"bucket_date"`
	Metric     float64                `json:"metric_value" yaml:"metric_value"`
	Indicators map[Indicator]*float64 `json:"indicators" yaml:"indicators"`
}

type TimeSeriesView struct {
	Country         string            `json:"country" yaml:"country"`
	MetricMode      MetricMode        `json:"metric_mode" yaml:"metric_mode"`
	MetricLabel     string            `json:"metric_label" yaml:"metric_label"`
	Width           int               `json:"width" yaml:"width"`
	Indicators      []Indicator       `json:"indicators" yaml:"indicators"`
	IndicatorLabels []string          `json:"indicator_labels" yaml:"indicator_labels"`
	Points          []TimeSeriesPoint `json:"points" yaml:"points"`
}

type PerMillionPoint struct {
	Date  time.Time `json:"bucket_date" yaml:"bucket_date"`
	Value float64   `json:"value" yaml:"value"`
}

type PerMillionView struct {
	Country    string            `json:"country" yaml:"country"`
	MetricMode MetricMode        `json:"metric_mode" yaml:"metric_mode"`
	Width      int               `json:"width" yaml:"width"`
	Points     []PerMillionPoint `json:"points" yaml:"points"`
}

// Totals are all-time sums over the analysis window of one country
type Totals struct {
	TotalCases      int64  `json:"total_cases" yaml:"total_cases"`
	TotalDeaths     int64  `json:"total_deaths" yaml:"total_deaths"`
	TotalCasesText  string `json:"total_cases_text" yaml:"total_cases_text"`
	TotalDeathsText string `json:"total_deaths_text" yaml:"total_deaths_text"`
}

type CountryProfile struct {
	Country   string  `json:"country" yaml:"country"`
	ISOCode   string  `json:"iso_code" yaml:"iso_code"`
	FlagAsset string  `json:"flag_asset" yaml:"flag_asset"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

type Dashboard struct {
	Selection  Selection      `json:"selection" yaml:"selection"`
	Profile    CountryProfile `json:"profile" yaml:"profile"`
	Totals     Totals         `json:"totals" yaml:"totals"`
	Choropleth ChoroplethView `json:"choropleth" yaml:"choropleth"`
	Heatmap    HeatmapView    `json:"heatmap" yaml:"heatmap"`
	TimeSeries TimeSeriesView `json:"timeseries" yaml:"timeseries"`
	PerMillion PerMillionView `json:"per_million" yaml:"per_million"`
}

type SliderMark struct {
	Value int64  `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Slider describes the date slider in Unix seconds at local midnight
type Slider struct {
	Min   int64        `json:"min" yaml:"min"`
	Max   int64        `json:"max" yaml:"max"`
	Value int64        `json:"value" yaml:"value"`
	Marks []SliderMark `json:"marks" yaml:"marks"`
}
