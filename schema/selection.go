package schema

import "time"

// MetricMode chooses between case and death figures
type MetricMode string

const (
	MetricCases  MetricMode = "cases"
	MetricDeaths MetricMode = "deaths"
)

// MetricModeFromFlag converts the dashboard toggle, false meaning cases
func MetricModeFromFlag(deaths bool) MetricMode {
	if deaths {
		return MetricDeaths
	}
	return MetricCases
}

// PerMillionLabel is the English unit used on map tooltips and the colour bar
func (m MetricMode) PerMillionLabel() string {
	if m == MetricDeaths {
		return "new deaths per million"
	}
	return "new cases per million"
}

// DailyLabel is the English label of the daily count series
func (m MetricMode) DailyLabel() string {
	if m == MetricDeaths {
		return "New deaths"
	}
	return "New cases"
}

// Selection is a fully-resolved view request. Build it with view.NewSelection
// and treat it as read-only afterwards.
type Selection struct {
	Country    string      `json:"country" yaml:"country"`
	AsOfDate   time.Time   `json:"as_of_date" yaml:"as_of_date"`
	MetricMode MetricMode  `json:"metric_mode" yaml:"metric_mode"`
	Indicators []Indicator `json:"indicators" yaml:"indicators"`
}
