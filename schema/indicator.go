package schema

import (
	"fmt"
	"strings"
)

// Indicator is the key of a mobility indicator. The value is the percent
// change of visits (or of time spent, for residential) against the
// pre-pandemic baseline for the same weekday.
type Indicator string

const (
	RetailAndRecreation Indicator = "retail_and_recreation"
	GroceryAndPharmacy  Indicator = "grocery_and_pharmacy"
	Parks               Indicator = "parks"
	TransitStations     Indicator = "transit_stations"
	Workplaces          Indicator = "workplaces"
	Residential         Indicator = "residential"
)

const (
	IndicatorCount = 6

	indicatorColumnSuffix = "_percent_change_from_baseline"
)

// AllIndicators lists the indicators in their fixed column order
var AllIndicators = [IndicatorCount]Indicator{
	RetailAndRecreation,
	GroceryAndPharmacy,
	Parks,
	TransitStations,
	Workplaces,
	Residential,
}

// DefaultIndicator is selected when a client asks for no indicator at all
var DefaultIndicator = Workplaces

var indicatorDisplayNames = map[Indicator]string{
	RetailAndRecreation: "Retail and Recreation",
	GroceryAndPharmacy:  "Grocery and Pharmacy",
	Parks:               "Parks",
	TransitStations:     "Transit Station",
	Workplaces:          "Workplaces",
	Residential:         "Residential",
}

// ParseIndicator accepts either the short key (`parks`) or the source column
// name (`parks_percent_change_from_baseline`).
func ParseIndicator(s string) (Indicator, error) {
	key := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), indicatorColumnSuffix)
	i := Indicator(key)
	if i.Index() < 0 {
		return "", fmt.Errorf("unknown indicator %q", s)
	}
	return i, nil
}

// Index returns the position of the indicator in AllIndicators, -1 if unknown
func (i Indicator) Index() int {
	for n, v := range AllIndicators {
		if v == i {
			return n
		}
	}
	return -1
}

// Column returns the name of the source column holding the indicator
func (i Indicator) Column() string {
	return string(i) + indicatorColumnSuffix
}

// DisplayName returns the English label shown on charts
func (i Indicator) DisplayName() string {
	if name, ok := indicatorDisplayNames[i]; ok {
		return name
	}
	return string(i)
}
