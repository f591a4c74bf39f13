package schema

import (
	"time"
)

const (
	MobilityCollection = "mobility"
	MobilityTable      = "mobility"
)

// MobilityRow is the persisted shape of a Record, shared by the mongodb
// collection and the postgres table. Nil indicators are missing readings.
type MobilityRow struct {
	ID                  uint      `json:"-" bson:"-" gorm:"primary_key"`
	Country             string    `json:"country_region" bson:"country_region" gorm:"column:country_region;not null;unique_index:mobility_country_date"`
	ISOCode             string    `json:"iso_code" bson:"iso_code" gorm:"column:iso_code;size:3;not null"`
	Date                time.Time `json:"date" bson:"date" gorm:"column:date;type:date;not null;unique_index:mobility_country_date"`
	NewCases            int64     `json:"new_cases" bson:"new_cases" gorm:"column:new_cases"`
	NewDeaths           int64     `json:"new_deaths" bson:"new_deaths" gorm:"column:new_deaths"`
	NewCasesPerMillion  float64   `json:"new_cases_per_million" bson:"new_cases_per_million" gorm:"column:new_cases_per_million"`
	NewDeathsPerMillion float64   `json:"new_deaths_per_million" bson:"new_deaths_per_million" gorm:"column:new_deaths_per_million"`
	RetailAndRecreation *float64  `json:"retail_and_recreation_percent_change_from_baseline" bson:"retail_and_recreation_percent_change_from_baseline,omitempty" gorm:"column:retail_and_recreation_percent_change_from_baseline"`
	GroceryAndPharmacy  *float64  `json:"grocery_and_pharmacy_percent_change_from_baseline" bson:"grocery_and_pharmacy_percent_change_from_baseline,omitempty" gorm:"column:grocery_and_pharmacy_percent_change_from_baseline"`
	Parks               *float64  `json:"parks_percent_change_from_baseline" bson:"parks_percent_change_from_baseline,omitempty" gorm:"column:parks_percent_change_from_baseline"`
	TransitStations     *float64  `json:"transit_stations_percent_change_from_baseline" bson:"transit_stations_percent_change_from_baseline,omitempty" gorm:"column:transit_stations_percent_change_from_baseline"`
	Workplaces          *float64  `json:"workplaces_percent_change_from_baseline" bson:"workplaces_percent_change_from_baseline,omitempty" gorm:"column:workplaces_percent_change_from_baseline"`
	Residential         *float64  `json:"residential_percent_change_from_baseline" bson:"residential_percent_change_from_baseline,omitempty" gorm:"column:residential_percent_change_from_baseline"`
	Latitude            float64   `json:"latitude" bson:"latitude" gorm:"column:latitude"`
	Longitude           float64   `json:"longitude" bson:"longitude" gorm:"column:longitude"`
}

func (MobilityRow) TableName() string {
	return MobilityTable
}

func (r *MobilityRow) indicators() [IndicatorCount]**float64 {
	return [IndicatorCount]**float64{
		&r.RetailAndRecreation,
		&r.GroceryAndPharmacy,
		&r.Parks,
		&r.TransitStations,
		&r.Workplaces,
		&r.Residential,
	}
}

// Record converts the persisted row into a dataset record
func (r MobilityRow) Record() Record {
	d := r.Date.UTC()
	record := Record{
		Country:             r.Country,
		ISOCode:             r.ISOCode,
		Date:                time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		NewCases:            r.NewCases,
		NewDeaths:           r.NewDeaths,
		NewCasesPerMillion:  r.NewCasesPerMillion,
		NewDeathsPerMillion: r.NewDeathsPerMillion,
		Mobility:            NewMobility(),
		Latitude:            r.Latitude,
		Longitude:           r.Longitude,
	}
	for n, v := range r.indicators() {
		if *v != nil {
			record.Mobility[n] = **v
		}
	}
	return record
}

// NewMobilityRow converts a dataset record into its persisted shape
func NewMobilityRow(record Record) MobilityRow {
	row := MobilityRow{
		Country:             record.Country,
		ISOCode:             record.ISOCode,
		Date:                record.Date,
		NewCases:            record.NewCases,
		NewDeaths:           record.NewDeaths,
		NewCasesPerMillion:  record.NewCasesPerMillion,
		NewDeathsPerMillion: record.NewDeathsPerMillion,
		Latitude:            record.Latitude,
		Longitude:           record.Longitude,
	}
	for n, v := range row.indicators() {
		*v = record.Mobility.Value(AllIndicators[n])
	}
	return row
}
