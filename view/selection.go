package view

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

const (
	viewLogPrefix = "view"
)

var (
	ErrInvalidSelection = fmt.Errorf("invalid selection")
)

// RawSelection is a view request as received from a client
type RawSelection struct {
	Country    string
	Date       int64 // Unix seconds at local midnight
	Deaths     bool
	Indicators []string
}

// NewSelection validates a raw request against the dataset and resolves
// every default. The date is clamped into the dataset window.
func NewSelection(ds store.DatasetStore, raw RawSelection, loc *time.Location) (schema.Selection, error) {
	if !ds.HasCountry(raw.Country) {
		return schema.Selection{}, fmt.Errorf("%w: unknown country %q", ErrInvalidSelection, raw.Country)
	}

	indicators, err := resolveIndicators(raw.Indicators)
	if err != nil {
		return schema.Selection{}, err
	}

	start, end := ds.Window()
	date := utils.ClampDate(utils.UnixToDate(raw.Date, loc), start, end)

	sel := schema.Selection{
		Country:    raw.Country,
		AsOfDate:   date,
		MetricMode: schema.MetricModeFromFlag(raw.Deaths),
		Indicators: indicators,
	}

	log.WithFields(log.Fields{
		"prefix":     viewLogPrefix,
		"country":    sel.Country,
		"date":       sel.AsOfDate,
		"mode":       sel.MetricMode,
		"indicators": sel.Indicators,
	}).Debug("selection resolved")

	return sel, nil
}

// resolveIndicators keeps the first occurrence of each key and falls back
// to workplaces when nothing is selected.
func resolveIndicators(keys []string) ([]schema.Indicator, error) {
	seen := make(map[schema.Indicator]bool)
	indicators := []schema.Indicator{}
	for _, key := range keys {
		i, err := schema.ParseIndicator(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSelection, err)
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		indicators = append(indicators, i)
	}

	if len(indicators) == 0 {
		indicators = append(indicators, schema.DefaultIndicator)
	}
	return indicators, nil
}
