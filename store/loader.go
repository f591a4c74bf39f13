package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

// LoadOptions holds the cleaning rules applied by every loader
type LoadOptions struct {
	Countries []string  // ISO codes to keep, empty keeps every country
	Start     time.Time // first date kept, zero means the analysis start
	End       time.Time // last date kept, zero means the analysis end
	Delimiter rune      // csv field delimiter, default ','
}

// DefaultLoadOptions keeps the EU member states over the analysis window
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		Countries: consts.EUCountryCodes(),
		Start:     consts.AnalysisStart,
		End:       consts.AnalysisEnd,
		Delimiter: ',',
	}
}

func (o *LoadOptions) window() (time.Time, time.Time) {
	start, end := o.Start, o.End
	if start.IsZero() || start.Before(consts.AnalysisStart) {
		start = consts.AnalysisStart
	}
	if end.IsZero() || end.After(consts.AnalysisEnd) {
		end = consts.AnalysisEnd
	}
	return start, end
}

// Clean drops the rows of countries not listed in the options and the rows
// outside the window, keeping the order of the remaining ones.
func (o *LoadOptions) Clean(records []schema.Record) []schema.Record {
	keep := make(map[string]bool)
	for _, c := range o.Countries {
		if key, err := consts.ISOCodeKey(c); err == nil {
			keep[key] = true
		} else {
			keep[c] = true
		}
	}

	start, end := o.window()
	result := make([]schema.Record, 0, len(records))
	droppedCountry, droppedDate := 0, 0
	for _, r := range records {
		if len(keep) > 0 && !keep[r.ISOCode] {
			droppedCountry++
			continue
		}
		d := utils.DateOf(r.Date)
		if d.Before(start) || d.After(end) {
			droppedDate++
			continue
		}
		result = append(result, r)
	}

	log.WithFields(log.Fields{
		"prefix":          datasetLogPrefix,
		"kept":            len(result),
		"dropped_country": droppedCountry,
		"dropped_date":    droppedDate,
	}).Debug("clean records")

	return result
}

// MobilityStore - persisted mobility rows
type MobilityStore interface {
	LoadRecords(ctx context.Context) ([]schema.Record, error)
	SaveRecords(ctx context.Context, records []schema.Record) (int64, error)
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

// LoadDataset reads every row of a persisted source and builds the dataset store
func LoadDataset(ctx context.Context, source MobilityStore, opts *LoadOptions) (DatasetStore, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	records, err := source.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	return NewDataset(opts.Clean(records), nil)
}
