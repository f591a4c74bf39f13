package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/utils"
)

const (
	columnCountry             = "country_region"
	columnISOCode             = "iso_code"
	columnDate                = "date"
	columnNewCases            = "new_cases"
	columnNewDeaths           = "new_deaths"
	columnNewCasesPerMillion  = "new_cases_per_million"
	columnNewDeathsPerMillion = "new_deaths_per_million"
	columnLatitude            = "latitude"
	columnLongitude           = "longitude"
)

var (
	ErrMissingColumn = fmt.Errorf("missing csv column")
	ErrInvalidCell   = fmt.Errorf("invalid csv cell")

	requiredColumns = []string{
		columnCountry,
		columnISOCode,
		columnDate,
		columnNewCases,
		columnNewDeaths,
		columnNewCasesPerMillion,
		columnNewDeathsPerMillion,
		columnLatitude,
		columnLongitude,
	}

	dateLayouts = []string{
		consts.DateLayout,
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
)

// LoadCSV reads a csv file and builds the dataset store from it
func LoadCSV(filename string, opts *LoadOptions) (DatasetStore, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, indicators, err := ReadCSV(file, opts)
	if err != nil {
		return nil, err
	}

	return NewDataset(opts.Clean(records), indicators)
}

// ReadCSV parses the daily table. Columns are located by header name; the
// indicator columns are optional and the ones found are returned. Rows are
// returned as read, cleaning is up to the caller.
func ReadCSV(r io.Reader, opts *LoadOptions) ([]schema.Record, []schema.Indicator, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int)
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}

	indicators := []schema.Indicator{}
	for _, i := range schema.AllIndicators {
		if _, ok := index[i.Column()]; ok {
			indicators = append(indicators, i)
		}
	}

	records := []schema.Record{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}

		record, err := parseRow(row, index, indicators)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	log.WithFields(log.Fields{
		"prefix":     datasetLogPrefix,
		"rows":       len(records),
		"indicators": indicators,
	}).Debug("read csv")

	return records, indicators, nil
}

func parseRow(row []string, index map[string]int, indicators []schema.Indicator) (schema.Record, error) {
	cell := func(column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var err error
	record := schema.Record{
		Country:  cell(columnCountry),
		ISOCode:  strings.ToUpper(cell(columnISOCode)),
		Mobility: schema.NewMobility(),
	}
	if record.Country == "" {
		return record, fmt.Errorf("%w: empty %s", ErrInvalidCell, columnCountry)
	}

	if record.Date, err = parseDate(cell(columnDate)); err != nil {
		return record, err
	}
	if record.NewCases, err = parseCount(columnNewCases, cell(columnNewCases)); err != nil {
		return record, err
	}
	if record.NewDeaths, err = parseCount(columnNewDeaths, cell(columnNewDeaths)); err != nil {
		return record, err
	}
	if record.NewCasesPerMillion, err = parseRate(columnNewCasesPerMillion, cell(columnNewCasesPerMillion)); err != nil {
		return record, err
	}
	if record.NewDeathsPerMillion, err = parseRate(columnNewDeathsPerMillion, cell(columnNewDeathsPerMillion)); err != nil {
		return record, err
	}
	if record.Latitude, err = parseFloat(columnLatitude, cell(columnLatitude)); err != nil {
		return record, err
	}
	if record.Longitude, err = parseFloat(columnLongitude, cell(columnLongitude)); err != nil {
		return record, err
	}

	for _, i := range indicators {
		value := cell(i.Column())
		if value == "" {
			continue
		}
		v, err := parseFloat(i.Column(), value)
		if err != nil {
			return record, err
		}
		record.Mobility.Set(i, v)
	}

	return record, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return utils.DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidCell, columnDate, value)
}

func parseFloat(column, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidCell, column, value)
	}
	return v, nil
}

// parseCount accepts counts written as reals, e.g. 1035.0. An empty cell is no new count.
func parseCount(column, value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	v, err := parseFloat(column, value)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(v)), nil
}

func parseRate(column, value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return parseFloat(column, value)
}
