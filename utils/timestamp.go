package utils

import (
	"time"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
)

// DateOf drops the time-of-day of t as seen in its own location and returns
// the calendar date as UTC midnight, the representation used by the dataset.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateToUnix returns the Unix seconds of local midnight of the date in loc.
// This is the value the date slider works with.
func DateToUnix(date time.Time, loc *time.Location) int64 {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).Unix()
}

// UnixToDate converts a slider value back to a calendar date, dropping the
// time-of-day in loc. UnixToDate(DateToUnix(d, loc), loc) == d for every date.
func UnixToDate(seconds int64, loc *time.Location) time.Time {
	return DateOf(time.Unix(seconds, 0).In(loc))
}

// ClampDate keeps a date inside [start, end]
func ClampDate(date, start, end time.Time) time.Time {
	if date.Before(start) {
		return start
	}
	if date.After(end) {
		return end
	}
	return date
}

// Days lists every date of [start, end]
func Days(start, end time.Time) []time.Time {
	days := []time.Time{}
	for d := DateOf(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SliderMarks labels every `every`-th day of the window, starting with the
// second one, with its ISO date.
func SliderMarks(start, end time.Time, every int, loc *time.Location) []schema.SliderMark {
	if every <= 0 {
		every = consts.DefaultSliderMarkEvery
	}

	marks := []schema.SliderMark{}
	for i, d := range Days(start, end) {
		if i%every == 1 || every == 1 {
			marks = append(marks, schema.SliderMark{
				Value: DateToUnix(d, loc),
				Label: d.Format(consts.DateLayout),
			})
		}
	}
	return marks
}

// NewSlider describes the date slider for the analysis window
func NewSlider(every int, loc *time.Location) schema.Slider {
	min := DateToUnix(consts.AnalysisStart, loc)
	return schema.Slider{
		Min:   min,
		Max:   DateToUnix(consts.AnalysisEnd, loc),
		Value: min,
		Marks: SliderMarks(consts.AnalysisStart, consts.AnalysisEnd, every, loc),
	}
}
