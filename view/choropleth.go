package view

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
	"github.com/bitmark-inc/mobility-api/utils"
)

// Legend returns the colour bar ticks: log positions labelled with the raw
// value they stand for.
func Legend() []schema.LegendTick {
	ticks := make([]schema.LegendTick, len(consts.LegendTickPositions))
	for i, p := range consts.LegendTickPositions {
		ticks[i] = schema.LegendTick{
			Position: p,
			Label:    strconv.FormatInt(int64(math.Round(math.Exp(p))), 10),
		}
	}
	return ticks
}

// Choropleth colours every country reporting the date by its log-scaled
// per-million rate. A date nobody reports gives a view without entries.
func Choropleth(ds store.DatasetStore, date time.Time, mode schema.MetricMode, loc *i18n.Localizer) schema.ChoroplethView {
	label := utils.PerMillionLabel(loc, mode)
	records := ds.RecordsAt(date)

	entries := make([]schema.ChoroplethEntry, len(records))
	for i, r := range records {
		raw := r.PerMillion(mode)
		entries[i] = schema.ChoroplethEntry{
			ISOCode:     r.ISOCode,
			Country:     r.Country,
			RawValue:    raw,
			LogValue:    ScaleTransform(raw),
			DisplayText: fmt.Sprintf("%s: %.1f %s", r.Country, raw, label),
		}
	}

	return schema.ChoroplethView{
		Date:       utils.DateOf(date),
		MetricMode: mode,
		Label:      label,
		Entries:    entries,
		Legend:     Legend(),
		ZMin:       consts.LegendDomainMin,
		ZMax:       consts.LegendDomainMax,
	}
}
