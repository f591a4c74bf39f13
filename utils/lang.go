package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/bitmark-inc/mobility-api/schema"
)

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
}

// InitI18NBundle loads every yaml message file of dir, e.g. en.yaml and pt.yaml
func InitI18NBundle(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return err
	}

	for _, f := range files {
		if _, err := bundle.LoadMessageFile(f); err != nil {
			return err
		}
	}
	return nil
}

// NewLocalizer accepts language tags and Accept-Language values in order of preference
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, langs...)
}

func localize(loc *i18n.Localizer, id, fallback string) string {
	if loc == nil {
		return fallback
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    id,
			Other: fallback,
		},
	})
	if err != nil && msg == "" {
		return fallback
	}
	return msg
}

// IndicatorName is the chart label of an indicator
func IndicatorName(loc *i18n.Localizer, indicator schema.Indicator) string {
	return localize(loc, "indicator_"+string(indicator), indicator.DisplayName())
}

// IndicatorNames labels a list of indicators keeping its order
func IndicatorNames(loc *i18n.Localizer, indicators []schema.Indicator) []string {
	names := make([]string, len(indicators))
	for i, indicator := range indicators {
		names[i] = IndicatorName(loc, indicator)
	}
	return names
}

// PerMillionLabel is the unit shown on the map tooltip and colour bar
func PerMillionLabel(loc *i18n.Localizer, mode schema.MetricMode) string {
	return localize(loc, "metric_"+string(mode)+"_per_million", mode.PerMillionLabel())
}

// DailyLabel names the daily count series
func DailyLabel(loc *i18n.Localizer, mode schema.MetricMode) string {
	return localize(loc, "metric_"+string(mode)+"_daily", mode.DailyLabel())
}
