package consts

import (
	"fmt"
	"strings"
)

// EUCountryEnglish maps the ISO 3166-1 alpha-3 code of every EU member state
// to its English name.
var EUCountryEnglish map[string]string

func init() {
	EUCountryEnglish = make(map[string]string)

	EUCountryEnglish["AUT"] = "Austria"
	EUCountryEnglish["BEL"] = "Belgium"
	EUCountryEnglish["BGR"] = "Bulgaria"
	EUCountryEnglish["HRV"] = "Croatia"
	EUCountryEnglish["CYP"] = "Cyprus"
	EUCountryEnglish["CZE"] = "Czechia"
	EUCountryEnglish["DNK"] = "Denmark"
	EUCountryEnglish["EST"] = "Estonia"
	EUCountryEnglish["FIN"] = "Finland"
	EUCountryEnglish["FRA"] = "France"
	EUCountryEnglish["DEU"] = "Germany"
	EUCountryEnglish["GRC"] = "Greece"
	EUCountryEnglish["HUN"] = "Hungary"
	EUCountryEnglish["IRL"] = "Ireland"
	EUCountryEnglish["ITA"] = "Italy"
	EUCountryEnglish["LVA"] = "Latvia"
	EUCountryEnglish["LTU"] = "Lithuania"
	EUCountryEnglish["LUX"] = "Luxembourg"
	EUCountryEnglish["MLT"] = "Malta"
	EUCountryEnglish["NLD"] = "Netherlands"
	EUCountryEnglish["POL"] = "Poland"
	EUCountryEnglish["PRT"] = "Portugal"
	EUCountryEnglish["ROU"] = "Romania"
	EUCountryEnglish["SVK"] = "Slovakia"
	EUCountryEnglish["SVN"] = "Slovenia"
	EUCountryEnglish["ESP"] = "Spain"
	EUCountryEnglish["SWE"] = "Sweden"
}

// EUCountryCodes returns the ISO codes of all EU member states.
func EUCountryCodes() []string {
	codes := make([]string, 0, len(EUCountryEnglish))
	for code := range EUCountryEnglish {
		codes = append(codes, code)
	}
	return codes
}

// ISOCodeKey - normalize an ISO alpha-3 code and make sure it is an EU member
func ISOCodeKey(code string) (string, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := EUCountryEnglish[key]; !ok {
		return "", fmt.Errorf("%s not exist", code)
	}
	return key, nil
}
