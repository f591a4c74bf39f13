package view

import (
	"fmt"

	"github.com/bitmark-inc/mobility-api/consts"
	"github.com/bitmark-inc/mobility-api/schema"
	"github.com/bitmark-inc/mobility-api/store"
)

func Profile(ds store.DatasetStore, country string) (schema.CountryProfile, error) {
	records, err := ds.RecordsFor(country)
	if err != nil {
		return schema.CountryProfile{}, err
	}
	if len(records) == 0 {
		return schema.CountryProfile{}, fmt.Errorf("%w: %s", store.ErrCountryNotFound, country)
	}

	r := records[0]
	return schema.CountryProfile{
		Country:   r.Country,
		ISOCode:   r.ISOCode,
		FlagAsset: fmt.Sprintf(consts.FlagAssetPathFormat, r.ISOCode),
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}
