package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/mobility-api/schema"
)

const (
	ormLogPrefix = "orm"

	pqUndefinedTable = "42P01"
)

var (
	ErrMobilityTableMissing = fmt.Errorf("mobility table not migrated")

	upsertColumns = []string{
		"iso_code",
		"new_cases",
		"new_deaths",
		"new_cases_per_million",
		"new_deaths_per_million",
		schema.RetailAndRecreation.Column(),
		schema.GroceryAndPharmacy.Column(),
		schema.Parks.Column(),
		schema.TransitStations.Column(),
		schema.Workplaces.Column(),
		schema.Residential.Column(),
		"latitude",
		"longitude",
	}
)

type postgresDB struct {
	ormDB *gorm.DB
}

// NewPostgresStore - return orm operations on the mobility table
func NewPostgresStore(ormDB *gorm.DB) MobilityStore {
	return &postgresDB{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (p *postgresDB) Ping() error {
	return p.ormDB.DB().Ping()
}

func (p *postgresDB) Close() {
	log.WithField("prefix", ormLogPrefix).Info("closing orm db connections")
	if err := p.ormDB.Close(); err != nil {
		log.WithField("prefix", ormLogPrefix).Error(err)
	}
}

func translatePQError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUndefinedTable {
		return fmt.Errorf("%w: %s", ErrMobilityTableMissing, pqErr.Message)
	}
	return err
}

// LoadRecords reads the whole table in insertion order
func (p *postgresDB) LoadRecords(ctx context.Context) ([]schema.Record, error) {
	var rows []schema.MobilityRow
	if err := p.ormDB.Order("id").Find(&rows).Error; err != nil {
		log.WithField("prefix", ormLogPrefix).Errorf("mobility find with error: %s", err)
		return nil, translatePQError(err)
	}

	records := make([]schema.Record, len(rows))
	for i, row := range rows {
		records[i] = row.Record()
	}

	log.WithFields(log.Fields{"prefix": ormLogPrefix, "records": len(records)}).Debug("load mobility records")
	return records, nil
}

func upsertOption() string {
	updates := make([]string, len(upsertColumns))
	for i, c := range upsertColumns {
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return "ON CONFLICT (country_region, date) DO UPDATE SET " + strings.Join(updates, ", ")
}

// SaveRecords upserts the records keyed by country and date in one transaction
func (p *postgresDB) SaveRecords(ctx context.Context, records []schema.Record) (int64, error) {
	tx := p.ormDB.Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	option := upsertOption()
	var saved int64
	for _, r := range records {
		row := schema.NewMobilityRow(r)
		result := tx.Set("gorm:insert_option", option).Create(&row)
		if result.Error != nil {
			tx.Rollback()
			log.WithField("prefix", ormLogPrefix).Errorf("mobility upsert with error: %s", result.Error)
			return 0, translatePQError(result.Error)
		}
		saved += result.RowsAffected
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"prefix": ormLogPrefix, "records": saved}).Debug("save mobility records")
	return saved, nil
}
