package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/mobility-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
	loadTimeout    = 2 * time.Minute
)

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations on the mobility collection
func NewMongoStore(client *mongo.Client, database string) MobilityStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) collection() *mongo.Collection {
	return m.client.Database(m.database).Collection(schema.MobilityCollection)
}

// LoadRecords reads the whole collection in insertion order
func (m *mongoDB) LoadRecords(ctx context.Context) ([]schema.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"_id": 1})
	cur, err := m.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("mobility find with error: %s", err)
		return nil, err
	}
	defer cur.Close(ctx)

	records := []schema.Record{}
	for cur.Next(ctx) {
		var row schema.MobilityRow
		if err := cur.Decode(&row); err != nil {
			log.WithField("prefix", mongoLogPrefix).Errorf("mobility decode with error: %s", err)
			return nil, err
		}
		records = append(records, row.Record())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(records)}).Debug("load mobility records")
	return records, nil
}

// SaveRecords upserts the records keyed by country and date
func (m *mongoDB) SaveRecords(ctx context.Context, records []schema.Record) (int64, error) {
	if len(records) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no record to update")
		return 0, nil
	}

	models := make([]mongo.WriteModel, len(records))
	for i, r := range records {
		row := schema.NewMobilityRow(r)
		models[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"country_region": row.Country, "date": row.Date}).
			SetReplacement(row).
			SetUpsert(true)
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	res, err := m.collection().BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("mobility bulk write with error: %s", err)
		return 0, err
	}

	saved := res.UpsertedCount + res.ModifiedCount
	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"upserted": res.UpsertedCount,
		"modified": res.ModifiedCount,
	}).Debug("save mobility records")
	return saved, nil
}
