package etl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BartekS5/finess/pkg/logger"
	"github.com/BartekS5/finess/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// namespaceExists is the server code returned when creating an existing collection.
const namespaceExists = 48

// MongoPublisher upserts cards into a MongoDB collection, one document per
// FINESS number with the number as _id.
type MongoPublisher struct {
	Client     *mongo.Client
	Database   string
	Collection string
	Timeout    time.Duration
	Log        *logger.Logger
}

func NewMongoPublisher(client *mongo.Client, database, collection string, log *logger.Logger) *MongoPublisher {
	return &MongoPublisher{
		Client:     client,
		Database:   database,
		Collection: collection,
		Timeout:    30 * time.Second,
		Log:        log,
	}
}

func (m *MongoPublisher) coll() *mongo.Collection {
	return m.Client.Database(m.Database).Collection(m.Collection)
}

func (m *MongoPublisher) EnsureContainer(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	m.Log.Infof("Create Mongo collection : %s.%s", m.Database, m.Collection)
	err := m.Client.Database(m.Database).CreateCollection(ctx, m.Collection)
	var cmdErr mongo.CommandError
	if err != nil && !(errors.As(err, &cmdErr) && cmdErr.Code == namespaceExists) {
		return fmt.Errorf("create collection %s: %w", m.Collection, err)
	}

	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: models.FieldFiness, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.coll().Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create index on %s: %w", m.Collection, err)
	}
	return nil
}

func (m *MongoPublisher) Put(ctx context.Context, key string, card models.Card) error {
	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	doc := bson.M{"_id": key}
	for k, v := range card {
		doc[k] = v
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := m.coll().ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	m.Log.Debugf("Upserted %s into %s.%s", key, m.Database, m.Collection)
	return nil
}
