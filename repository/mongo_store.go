package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vapeshop/apperrors"
)

// MongoStore is the DocumentStore backed by a MongoDB database.
type MongoStore struct {
	db  *mongo.Database
	now func() time.Time
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts record with a fresh ObjectID and created_at/updated_at
// stamps, returning the ID as its 24 character hex form.
func (s *MongoStore) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	doc, err := toDocument(record)
	if err != nil {
		return "", apperrors.ErrStorage.Wrap(err)
	}

	id := primitive.NewObjectID()
	now := s.now()
	doc = append(bson.D{{Key: "_id", Value: id}}, doc...)
	doc = append(doc, bson.E{Key: "created_at", Value: now}, bson.E{Key: "updated_at", Value: now})

	if _, err := s.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		return "", apperrors.ErrStorage.Wrap(err)
	}
	return id.Hex(), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.Raw, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.ErrStorage.Wrap(err)
	}
	defer cursor.Close(ctx)

	docs := []bson.Raw{}
	for cursor.Next(ctx) {
		// Current is only valid until the next call to Next
		doc := make(bson.Raw, len(cursor.Current))
		copy(doc, cursor.Current)
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.ErrStorage.Wrap(err)
	}
	return docs, nil
}

func (s *MongoStore) DatabaseName() string {
	return s.db.Name()
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, apperrors.ErrStorage.Wrap(err)
	}
	return names, nil
}

// toDocument round-trips record through BSON so the stored field names come
// from its bson tags.
func toDocument(record interface{}) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return doc, nil
}
