package controllers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vapeshop/apperrors"
	"vapeshop/repository"
)

// memStore is an in-memory DocumentStore keeping insertion order.
type memStore struct {
	mu   sync.Mutex
	docs map[string][]bson.Raw

	name        string
	collections []string
	createErr   error
	findErr     error
	listErr     error
	panicOnList bool

	lastLimit  int64
	lastFilter repository.Filter
}

func newMemStore() *memStore {
	return &memStore{docs: map[string][]bson.Raw{}, name: "app"}
}

func (m *memStore) Create(_ context.Context, collection string, record interface{}) (string, error) {
	if m.createErr != nil {
		return "", apperrors.ErrStorage.Wrap(m.createErr)
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return "", apperrors.ErrStorage.Wrap(err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", apperrors.ErrStorage.Wrap(err)
	}
	id := primitive.NewObjectID()
	raw, err = bson.Marshal(append(bson.D{{Key: "_id", Value: id}}, doc...))
	if err != nil {
		return "", apperrors.ErrStorage.Wrap(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection] = append(m.docs[collection], raw)
	return id.Hex(), nil
}

func (m *memStore) Find(_ context.Context, collection string, filter repository.Filter, limit int64) ([]bson.Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	m.lastFilter = filter

	if m.findErr != nil {
		return nil, apperrors.ErrStorage.Wrap(m.findErr)
	}

	out := []bson.Raw{}
	for _, doc := range m.docs[collection] {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memStore) DatabaseName() string { return m.name }

func (m *memStore) CollectionNames(context.Context) ([]string, error) {
	if m.panicOnList {
		panic("driver exploded")
	}
	if m.listErr != nil {
		return nil, apperrors.ErrStorage.Wrap(m.listErr)
	}
	return m.collections, nil
}

func (m *memStore) count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection])
}

func matches(doc bson.Raw, filter repository.Filter) bool {
	for field, want := range filter {
		v, err := doc.LookupErr(field)
		if err != nil {
			return false
		}
		var got interface{}
		if err := v.Unmarshal(&got); err != nil || got != want {
			return false
		}
	}
	return true
}
