package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"vapeshop/apperrors"
)

// Filter is an equality match on document fields. The HTTP layer only ever
// builds empty filters or single-field ones.
type Filter map[string]interface{}

// Eq returns a filter matching documents whose field equals value.
func Eq(field string, value interface{}) Filter {
	return Filter{field: value}
}

// DocumentStore is generic create/read access to named collections. IDs are
// opaque strings generated by the store.
type DocumentStore interface {
	Create(ctx context.Context, collection string, record interface{}) (string, error)
	// Find returns at most limit documents matching filter; limit 0 means no cap.
	Find(ctx context.Context, collection string, filter Filter, limit int64) ([]bson.Raw, error)
	DatabaseName() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// Handle is an optional DocumentStore. Handlers go through Get, so a missing
// connection is reported as an error instead of a nil dereference.
type Handle struct {
	store DocumentStore
}

// NewHandle wraps store, which may be nil when no database is configured.
func NewHandle(store DocumentStore) Handle {
	return Handle{store: store}
}

func (h Handle) Get() (DocumentStore, error) {
	if h.store == nil {
		return nil, apperrors.ErrStoreUnavailable
	}
	return h.store, nil
}

func (h Handle) Available() bool {
	return h.store != nil
}
