package models

// Record is implemented by every type persisted in its own collection.
type Record interface {
	CollectionName() string
}

// Normalizer is implemented by records whose list and map fields must be
// stored as empty values rather than null.
type Normalizer interface {
	Normalize()
}
