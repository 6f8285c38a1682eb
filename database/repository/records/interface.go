package recordsRepo

import (
	"context"
	"fmt"

	"gymrat/database"
)

// ExistenceError is returned when updating a keyed record that does not
// exist. Single-record reads never fail this way; they report exists=false.
type ExistenceError struct {
	Collection string
	Key        string
}

func (e ExistenceError) Error() string {
	return fmt.Sprintf("record %s/%s does not exist", e.Collection, e.Key)
}

// ListOptions controls optional ordering of ListAll results.
type ListOptions struct {
	OrderBy    string
	Descending bool
}

// RecordRepository is the collection access facade over the persisted
// store. Reads report absence through the exists flag instead of errors.
type RecordRepository interface {
	// Get fetches a single keyed record. Only the keyed "users"
	// collection holds addressable records; everything else reports
	// exists=false.
	Get(ctx context.Context, collection, key string) (database.Record, bool, error)
	// Set writes a keyed record, either replacing it or merging fields
	// into whatever is already there.
	Set(ctx context.Context, collection, key string, fields database.Record, merge bool) error
	// Insert appends a record to an array-valued collection under a
	// generated unique id, which is returned.
	Insert(ctx context.Context, collection string, fields database.Record) (string, error)
	// Update merges fields into an existing keyed record and fails with
	// ExistenceError when the record is absent.
	Update(ctx context.Context, collection, key string, fields database.Record) error
	// ListAll returns every record of a collection, optionally sorted.
	// Unknown collections yield an empty result.
	ListAll(ctx context.Context, collection string, opts ListOptions) ([]database.Record, error)
}

// NewStoreRecordRepo returns a RecordRepository backed by the embedded
// store.
func NewStoreRecordRepo(store *database.Store) RecordRepository {
	return &storeRecordRepo{store: store}
}

type storeRecordRepo struct {
	store *database.Store
}
