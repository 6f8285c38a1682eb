package recordsRepo

import (
	"context"
	"sort"

	"gymrat/database"

	"github.com/google/uuid"
)

// Get fetches a single keyed record. Absence is reported through the
// exists flag, never as an error.
func (r *storeRecordRepo) Get(ctx context.Context, collection, key string) (database.Record, bool, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	if collection != database.CollectionUsers {
		return nil, false, nil
	}
	rec, ok := doc.Users[key]
	if !ok {
		return nil, false, nil
	}
	return rec, true, nil
}

// Set writes or merges a keyed record. Only the keyed "users" collection is
// addressable; for array-valued collections this is a no-op, matching the
// document API being emulated.
func (r *storeRecordRepo) Set(ctx context.Context, collection, key string, fields database.Record, merge bool) error {
	return r.store.Update(ctx, func(doc *database.Document) error {
		if collection != database.CollectionUsers {
			return nil
		}
		rec := database.Record{}
		if merge {
			for k, v := range doc.Users[key] {
				rec[k] = v
			}
		}
		for k, v := range fields {
			rec[k] = v
		}
		doc.Users[key] = rec
		return nil
	})
}

// Insert appends a record to an array-valued collection under a generated
// id. The keyed "users" collection is written through Set instead; an
// insert against it only hands back the generated id.
func (r *storeRecordRepo) Insert(ctx context.Context, collection string, fields database.Record) (string, error) {
	id := uuid.NewString()
	err := r.store.Update(ctx, func(doc *database.Document) error {
		rec := database.Record{"id": id}
		for k, v := range fields {
			rec[k] = v
		}
		doc.Append(collection, rec)
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update merges fields into an existing keyed record. Existence is only
// enforced for keyed collections; a missing record fails with
// ExistenceError and leaves the store untouched.
func (r *storeRecordRepo) Update(ctx context.Context, collection, key string, fields database.Record) error {
	return r.store.Update(ctx, func(doc *database.Document) error {
		if collection != database.CollectionUsers {
			return nil
		}
		rec, ok := doc.Users[key]
		if !ok {
			return ExistenceError{Collection: collection, Key: key}
		}
		for k, v := range fields {
			rec[k] = v
		}
		doc.Users[key] = rec
		return nil
	})
}

// ListAll returns every record of a collection, optionally sorted. Unknown
// collections yield an empty result, not an error.
func (r *storeRecordRepo) ListAll(ctx context.Context, collection string, opts ListOptions) ([]database.Record, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	recs := doc.Records(collection)
	if recs == nil {
		return []database.Record{}, nil
	}
	if opts.OrderBy != "" {
		field := opts.OrderBy
		sort.SliceStable(recs, func(i, j int) bool {
			cmp := database.Compare(recs[i][field], recs[j][field])
			if opts.Descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}
	return recs, nil
}
