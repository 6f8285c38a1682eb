package recordsRepo

import (
	"context"
	"path/filepath"
	"testing"

	"gymrat/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (RecordRepository, *database.Store) {
	t.Helper()
	dir := t.TempDir()
	store := database.Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "session.json"), 0)
	return NewStoreRecordRepo(store), store
}

func TestInsertThenListAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, database.CollectionContactMessages, database.Record{
		"name":    "Rocky",
		"email":   "rocky@gym.com",
		"message": "When does the boxing class open?",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	recs, err := repo.ListAll(ctx, database.CollectionContactMessages, ListOptions{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, id, recs[0]["id"])
	assert.Equal(t, "Rocky", recs[0]["name"])
}

func TestSetAndGetKeyedRecord(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, database.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = repo.Set(ctx, database.CollectionUsers, "u1", database.Record{
		"name":  "Rocky",
		"email": "rocky@gym.com",
	}, false)
	require.NoError(t, err)

	rec, ok, err := repo.Get(ctx, database.CollectionUsers, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rocky", rec["name"])
}

func TestSetMergePreservesExistingFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, database.CollectionUsers, "u1", database.Record{
		"name":            "Rocky",
		"email":           "rocky@gym.com",
		"membership_plan": "basic",
	}, false))

	require.NoError(t, repo.Set(ctx, database.CollectionUsers, "u1", database.Record{
		"name": "Rocco",
	}, true))

	rec, ok, err := repo.Get(ctx, database.CollectionUsers, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Rocco", rec["name"])
	assert.Equal(t, "rocky@gym.com", rec["email"])

	// A non-merge set replaces the whole record.
	require.NoError(t, repo.Set(ctx, database.CollectionUsers, "u1", database.Record{
		"name": "Rocco",
	}, false))
	rec, _, err = repo.Get(ctx, database.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.NotContains(t, rec, "email")
}

func TestUpdateMissingRecordFails(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	err := repo.Update(ctx, database.CollectionUsers, "ghost", database.Record{"name": "Nobody"})
	var missing ExistenceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, database.CollectionUsers, missing.Collection)
	assert.Equal(t, "ghost", missing.Key)

	// The failed update must leave the store untouched.
	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
}

func TestUpdateMergesFields(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, database.CollectionUsers, "u1", database.Record{
		"name":            "Rocky",
		"membership_plan": "basic",
	}, false))

	require.NoError(t, repo.Update(ctx, database.CollectionUsers, "u1", database.Record{
		"membership_plan": "premium",
	}))

	rec, _, err := repo.Get(ctx, database.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.Equal(t, "premium", rec["membership_plan"])
	assert.Equal(t, "Rocky", rec["name"])
}

func TestListAllOrdering(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, msg := range []database.Record{
		{"name": "a", "email": "a@x.com", "message": "first", "created_at": "2026-08-26T10:00:00Z"},
		{"name": "b", "email": "b@x.com", "message": "second", "created_at": "2026-08-27T10:00:00Z"},
		{"name": "c", "email": "c@x.com", "message": "third", "created_at": "2026-08-28T10:00:00Z"},
	} {
		_, err := repo.Insert(ctx, database.CollectionContactMessages, msg)
		require.NoError(t, err)
	}

	recs, err := repo.ListAll(ctx, database.CollectionContactMessages, ListOptions{
		OrderBy:    "created_at",
		Descending: true,
	})
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "third", recs[0]["message"])
	assert.Equal(t, "first", recs[2]["message"])
}

func TestUnknownCollectionListsEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	recs, err := repo.ListAll(ctx, "ghosts", ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestArrayCollectionsAreNotAddressable(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, database.CollectionTrainers, "1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Writes against array collections are silent no-ops.
	require.NoError(t, repo.Update(ctx, database.CollectionBookings, "b1", database.Record{"status": "x"}))
	require.NoError(t, repo.Set(ctx, database.CollectionTrainers, "1", database.Record{"name": "x"}, true))
}
