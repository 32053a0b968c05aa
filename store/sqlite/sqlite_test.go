package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/prequal-engine/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err, "create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshot_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"num_borrowers":2}`)
	require.NoError(t, store.SaveSnapshot(ctx, "smith-purchase", payload))

	got, savedAt, err := store.LoadSnapshot(ctx, "smith-purchase")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.WithinDuration(t, time.Now().UTC(), savedAt, 5*time.Second)
}

func TestSnapshot_SaveReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "smith", []byte(`{"v":1}`)))
	require.NoError(t, store.SaveSnapshot(ctx, "smith", []byte(`{"v":2}`)))

	got, _, err := store.LoadSnapshot(ctx, "smith")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)

	infos, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestSnapshot_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, _, err := store.LoadSnapshot(context.Background(), "never-saved")
	assert.ErrorIs(t, err, sqlite.ErrSnapshotNotFound)
}

func TestSnapshot_ListAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSnapshot(ctx, "a", []byte(`{}`)))
	require.NoError(t, store.SaveSnapshot(ctx, "b", []byte(`{}`)))

	infos, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 2)

	require.NoError(t, store.DeleteSnapshot(ctx, "a"))
	infos, err = store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.Equal(t, "b", infos[0].Name)

	// Deleting a missing name is not an error.
	assert.NoError(t, store.DeleteSnapshot(ctx, "never-saved"))
}
