package storage

import (
	"path/filepath"
	"testing"

	"assembly-server/internal/domain"

	"github.com/stretchr/testify/require"
)

func testRecord(key string) domain.DiscoveryRecord {
	return domain.DiscoveryRecord{
		Key: key,
		Template: domain.ItemTemplate{
			Name:        "Steam",
			Emoji:       "💨",
			CashPerItem: 2.5,
			Type:        domain.ItemTypeIngredient,
			Rarity:      "common",
			Category:    "gas",
			Complexity:  2,
			Description: "Hot vapor.",
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discoveries.db")

	store, err := Open(path)
	require.NoError(t, err)

	rec := testRecord("Fire+Water::Heat")
	require.NoError(t, store.Put(rec))
	require.NoError(t, store.Close())

	// Переоткрываем и проверяем, что запись идентична
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, rec, loaded["Fire+Water::Heat"])
}

func TestStore_PutIsIdempotent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "discoveries.db"))
	require.NoError(t, err)
	defer store.Close()

	rec := testRecord("Fire+Water::Heat")
	require.NoError(t, store.Put(rec))
	require.NoError(t, store.Put(rec))

	n, err := store.Count()
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestStore_LoadAllEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "discoveries.db"))
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.LoadAll()
	require.NoError(t, err)
	require.Empty(t, loaded)
}
