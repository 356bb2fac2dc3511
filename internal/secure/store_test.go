package secure

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	key := sha256.Sum256([]byte("test-store-key"))
	return key[:]
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreWithKey(filepath.Join(t.TempDir(), "credentials.yaml"), testKey())
	require.NoError(t, err)
	return store
}

func TestStore_SetGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc123"))

	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "first"))
	require.NoError(t, store.Set("token", "second"))

	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("token", "abc"))
	require.NoError(t, store.Delete("token"))

	_, err := store.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete("token"))
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")

	first, err := NewStoreWithKey(path, testKey())
	require.NoError(t, err)
	require.NoError(t, first.Set("token", "survives"))

	second, err := NewStoreWithKey(path, testKey())
	require.NoError(t, err)

	value, err := second.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "survives", value)
}

func TestStore_ValuesEncryptedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")

	store, err := NewStoreWithKey(path, testKey())
	require.NoError(t, err)
	require.NoError(t, store.Set("token", "super-secret-value"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-value")
}

func TestStore_CorruptFileReinitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0600))

	store, err := NewStoreWithKey(path, testKey())
	require.NoError(t, err)

	_, err = store.Get("token")
	assert.ErrorIs(t, err, ErrNotFound)

	// Writes work again after reinitialization
	require.NoError(t, store.Set("token", "fresh"))
	value, err := store.Get("token")
	require.NoError(t, err)
	assert.Equal(t, "fresh", value)
}

func TestStore_WrongKeyFailsToDecrypt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")

	store, err := NewStoreWithKey(path, testKey())
	require.NoError(t, err)
	require.NoError(t, store.Set("token", "abc"))

	otherKey := sha256.Sum256([]byte("another-key"))
	other, err := NewStoreWithKey(path, otherKey[:])
	require.NoError(t, err)

	_, err = other.Get("token")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
