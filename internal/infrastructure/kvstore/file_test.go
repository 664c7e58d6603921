package kvstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/eletror-app/internal/infrastructure/kvstore"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eletror.json")
	store := kvstore.NewFileStore(path)

	_, ok, err := store.Get(kvstore.KeyItems)
	require.NoError(t, err)
	assert.False(t, ok, "una clave nunca escrita debe leerse como ausente")

	require.NoError(t, store.Set(kvstore.KeyItems, []byte(`[{"id":"1"}]`)))

	got, ok, err := store.Get(kvstore.KeyItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	// Reabrir el archivo debe conservar el valor (persistencia entre recargas).
	reopened := kvstore.NewFileStore(path)
	got, ok, err = reopened.Get(kvstore.KeyItems)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))
}

func TestFileStoreSetReplacesWholeValue(t *testing.T) {
	store := kvstore.NewFileStore(filepath.Join(t.TempDir(), "eletror.json"))

	require.NoError(t, store.Set(kvstore.KeyContacts, []byte(`["a","b"]`)))
	require.NoError(t, store.Set(kvstore.KeyContacts, []byte(`["c"]`)))

	got, ok, err := store.Get(kvstore.KeyContacts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["c"]`, string(got), "la escritura reemplaza el valor completo, sin merge")
}

func TestFileStoreDeleteAbsentKey(t *testing.T) {
	store := kvstore.NewFileStore(filepath.Join(t.TempDir(), "eletror.json"))

	assert.NoError(t, store.Delete("no-existe"), "borrar una clave ausente no es error")

	require.NoError(t, store.Set(kvstore.KeyCurrentUser, []byte(`"token"`)))
	require.NoError(t, store.Delete(kvstore.KeyCurrentUser))
	_, ok, err := store.Get(kvstore.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok)
}
