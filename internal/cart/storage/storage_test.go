package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()

	v, err := s.Get("cart")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Set("cart", "[]"))
	v, err = s.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestFileStorage_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "state.json"), zap.NewNop())

	v, err := s.Get("cart")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestFileStorage_SetPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	first := NewFileStorage(path, zap.NewNop())
	require.NoError(t, first.Set("cart", `[{"productId":"og-kush","quantity":1}]`))
	require.NoError(t, first.Set("greencross_isOfAge", "true"))

	second := NewFileStorage(path, zap.NewNop())
	cart, err := second.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"productId":"og-kush","quantity":1}]`, cart)

	age, err := second.Get("greencross_isOfAge")
	require.NoError(t, err)
	assert.Equal(t, "true", age)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_CorruptFileIsReplacedOnSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewFileStorage(path, zap.NewNop())

	_, err := s.Get("cart")
	assert.Error(t, err)

	require.NoError(t, s.Set("greencross_isOfAge", "true"))
	require.NoError(t, s.Set("cart", "[]"))

	reopened := NewFileStorage(path, zap.NewNop())
	age, err := reopened.Get("greencross_isOfAge")
	require.NoError(t, err)
	assert.Equal(t, "true", age)

	cart, err := reopened.Get("cart")
	require.NoError(t, err)
	assert.Equal(t, "[]", cart)
}

func TestFileStorage_UnreadableFileIsNotOverwritten(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.Mkdir(dir, 0o755))

	s := NewFileStorage(dir, zap.NewNop())

	assert.Error(t, s.Set("cart", "[]"))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	v, err := NewFileStorage(path, zap.NewNop()).Get("cart")
	require.NoError(t, err)
	assert.Empty(t, v)
}
