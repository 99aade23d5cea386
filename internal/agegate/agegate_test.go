package agegate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"greencross/internal/cart/storage"
)

type failingStorage struct{}

func (failingStorage) Get(key string) (string, error) { return "", errors.New("blocked") }
func (failingStorage) Set(key, value string) error    { return errors.New("blocked") }

func TestGate_ConfirmPersists(t *testing.T) {
	mem := storage.NewMemoryStorage()
	gate := New(mem, zap.NewNop())
	assert.False(t, gate.IsVerified())

	gate.Confirm()

	assert.True(t, gate.IsVerified())
	assert.True(t, New(mem, zap.NewNop()).IsVerified())

	v, err := mem.Get(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestGate_OnlyExactTrueCounts(t *testing.T) {
	for _, v := range []string{"", "false", "TRUE", "1", "yes"} {
		mem := storage.NewMemoryStorage()
		require.NoError(t, mem.Set(StorageKey, v))

		assert.False(t, New(mem, zap.NewNop()).IsVerified(), "value %q", v)
	}
}

func TestGate_StorageErrorsAreSwallowed(t *testing.T) {
	gate := New(failingStorage{}, zap.NewNop())

	assert.NotPanics(t, gate.Confirm)
	assert.False(t, gate.IsVerified())
}
