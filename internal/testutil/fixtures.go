package testutil

import (
	"testing"

	"go.uber.org/zap"

	"greencross/internal/cart"
	"greencross/internal/cart/storage"
	catalogrepo "greencross/internal/catalog/repository"
	locationrepo "greencross/internal/location/repository"
)

// Catalog loads the embedded product catalog or fails the test.
func Catalog(t *testing.T) *catalogrepo.StaticRepository {
	t.Helper()
	repo, err := catalogrepo.NewStaticRepository()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return repo
}

// Locations loads the embedded pickup directory or fails the test.
func Locations(t *testing.T) *locationrepo.StaticRepository {
	t.Helper()
	repo, err := locationrepo.NewStaticRepository()
	if err != nil {
		t.Fatalf("failed to load locations: %v", err)
	}
	return repo
}

// NewCart returns an empty cart over the real catalog and in-memory storage.
func NewCart(t *testing.T) (*cart.Store, *storage.MemoryStorage) {
	t.Helper()
	mem := storage.NewMemoryStorage()
	return cart.NewStore(Catalog(t), mem, zap.NewNop()), mem
}
