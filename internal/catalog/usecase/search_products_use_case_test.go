package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencross/internal/catalog/service"
	"greencross/internal/domain"
	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
)

type mockService struct {
	SearchFunc  func(ctx context.Context, filter service.Filter) []domain.Product
	GetByIDFunc func(ctx context.Context, id string) (*domain.Product, error)
}

func (m *mockService) Search(ctx context.Context, filter service.Filter) []domain.Product {
	return m.SearchFunc(ctx, filter)
}

func (m *mockService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return m.GetByIDFunc(ctx, id)
}

func TestSearchProducts_MapsFilterAndProducts(t *testing.T) {
	thc := 21.0
	var gotFilter service.Filter
	svc := &mockService{
		SearchFunc: func(ctx context.Context, filter service.Filter) []domain.Product {
			gotFilter = filter
			return []domain.Product{
				{ID: "blue-dream", Name: "Blue Dream", Price: 45, Category: domain.CategoryFlower, Strain: domain.StrainHybrid, THCPercent: &thc, Featured: true},
				{ID: "glass-pipe", Name: "Hand-Blown Glass Pipe", Price: 30, Category: domain.CategoryAccessories},
			}
		},
	}

	uc := NewSearchUseCase(svc)
	resp, err := uc.SearchProducts(context.Background(), dto.SearchProductsRequest{
		Search:       "dream",
		Category:     "flower",
		Strain:       "hybrid",
		FeaturedOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, service.Filter{Search: "dream", Category: "flower", Strain: "hybrid", FeaturedOnly: true}, gotFilter)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Products, 2)

	require.NotNil(t, resp.Products[0].Strain)
	assert.Equal(t, "hybrid", *resp.Products[0].Strain)
	assert.Equal(t, &thc, resp.Products[0].THCPercent)
	assert.Nil(t, resp.Products[1].Strain)
	assert.Equal(t, "accessories", resp.Products[1].Category)
}

func TestSearchProducts_EmptyResultIsNotNil(t *testing.T) {
	svc := &mockService{
		SearchFunc: func(ctx context.Context, filter service.Filter) []domain.Product { return nil },
	}

	resp, err := NewSearchUseCase(svc).SearchProducts(context.Background(), dto.SearchProductsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Equal(t, 0, resp.Count)
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := &mockService{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}

	p, err := NewSearchUseCase(svc).GetProduct(context.Background(), "missing")
	assert.Nil(t, p)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
