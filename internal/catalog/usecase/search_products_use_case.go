package usecase

import (
	"context"

	"greencross/internal/catalog/service"
	"greencross/internal/domain"
	"greencross/internal/dto"
)

type Service interface {
	Search(ctx context.Context, filter service.Filter) []domain.Product
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type SearchUseCase struct {
	service Service
}

func NewSearchUseCase(service Service) *SearchUseCase {
	return &SearchUseCase{service: service}
}

func (uc *SearchUseCase) SearchProducts(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	found := uc.service.Search(ctx, service.Filter{
		Search:       req.Search,
		Category:     req.Category,
		Strain:       req.Strain,
		FeaturedOnly: req.FeaturedOnly,
	})

	products := make([]dto.ProductDTO, 0, len(found))
	for _, p := range found {
		products = append(products, ToProductDTO(p))
	}

	return &dto.SearchProductsResponse{
		Products: products,
		Count:    len(products),
	}, nil
}

func (uc *SearchUseCase) GetProduct(ctx context.Context, id string) (*dto.ProductDTO, error) {
	p, err := uc.service.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToProductDTO(*p)
	return &out, nil
}

func ToProductDTO(p domain.Product) dto.ProductDTO {
	var strain *string
	if p.HasStrain() {
		s := string(p.Strain)
		strain = &s
	}

	return dto.ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    string(p.Category),
		Strain:      strain,
		WeightLabel: p.WeightLabel,
		THCPercent:  p.THCPercent,
		CBDPercent:  p.CBDPercent,
		Featured:    p.Featured,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}
