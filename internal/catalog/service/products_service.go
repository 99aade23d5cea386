package service

import (
	"context"
	"fmt"
	"strings"

	"greencross/internal/domain"
	apperrors "greencross/internal/errors"
)

// FilterAll selects every category or strain.
const FilterAll = "all"

type Repository interface {
	FindAll() []domain.Product
	FindByID(id string) (domain.Product, bool)
}

type Filter struct {
	Search       string
	Category     string
	Strain       string
	FeaturedOnly bool
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Search(ctx context.Context, filter Filter) []domain.Product {
	all := s.repo.FindAll()
	matched := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if Matches(p, filter) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	p, ok := s.repo.FindByID(id)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %q not found", id))
	}
	return &p, nil
}

// Matches reports whether p passes filter. A strain filter excludes products
// that have no strain at all.
func Matches(p domain.Product, filter Filter) bool {
	if !isAll(filter.Category) && string(p.Category) != filter.Category {
		return false
	}

	if !isAll(filter.Strain) {
		if !p.HasStrain() || string(p.Strain) != filter.Strain {
			return false
		}
	}

	if filter.FeaturedOnly && !p.Featured {
		return false
	}

	if q := strings.TrimSpace(filter.Search); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}

	return true
}

func isAll(v string) bool {
	return v == "" || v == FilterAll
}
