package repository

import (
	_ "embed"
	"fmt"

	"greencross/internal/commons"
	"greencross/internal/domain"
)

//go:embed data/products.yaml
var productsYAML []byte

type productsFile struct {
	Products []domain.Product `yaml:"products"`
}

// StaticRepository serves the catalog compiled into the binary. It is never
// mutated after construction, so it is safe for concurrent use.
type StaticRepository struct {
	products []domain.Product
	byID     map[string]int
}

func NewStaticRepository() (*StaticRepository, error) {
	return NewRepositoryFromYAML(productsYAML)
}

func NewRepositoryFromYAML(data []byte) (*StaticRepository, error) {
	var file productsFile
	if err := commons.DecodeYAML(data, &file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return NewRepository(file.Products)
}

func NewRepository(products []domain.Product) (*StaticRepository, error) {
	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has no id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %q has unknown category %q", p.ID, p.Category)
		}
		if p.HasStrain() && !p.Strain.Valid() {
			return nil, fmt.Errorf("product %q has unknown strain %q", p.ID, p.Strain)
		}
		byID[p.ID] = i
	}

	stored := make([]domain.Product, len(products))
	copy(stored, products)

	return &StaticRepository{products: stored, byID: byID}, nil
}

func (r *StaticRepository) FindAll() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *StaticRepository) FindByID(id string) (domain.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return r.products[i], true
}
