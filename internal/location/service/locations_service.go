package service

import (
	"context"

	"greencross/internal/domain"
	apperrors "greencross/internal/errors"
	"greencross/internal/geo"
)

type Repository interface {
	FindAll() []domain.Location
}

type Nearest struct {
	Location   domain.Location
	DistanceKm float64
}

type LocationService struct {
	repo Repository
}

func NewService(repo Repository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) List(ctx context.Context) []domain.Location {
	return s.repo.FindAll()
}

// FindNearest returns the pickup location closest to point, or a NotFoundError
// when the directory is empty.
func (s *LocationService) FindNearest(ctx context.Context, point domain.Point) (*Nearest, error) {
	loc, ok := geo.FindNearest(s.repo.FindAll(), point)
	if !ok {
		return nil, apperrors.NewNotFoundError("no pickup locations available")
	}

	return &Nearest{
		Location:   loc,
		DistanceKm: geo.DistanceKm(loc.Point(), point),
	}, nil
}

// Resolve finds a pickup location by id or by display name. The checkout form
// submits the display name.
func (s *LocationService) Resolve(ctx context.Context, idOrName string) (*domain.Location, error) {
	for _, loc := range s.repo.FindAll() {
		if loc.ID == idOrName || loc.Name == idOrName {
			return &loc, nil
		}
	}
	return nil, apperrors.NewNotFoundError("pickup location " + idOrName + " not found")
}
