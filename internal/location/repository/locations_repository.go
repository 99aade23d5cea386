package repository

import (
	_ "embed"
	"fmt"

	"greencross/internal/commons"
	"greencross/internal/domain"
)

//go:embed data/locations.yaml
var locationsYAML []byte

type locationsFile struct {
	Locations []domain.Location `yaml:"locations"`
}

type StaticRepository struct {
	locations []domain.Location
}

func NewStaticRepository() (*StaticRepository, error) {
	return NewRepositoryFromYAML(locationsYAML)
}

func NewRepositoryFromYAML(data []byte) (*StaticRepository, error) {
	var file locationsFile
	if err := commons.DecodeYAML(data, &file); err != nil {
		return nil, fmt.Errorf("decoding locations: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Locations))
	for i, loc := range file.Locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("location at index %d has no id", i)
		}
		if _, dup := seen[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", loc.ID)
		}
		if loc.Status != domain.LocationOpen && loc.Status != domain.LocationClosed {
			return nil, fmt.Errorf("location %q has unknown status %q", loc.ID, loc.Status)
		}
		if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
			return nil, fmt.Errorf("location %q has coordinates out of range", loc.ID)
		}
		seen[loc.ID] = struct{}{}
	}

	return &StaticRepository{locations: file.Locations}, nil
}

func (r *StaticRepository) FindAll() []domain.Location {
	out := make([]domain.Location, len(r.locations))
	copy(out, r.locations)
	return out
}
