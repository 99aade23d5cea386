package geo

import (
	"math"

	"greencross/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the great-circle distance between a and b.
func DistanceKm(a, b domain.Point) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// FindNearest returns the location closest to point. Ties go to the location
// that appears first. The boolean is false only when locations is empty.
func FindNearest(locations []domain.Location, point domain.Point) (domain.Location, bool) {
	if len(locations) == 0 {
		return domain.Location{}, false
	}

	nearest := locations[0]
	minDistance := DistanceKm(nearest.Point(), point)

	for _, loc := range locations[1:] {
		d := DistanceKm(loc.Point(), point)
		if d < minDistance {
			minDistance = d
			nearest = loc
		}
	}

	return nearest, true
}
