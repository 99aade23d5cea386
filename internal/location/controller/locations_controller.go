package controller

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"greencross/internal/commons"
	"greencross/internal/domain"
	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
	"greencross/internal/location/service"

	"go.uber.org/zap"
)

type LocationService interface {
	List(ctx context.Context) []domain.Location
	FindNearest(ctx context.Context, point domain.Point) (*service.Nearest, error)
}

type Controller struct {
	service LocationService
	logger  *zap.Logger
}

func NewController(service LocationService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	locations := c.service.List(r.Context())

	resp := dto.ListLocationsResponse{Locations: make([]dto.LocationDTO, 0, len(locations))}
	for _, loc := range locations {
		resp.Locations = append(resp.Locations, ToLocationDTO(loc))
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

func (c *Controller) HandleNearestLocation(w http.ResponseWriter, r *http.Request) {
	point, err := parsePoint(r)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	nearest, err := c.service.FindNearest(r.Context(), point)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	c.logger.Debug("nearest location resolved",
		zap.String("locationId", nearest.Location.ID),
		zap.Float64("distanceKm", nearest.DistanceKm),
	)

	commons.WriteJSON(w, http.StatusOK, dto.NearestLocationResponse{
		Location:   ToLocationDTO(nearest.Location),
		DistanceKm: nearest.DistanceKm,
	}, c.logger)
}

func parsePoint(r *http.Request) (domain.Point, error) {
	q := r.URL.Query()
	var details []apperrors.ValidationDetail

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lat",
			Message: "lat must be a number between -90 and 90",
		})
	}

	lng, err := strconv.ParseFloat(q.Get("lng"), 64)
	if err != nil || math.IsNaN(lng) || lng < -180 || lng > 180 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "lng",
			Message: "lng must be a number between -180 and 180",
		})
	}

	if len(details) > 0 {
		return domain.Point{}, apperrors.NewValidationError("invalid coordinates", details...)
	}

	return domain.Point{Latitude: lat, Longitude: lng}, nil
}

func ToLocationDTO(loc domain.Location) dto.LocationDTO {
	lines := make([]string, len(loc.AddressLines))
	copy(lines, loc.AddressLines)

	return dto.LocationDTO{
		ID:           loc.ID,
		Name:         loc.Name,
		Status:       string(loc.Status),
		AddressLines: lines,
		Phone:        loc.Phone,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
	}
}
