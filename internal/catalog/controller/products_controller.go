package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"greencross/internal/catalog/service"
	"greencross/internal/commons"
	"greencross/internal/domain"
	"greencross/internal/dto"
	apperrors "greencross/internal/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SearchUseCase interface {
	SearchProducts(ctx context.Context, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductDTO, error)
}

type Controller struct {
	useCase SearchUseCase
	logger  *zap.Logger
}

func NewController(useCase SearchUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSearchProducts serves GET /api/products.
func (c *Controller) HandleSearchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := c.parseSearchRequest(r)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	resp, err := c.useCase.SearchProducts(r.Context(), req)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

// HandleGetProduct serves GET /api/products/{productId}.
func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	resp, err := c.useCase.GetProduct(r.Context(), id)
	if err != nil {
		commons.WriteError(w, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}

func (c *Controller) parseSearchRequest(r *http.Request) (dto.SearchProductsRequest, error) {
	q := r.URL.Query()
	req := dto.SearchProductsRequest{
		Search:   q.Get("search"),
		Category: strings.ToLower(q.Get("category")),
		Strain:   strings.ToLower(q.Get("strain")),
	}

	var details []apperrors.ValidationDetail

	if req.Category != "" && req.Category != service.FilterAll && !domain.Category(req.Category).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be one of all, flower, edibles, concentrates, vapes, pre-rolls, topicals, accessories",
		})
	}

	if req.Strain != "" && req.Strain != service.FilterAll && !domain.Strain(req.Strain).Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "strain",
			Message: "strain must be one of all, indica, sativa, hybrid, cbd",
		})
	}

	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			details = append(details, apperrors.ValidationDetail{
				Field:   "featured",
				Message: "featured must be a boolean",
			})
		}
		req.FeaturedOnly = featured
	}

	if len(details) > 0 {
		return req, apperrors.NewValidationError("invalid product filter", details...)
	}

	return req, nil
}
