package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"greencross/internal/commons"
	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
)

const maxBodyBytes = 64 << 10

type SubmitPreorderUseCase interface {
	Submit(ctx context.Context, req dto.PreorderRequest) (string, error)
}

type Controller struct {
	useCase SubmitPreorderUseCase
	logger  *zap.Logger
}

func NewController(useCase SubmitPreorderUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleSubmitPreorder answers 200 {ok:true} once the notification has been
// relayed. Every failure, including relay failures, is a 400 {ok:false}.
func (c *Controller) HandleSubmitPreorder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	// Decode request body
	var req dto.PreorderRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeFailure(w, traceID, logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	notificationID, err := c.useCase.Submit(r.Context(), req)
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			logger.Warn("preorder rejected", zap.Int("violations", len(ve.Details)))
			c.writeFailure(w, traceID, logger, ve.Details...)
			return
		}

		logger.Error("error in preorder api", zap.Error(err))
		c.writeFailure(w, traceID, logger)
		return
	}

	logger.Info("preorder accepted", zap.String("notificationId", notificationID))
	commons.WriteJSON(w, http.StatusOK, dto.PreorderResponse{OK: true, TraceID: traceID}, logger)
}

func (c *Controller) writeFailure(w http.ResponseWriter, traceID string, logger *zap.Logger, details ...apperrors.ValidationDetail) {
	commons.WriteJSON(w, http.StatusBadRequest, dto.PreorderResponse{
		OK:      false,
		TraceID: traceID,
		Details: details,
	}, logger)
}
