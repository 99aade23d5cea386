package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"greencross/internal/domain"
	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
	"greencross/internal/preorder/validation"
)

type Composer interface {
	Compose(p domain.Preorder) domain.Notification
}

type Relay interface {
	Send(ctx context.Context, n domain.Notification) error
}

type SubmitPreorderUseCase struct {
	composer Composer
	relay    Relay
	logger   *zap.Logger
}

func NewSubmitPreorderUseCase(composer Composer, relay Relay, logger *zap.Logger) *SubmitPreorderUseCase {
	return &SubmitPreorderUseCase{
		composer: composer,
		relay:    relay,
		logger:   logger,
	}
}

// Submit validates the request, composes the notification and relays it. It
// returns the notification id on success.
func (uc *SubmitPreorderUseCase) Submit(ctx context.Context, req dto.PreorderRequest) (string, error) {
	if err := validation.ValidateRequest(req); err != nil {
		return "", err
	}

	preorder := ToPreorder(req)
	n := uc.composer.Compose(preorder)

	uc.logger.Info("relaying preorder",
		zap.String("notificationId", n.ID),
		zap.String("pickupLocation", preorder.Customer.PickupLocation),
		zap.Int("items", len(preorder.Items)),
		zap.Float64("total", preorder.Total),
	)

	if err := uc.relay.Send(ctx, n); err != nil {
		return "", apperrors.NewInternalError("relaying preorder", fmt.Errorf("notification %s: %w", n.ID, err))
	}

	return n.ID, nil
}

func ToPreorder(req dto.PreorderRequest) domain.Preorder {
	items := make([]domain.PreorderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.PreorderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		}
	}

	c := req.Customer
	return domain.Preorder{
		Customer: domain.Customer{
			FullName:            c.FullName,
			PhoneNumber:         c.PhoneNumber,
			Email:               c.Email,
			PickupLocation:      c.PickupLocation,
			PickupDate:          c.PickupDate,
			PickupTime:          c.PickupTime,
			SpecialInstructions: c.SpecialInstructions,
		},
		Items: items,
		Total: req.Total,
	}
}
