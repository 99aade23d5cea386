package checkout

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"greencross/internal/cart"
	"greencross/internal/dto"
	"greencross/internal/preorder/validation"
)

const (
	SuccessMessage = "Your pre-order has been received. We'll text you when it's ready for pickup."
	FailureMessage = "Something went wrong. Please try again."
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrSubmissionInFlight = errors.New("a pre-order is already being submitted")
	ErrSubmissionFailed   = errors.New("pre-order submission failed")
)

// SubmissionError carries the message shown to the shopper. It matches
// ErrSubmissionFailed and the underlying cause with errors.Is.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return FailureMessage
}

func (e *SubmissionError) Unwrap() []error {
	return []error{ErrSubmissionFailed, e.Cause}
}

type Cart interface {
	Snapshot() ([]cart.DetailedItem, decimal.Decimal)
	IsEmpty() bool
	Clear()
	SetCartOpen(open bool)
	SetCheckoutOpen(open bool)
}

type Submitter interface {
	Submit(ctx context.Context, req dto.PreorderRequest) error
}

// Flow drives one checkout panel. At most one submission is outstanding.
type Flow struct {
	cart      Cart
	submitter Submitter
	logger    *zap.Logger
	inFlight  atomic.Bool
}

func NewFlow(cart Cart, submitter Submitter, logger *zap.Logger) *Flow {
	return &Flow{
		cart:      cart,
		submitter: submitter,
		logger:    logger,
	}
}

func (f *Flow) OpenCheckout() error {
	if f.cart.IsEmpty() {
		return ErrEmptyCart
	}
	f.cart.SetCheckoutOpen(true)
	return nil
}

func (f *Flow) CanSubmit() bool {
	return !f.inFlight.Load() && !f.cart.IsEmpty()
}

// Submit sends the current cart with the form. On success the cart is
// cleared, the form reset and both panels closed. On failure both are left
// as they were.
func (f *Flow) Submit(ctx context.Context, form *Form) (string, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return "", ErrSubmissionInFlight
	}
	defer f.inFlight.Store(false)

	items, subtotal := f.cart.Snapshot()
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	customer := form.Customer()
	if err := validation.ValidateCustomer(customer); err != nil {
		return "", err
	}

	req := BuildRequest(customer, items, subtotal)

	if err := f.submitter.Submit(ctx, req); err != nil {
		f.logger.Error("submitting pre-order", zap.Error(err))
		return "", &SubmissionError{Cause: err}
	}

	f.cart.Clear()
	form.Reset()
	f.cart.SetCartOpen(false)
	f.cart.SetCheckoutOpen(false)

	f.logger.Info("pre-order submitted", zap.Int("items", len(req.Items)), zap.Float64("total", req.Total))
	return SuccessMessage, nil
}

// BuildRequest copies everything it needs out of items so the request does
// not change when the cart does.
func BuildRequest(customer dto.CustomerDTO, items []cart.DetailedItem, subtotal decimal.Decimal) dto.PreorderRequest {
	lines := make([]dto.PreorderItemDTO, len(items))
	for i, item := range items {
		lines[i] = dto.PreorderItemDTO{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.InexactFloat64(),
		}
	}

	return dto.PreorderRequest{
		Customer: customer,
		Items:    lines,
		Total:    subtotal.InexactFloat64(),
	}
}
