package dto

import apperrors "greencross/internal/errors"

type CustomerDTO struct {
	FullName            string `json:"fullName"`
	PhoneNumber         string `json:"phoneNumber"`
	Email               string `json:"email,omitempty"`
	PickupLocation      string `json:"pickupLocation"`
	PickupDate          string `json:"pickupDate"`
	PickupTime          string `json:"pickupTime"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

type PreorderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type PreorderRequest struct {
	Customer CustomerDTO       `json:"customer"`
	Items    []PreorderItemDTO `json:"items"`
	Total    float64           `json:"total"`
}

type PreorderResponse struct {
	OK      bool                         `json:"ok"`
	TraceID string                       `json:"traceId,omitempty"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

// NotificationEvent is the payload published for downstream mailers.
type NotificationEvent struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	ReplyTo   string `json:"replyTo,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}
