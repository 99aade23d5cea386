package validation

import (
	"net/mail"
	"strconv"
	"strings"

	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
)

const MinPhoneLength = 7

const required = "Required"

// ValidateCustomer checks the checkout form fields. Both the storefront client
// and the preorder endpoint apply it.
func ValidateCustomer(c dto.CustomerDTO) error {
	details := customerDetails(c)
	if len(details) > 0 {
		return apperrors.NewValidationError("please fix the highlighted fields", details...)
	}
	return nil
}

// ValidateRequest applies the customer checks plus the item and total checks
// the endpoint enforces on the wire payload.
func ValidateRequest(req dto.PreorderRequest) error {
	details := customerDetails(req.Customer)

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	for idx, item := range req.Items {
		prefix := "items[" + strconv.Itoa(idx) + "]."

		if strings.TrimSpace(item.ProductID) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "productId",
				Message: "productId is required",
			})
		}

		if strings.TrimSpace(item.Name) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "name",
				Message: "name is required",
			})
		}

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.Price < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "price",
				Message: "price must be non-negative",
			})
		}

		if item.LineTotal < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "lineTotal",
				Message: "lineTotal must be non-negative",
			})
		}
	}

	if req.Total < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "total",
			Message: "total must be non-negative",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

// ValidEmail accepts a bare address only, no display name.
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email && strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".")
}

func customerDetails(c dto.CustomerDTO) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(c.FullName) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "fullName", Message: required})
	}

	if len([]rune(strings.TrimSpace(c.PhoneNumber))) < MinPhoneLength {
		details = append(details, apperrors.ValidationDetail{Field: "phoneNumber", Message: required})
	}

	if c.Email != "" && !ValidEmail(c.Email) {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "Invalid email"})
	}

	if strings.TrimSpace(c.PickupLocation) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "pickupLocation", Message: required})
	}

	if strings.TrimSpace(c.PickupDate) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "pickupDate", Message: required})
	}

	if strings.TrimSpace(c.PickupTime) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "pickupTime", Message: required})
	}

	return details
}
