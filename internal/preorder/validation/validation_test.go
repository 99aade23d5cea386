package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencross/internal/dto"
	apperrors "greencross/internal/errors"
)

func validCustomer() dto.CustomerDTO {
	return dto.CustomerDTO{
		FullName:       "Jane Doe",
		PhoneNumber:    "713-555-0100",
		PickupLocation: "GreenCross Midtown",
		PickupDate:     "2026-10-20",
		PickupTime:     "12:00 PM",
	}
}

func validRequest() dto.PreorderRequest {
	return dto.PreorderRequest{
		Customer: validCustomer(),
		Items: []dto.PreorderItemDTO{
			{ProductID: "og-kush", Name: "OG Kush", Price: 55, Quantity: 1, LineTotal: 55},
		},
		Total: 55,
	}
}

func fields(t *testing.T, err error) []string {
	t.Helper()
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)

	out := make([]string, len(ve.Details))
	for i, d := range ve.Details {
		out[i] = d.Field
	}
	return out
}

func TestValidateCustomer_Valid(t *testing.T) {
	assert.NoError(t, ValidateCustomer(validCustomer()))

	withOptional := validCustomer()
	withOptional.Email = "jane@example.com"
	withOptional.SpecialInstructions = "Ring twice"
	assert.NoError(t, ValidateCustomer(withOptional))
}

func TestValidateCustomer_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *dto.CustomerDTO)
		fields []string
	}{
		{
			name:   "missing full name",
			mutate: func(c *dto.CustomerDTO) { c.FullName = "" },
			fields: []string{"fullName"},
		},
		{
			name:   "blank full name",
			mutate: func(c *dto.CustomerDTO) { c.FullName = "   " },
			fields: []string{"fullName"},
		},
		{
			name:   "phone too short",
			mutate: func(c *dto.CustomerDTO) { c.PhoneNumber = "555010" },
			fields: []string{"phoneNumber"},
		},
		{
			name:   "malformed email",
			mutate: func(c *dto.CustomerDTO) { c.Email = "jane.example.com" },
			fields: []string{"email"},
		},
		{
			name:   "email with display name",
			mutate: func(c *dto.CustomerDTO) { c.Email = "Jane <jane@example.com>" },
			fields: []string{"email"},
		},
		{
			name: "missing pickup details",
			mutate: func(c *dto.CustomerDTO) {
				c.PickupLocation = ""
				c.PickupDate = ""
				c.PickupTime = ""
			},
			fields: []string{"pickupLocation", "pickupDate", "pickupTime"},
		},
		{
			name:   "empty form",
			mutate: func(c *dto.CustomerDTO) { *c = dto.CustomerDTO{} },
			fields: []string{"fullName", "phoneNumber", "pickupLocation", "pickupDate", "pickupTime"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			assert.Equal(t, tt.fields, fields(t, ValidateCustomer(c)))
		})
	}
}

func TestValidateCustomer_PhoneOfExactlyMinimumLength(t *testing.T) {
	c := validCustomer()
	c.PhoneNumber = "5550100"

	assert.NoError(t, ValidateCustomer(c))
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidateRequest(validRequest()))
}

func TestValidateRequest_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.PreorderRequest)
		fields []string
	}{
		{
			name:   "no items",
			mutate: func(r *dto.PreorderRequest) { r.Items = nil },
			fields: []string{"items"},
		},
		{
			name:   "missing product id",
			mutate: func(r *dto.PreorderRequest) { r.Items[0].ProductID = "" },
			fields: []string{"items[0].productId"},
		},
		{
			name:   "missing name",
			mutate: func(r *dto.PreorderRequest) { r.Items[0].Name = " " },
			fields: []string{"items[0].name"},
		},
		{
			name:   "zero quantity",
			mutate: func(r *dto.PreorderRequest) { r.Items[0].Quantity = 0 },
			fields: []string{"items[0].quantity"},
		},
		{
			name: "negative money",
			mutate: func(r *dto.PreorderRequest) {
				r.Items[0].Price = -1
				r.Items[0].LineTotal = -1
				r.Total = -1
			},
			fields: []string{"items[0].price", "items[0].lineTotal", "total"},
		},
		{
			name:   "customer errors are reported too",
			mutate: func(r *dto.PreorderRequest) { r.Customer.FullName = "" },
			fields: []string{"fullName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)

			assert.Equal(t, tt.fields, fields(t, ValidateRequest(r)))
		})
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("jane@example.com"))
	assert.True(t, ValidEmail("jane.doe+pickup@mail.example.org"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("jane@"))
	assert.False(t, ValidEmail("jane@localhost"))
	assert.False(t, ValidEmail("@example.com"))
}
