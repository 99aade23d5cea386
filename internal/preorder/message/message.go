package message

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"greencross/internal/domain"
)

// Composer turns a preorder into the notification sent to the business inbox.
type Composer struct {
	to    string
	now   func() time.Time
	newID func() string
}

func NewComposer(to string) *Composer {
	return &Composer{
		to:    to,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

func (c *Composer) Compose(p domain.Preorder) domain.Notification {
	return domain.Notification{
		ID:        c.newID(),
		To:        c.to,
		ReplyTo:   p.Customer.Email,
		Subject:   Subject(p.Customer.FullName),
		Body:      Body(p),
		CreatedAt: c.now(),
	}
}

func Subject(fullName string) string {
	return "New GreenCross preorder - " + fullName
}

// Body renders the plain-text order summary, one line per field, joined with "\n".
func Body(p domain.Preorder) string {
	c := p.Customer
	lines := []string{
		"New preorder from " + c.FullName,
		"",
		"Phone: " + c.PhoneNumber,
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	lines = append(lines,
		"",
		"Pickup: "+c.PickupLocation+" on "+c.PickupDate+" at "+c.PickupTime,
		"",
		"Items:",
	)
	for _, item := range p.Items {
		lines = append(lines, "- "+item.Name+" x"+strconv.Itoa(item.Quantity)+
			" @ $"+Money(item.Price)+" = $"+Money(item.LineTotal))
	}
	lines = append(lines, "", "Total: $"+Money(p.Total))

	if c.SpecialInstructions != "" {
		lines = append(lines, "", "Special instructions:", c.SpecialInstructions)
	}

	return strings.Join(lines, "\n")
}

// Money formats an amount with exactly two decimals.
func Money(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
