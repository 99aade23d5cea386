package domain

import "time"

type Customer struct {
	FullName            string
	PhoneNumber         string
	Email               string
	PickupLocation      string
	PickupDate          string
	PickupTime          string
	SpecialInstructions string
}

type PreorderItem struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
	LineTotal float64
}

type Preorder struct {
	Customer Customer
	Items    []PreorderItem
	Total    float64
}

// PickupTimeSlots are the slots offered by the checkout form.
var PickupTimeSlots = []string{"10:00 AM", "12:00 PM", "3:00 PM", "6:00 PM"}

type Notification struct {
	ID        string
	To        string
	ReplyTo   string
	Subject   string
	Body      string
	CreatedAt time.Time
}
