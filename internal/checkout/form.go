package checkout

import "greencross/internal/dto"

// Form holds what the shopper typed into the checkout panel.
type Form struct {
	FullName            string
	PhoneNumber         string
	Email               string
	PickupLocation      string
	PickupDate          string
	PickupTime          string
	SpecialInstructions string
}

func (f *Form) Customer() dto.CustomerDTO {
	return dto.CustomerDTO{
		FullName:            f.FullName,
		PhoneNumber:         f.PhoneNumber,
		Email:               f.Email,
		PickupLocation:      f.PickupLocation,
		PickupDate:          f.PickupDate,
		PickupTime:          f.PickupTime,
		SpecialInstructions: f.SpecialInstructions,
	}
}

func (f *Form) Reset() {
	*f = Form{}
}
