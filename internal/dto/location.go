package dto

type LocationDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Status       string   `json:"status"`
	AddressLines []string `json:"addressLines"`
	Phone        string   `json:"phone"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
}

type ListLocationsResponse struct {
	Locations []LocationDTO `json:"locations"`
}

type NearestLocationResponse struct {
	Location   LocationDTO `json:"location"`
	DistanceKm float64     `json:"distanceKm"`
}
