package domain

type LocationStatus string

const (
	LocationOpen   LocationStatus = "open"
	LocationClosed LocationStatus = "closed"
)

type Point struct {
	Latitude  float64
	Longitude float64
}

type Location struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Status       LocationStatus `yaml:"status"`
	AddressLines []string       `yaml:"addressLines"`
	Phone        string         `yaml:"phone"`
	Latitude     float64        `yaml:"latitude"`
	Longitude    float64        `yaml:"longitude"`
}

func (l Location) Point() Point {
	return Point{Latitude: l.Latitude, Longitude: l.Longitude}
}

func (l Location) IsOpen() bool {
	return l.Status == LocationOpen
}

// Street returns the first address line, used wherever a one-line address is shown.
func (l Location) Street() string {
	if len(l.AddressLines) == 0 {
		return ""
	}
	return l.AddressLines[0]
}
