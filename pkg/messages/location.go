package messages

import "fmt"

// Location is a map pin message. Name and Address are shown under the pin
// when both are present.
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// NewLocation builds a location message, checking coordinate ranges.
func NewLocation(latitude, longitude float64, name, address string) (*Location, error) {
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidMessage, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidMessage, longitude)
	}
	return &Location{Longitude: longitude, Latitude: latitude, Name: name, Address: address}, nil
}

func (*Location) MessageType() string { return TypeLocation }
