package models

import "fmt"

// Coordinates is a point on the globe in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"50.4501"`
	Longitude float64 `json:"longitude" example:"30.5234"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}
