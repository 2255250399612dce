package models

import "gorm.io/gorm"

// Vehicle types offered for rent.
const (
	VehicleCar     = "car"
	VehicleBike    = "bike"
	VehicleScooter = "scooter"
)

type Vehicle struct {
	gorm.Model
	Name     string   `json:"name"`
	Type     string   `json:"type"` // "car", "bike", "scooter"
	Price    float64  `json:"price"`
	Seats    int      `json:"seats"`
	Location string   `json:"location"`
	Color    string   `json:"color"`
	FuelType string   `json:"fuel_type"`
	Images   []string `json:"images" gorm:"serializer:json"`
	Tags     []string `json:"tags" gorm:"serializer:json"`
	Rating   float64  `json:"rating"`
}
