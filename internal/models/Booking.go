package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking lifecycle. Confirmed and Rejected are terminal.
const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingRejected  = "Rejected"
)

// Payment methods accepted at booking time.
const (
	PaymentCash  = "cash"
	PaymentEsewa = "esewa"
)

// Booking reserves a vehicle for the closed interval
// [StartDate, EndDate]. Overlap-freedom per vehicle is enforced at
// insert time inside a serializable transaction.
type Booking struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	VehicleID      uint      `json:"vehicle_id" gorm:"index"`
	Vehicle        Vehicle   `json:"-" gorm:"foreignKey:VehicleID"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	DurationValue  int       `json:"duration_value"`
	PaymentMethod  string    `json:"payment_method"` // "cash", "esewa"
	EstimatedPrice float64   `json:"estimated_price"`
	Status         string    `json:"status"`
}
