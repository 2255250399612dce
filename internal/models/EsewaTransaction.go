package models

import "gorm.io/gorm"

// Mock payment outcomes.
const (
	TxnSuccess = "success"
	TxnFail    = "fail"
)

// EsewaTransaction records one pass through the mock eSewa flow,
// whether or not the booking it tried to create went through.
type EsewaTransaction struct {
	gorm.Model
	RefCode   string  `json:"ref_code" gorm:"uniqueIndex"`
	Pid       string  `json:"pid"`
	EsewaID   string  `json:"esewa_id"`
	Amount    float64 `json:"amount"`
	UserID    uint    `json:"user_id"`
	VehicleID uint    `json:"vehicle_id"`
	BookingID *uint   `json:"booking_id,omitempty"`
	Status    string  `json:"status"` // "success", "fail"
}
