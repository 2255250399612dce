package models

import "gorm.io/gorm"

// Wishlist links a user to a saved vehicle. The composite unique index
// backs the idempotent add.
type Wishlist struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"uniqueIndex:idx_wishlist_user_vehicle"`
	VehicleID uint    `json:"vehicle_id" gorm:"uniqueIndex:idx_wishlist_user_vehicle"`
	Vehicle   Vehicle `json:"vehicle" gorm:"foreignKey:VehicleID"`
}
