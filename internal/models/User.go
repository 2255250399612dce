package models

import "gorm.io/gorm"

// License verification states. A user starts at "unset" until a card is
// submitted; admins move pending cards to approved or rejected and may
// flip a decision either way later.
const (
	LicenseUnset    = "unset"
	LicensePending  = "pending"
	LicenseApproved = "approved"
	LicenseRejected = "rejected"
)

type User struct {
	gorm.Model
	Name            string `json:"name"`
	Email           string `json:"email" gorm:"unique"`
	Password        string `json:"-"`
	ProfileImageURL string `json:"profile_image_url"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	LicenseCardURL  string `json:"license_card_url"`
	LicenseStatus   string `json:"license_status" gorm:"default:unset"`
}
