package models

import "gorm.io/gorm"

// Admin rows live in their own table. Email uniqueness across users and
// admins is an application convention enforced by the promotion and
// admin-creation handlers, not by a shared constraint.
type Admin struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
}
