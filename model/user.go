package model

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"default:customer" json:"role"`

	// One-time password-reset state, set on forgot-password and
	// cleared once the reset succeeds.
	ResetPasswordOTP     *string    `json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
