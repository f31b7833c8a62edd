package models

import "time"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Name           string    `json:"name"`
	Picture        string    `json:"picture"`
	Provider       string    `json:"provider"` // "email" or "google"
	PasswordHash   string    `json:"-"`
	EmailConfirmed bool      `json:"email_confirmed"`
	ConfirmToken   string    `gorm:"index" json:"-"`
	Addresses      []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Orders         []Order   `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserRole lives in its own table so role resolution is a separate lookup
// after sign-in. A user without a row is a plain customer.
type UserRole struct {
	UserID string `gorm:"primaryKey" json:"user_id"`
	Role   string `gorm:"type:VARCHAR(20);not null" json:"role"` // e.g. "admin"
}

// PasswordReset is a single-use reset token sent by email.
type PasswordReset struct {
	Token     string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	ExpiresAt time.Time
	UsedAt    *time.Time
}
