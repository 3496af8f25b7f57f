package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"not null;default:'user'"`
	Document     string

	// Denormalized plan projection, kept in sync by the Stripe webhook so
	// entitlement checks never join against subscriptions.
	Plan             string     `gorm:"not null;default:'free'"`
	SubscriptionDate *time.Time `gorm:"column:subscription_date"`

	DownloadCount int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
