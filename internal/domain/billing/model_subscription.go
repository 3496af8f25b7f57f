package billing

import "time"

// Subscription statuses reported back from Stripe events.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Subscription is the per-user billing record. One row per user (upsert on
// user_id), written only by the Stripe webhook reconciler.
type Subscription struct {
	ID                   uint   `gorm:"primaryKey"`
	UserID               uint   `gorm:"not null;uniqueIndex:idx_subscriptions_user_id"`
	Email                string `gorm:"not null"`
	Plano                string `gorm:"not null"`
	Status               string `gorm:"not null"`
	StripeCustomerID     string `gorm:"column:stripe_customer_id"`
	StripeSubscriptionID string `gorm:"column:stripe_subscription_id;index:idx_subscriptions_stripe_subscription_id"`
	UpdatedAt            time.Time
}
