package stripewebhooks

import (
	"time"

	"marcenaria-pro/internal/domain/billing"
	"marcenaria-pro/internal/domain/users"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the slice of persistence the reconciler needs. Upsert/update
// semantics keep duplicate event deliveries idempotent.
type Store interface {
	// UpsertSubscription inserts or overwrites the subscription row keyed
	// by sub.UserID.
	UpsertSubscription(sub billing.Subscription) error
	// SetProfilePlan refreshes the denormalized plan on the user's profile.
	SetProfilePlan(userID uint, plano string, at time.Time) error
	// CancelByStripeSubscriptionID marks the matching subscription
	// cancelled. A missing row is not an error.
	CancelByStripeSubscriptionID(stripeSubID string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns the production Store backed by the shared gorm DB.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) UpsertSubscription(sub billing.Subscription) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "plano", "status", "stripe_customer_id", "stripe_subscription_id", "updated_at",
		}),
	}).Create(&sub).Error
}

func (s *gormStore) SetProfilePlan(userID uint, plano string, at time.Time) error {
	return s.db.Model(&users.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"plan":              plano,
			"subscription_date": at,
		}).Error
}

func (s *gormStore) CancelByStripeSubscriptionID(stripeSubID string) error {
	return s.db.Model(&billing.Subscription{}).
		Where("stripe_subscription_id = ?", stripeSubID).
		Update("status", billing.StatusCancelled).Error
}
