package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"marcenaria-pro/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted activates the subscription described by the
// session's correlation metadata (attached at checkout creation). Sessions
// without user_id/plano metadata are acknowledged without writes — they
// belong to flows this backend did not start.
func handleCheckoutSessionCompleted(store Store, session *stripe.CheckoutSession) error {
	userIDStr := session.Metadata["user_id"]
	plano := session.Metadata["plano"]
	if userIDStr == "" || plano == "" {
		return nil
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user_id %q in session metadata: %w", userIDStr, err)
	}
	userID := uint(uid64)

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	var customerID string
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	var subscriptionID string
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}

	now := time.Now()
	if err := store.UpsertSubscription(billing.Subscription{
		UserID:               userID,
		Email:                email,
		Plano:                plano,
		Status:               billing.StatusActive,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: subscriptionID,
		UpdatedAt:            now,
	}); err != nil {
		return fmt.Errorf("failed to upsert subscription for user %d: %w", userID, err)
	}

	if err := store.SetProfilePlan(userID, plano, now); err != nil {
		return fmt.Errorf("failed to update profile plan for user %d: %w", userID, err)
	}

	fmt.Printf("✅ Subscription activated for %s (%s)\n", email, plano)
	return nil
}
