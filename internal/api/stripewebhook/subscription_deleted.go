package stripewebhooks

import (
	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionDeleted marks the matching subscription cancelled. The
// profile's plan is deliberately left alone so access runs until the end of
// the paid period.
func handleSubscriptionDeleted(store Store, sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}
	return store.CancelByStripeSubscriptionID(sub.ID)
}
