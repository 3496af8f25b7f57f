package stripewebhooks

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"marcenaria-pro/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"
)

// StripeWebhook verifies and applies Stripe events. The signature check is
// the only 400 path after reading the body: once an event is accepted the
// response is always 200 so Stripe does not retry events that were
// structurally fine but semantically incomplete.
func StripeWebhook(cfg *config.Config, store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpointSecret := cfg.StripeWebhookSecret
		if endpointSecret == "" {
			c.String(http.StatusBadRequest, "Webhook Error: STRIPE_WEBHOOK_SECRET not configured")
			return
		}

		payload, err := readStripeBody(c, 65536)
		if err != nil {
			c.String(http.StatusBadRequest, "Webhook Error: could not read request body")
			return
		}

		event, err := webhook.ConstructEventWithOptions(
			payload,
			c.GetHeader("Stripe-Signature"),
			endpointSecret,
			webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
		)
		if err != nil {
			fmt.Println("❌ Stripe signature verification failed:", err)
			c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
			return
		}

		switch parseEventKind(string(event.Type)) {
		case eventCheckoutCompleted:
			var session stripe.CheckoutSession
			if err := json.Unmarshal(event.Data.Raw, &session); err == nil {
				if err := handleCheckoutSessionCompleted(store, &session); err != nil {
					fmt.Println("❌ checkout.session.completed:", err)
				}
			}

		case eventSubscriptionDeleted:
			var sub stripe.Subscription
			if err := json.Unmarshal(event.Data.Raw, &sub); err == nil {
				if err := handleSubscriptionDeleted(store, &sub); err != nil {
					fmt.Println("❌ customer.subscription.deleted:", err)
				}
			}

		case eventIgnored:
			// Acknowledge to avoid retries.
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func readStripeBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
