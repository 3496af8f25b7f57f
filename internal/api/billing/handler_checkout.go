package billing

import (
	"fmt"
	"net/http"
	"strings"

	"marcenaria-pro/config"
	"marcenaria-pro/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// SessionCreator opens a hosted Stripe checkout session. Injected so tests
// can record the parameters without hitting the Stripe API.
type SessionCreator func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)

// StripeSessionCreator is the production SessionCreator.
func StripeSessionCreator(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return checkoutsession.New(params)
}

// priceIDFor maps a plan identifier to its configured Stripe price id.
// The second return names the config variable that would supply it.
func priceIDFor(cfg *config.Config, plano string) (string, string) {
	switch plano {
	case plans.PlanMonthly:
		return cfg.StripePriceMonthly, "STRIPE_PRICE_MONTHLY"
	case plans.PlanQuarterly:
		return cfg.StripePriceQuarterly, "STRIPE_PRICE_QUARTERLY"
	case plans.PlanLifetime:
		return cfg.StripePriceLifetime, "STRIPE_PRICE_LIFETIME"
	}
	return "", ""
}

// CreateCheckoutSession starts a Stripe Checkout for the requested plan and
// returns the redirect URL. The subscription itself is only persisted later,
// when the webhook delivers checkout.session.completed. Every failure is a
// 400 with a descriptive message, never a 500.
func CreateCheckoutSession(cfg *config.Config, createSession SessionCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if missing := cfg.MissingCheckoutVars(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Server configuration incomplete. Missing: %s", strings.Join(missing, ", ")),
			})
			return
		}

		userID := c.GetUint("user_id")
		email := c.GetString("email")
		if userID == 0 || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Not authenticated"})
			return
		}

		var body struct {
			Plano string `json:"plano"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Plano == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plano"})
			return
		}

		priceID, envName := priceIDFor(cfg, body.Plano)
		if envName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown plano %q", body.Plano)})
			return
		}
		if priceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("No price configured for plano %q (%s)", body.Plano, envName)})
			return
		}

		// Lifetime is a one-time purchase, everything else recurs.
		mode := stripe.CheckoutSessionModeSubscription
		if body.Plano == plans.PlanLifetime {
			mode = stripe.CheckoutSessionModePayment
		}

		stripe.Key = cfg.StripeSecretKey

		params := &stripe.CheckoutSessionParams{
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
			LineItems: []*stripe.CheckoutSessionLineItemParams{
				{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
			},
			Mode:          stripe.String(string(mode)),
			SuccessURL:    stripe.String(cfg.FrontendURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:     stripe.String(cfg.FrontendURL + "/pricing"),
			CustomerEmail: stripe.String(email),
		}
		// Correlation metadata read back by the webhook reconciler.
		params.AddMetadata("user_id", fmt.Sprint(userID))
		params.AddMetadata("plano", body.Plano)

		s, err := createSession(params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": s.URL})
	}
}
