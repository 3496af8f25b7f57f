package billing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marcenaria-pro/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
)

func checkoutConfig() *config.Config {
	return &config.Config{
		StripeSecretKey:      "sk_test_123",
		StripePriceMonthly:   "price_monthly",
		StripePriceQuarterly: "price_quarterly",
		StripePriceLifetime:  "price_lifetime",
		FrontendURL:          "https://app.marcenariapro.test",
	}
}

// recordingCreator captures the params of the last session creation call.
type recordingCreator struct {
	calls  int
	params *stripe.CheckoutSessionParams
}

func (r *recordingCreator) create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	r.calls++
	r.params = params
	return &stripe.CheckoutSession{URL: "https://checkout.stripe.test/session"}, nil
}

func checkoutRouter(cfg *config.Config, rec *recordingCreator, userID uint, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-checkout-session", func(c *gin.Context) {
		if userID != 0 {
			c.Set("user_id", userID)
		}
		if email != "" {
			c.Set("email", email)
		}
	}, CreateCheckoutSession(cfg, rec.create))
	return r
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCheckoutUnknownPlanRejectedBeforeStripe(t *testing.T) {
	rec := &recordingCreator{}
	r := checkoutRouter(checkoutConfig(), rec, 1, "u1@oficina.com")

	for _, plano := range []string{"free", "weekly", "unknown-plan", ""} {
		body, _ := json.Marshal(gin.H{"plano": plano})
		resp := postCheckout(r, string(body))
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("plano %q: expected 400, got %d", plano, resp.Code)
		}
	}
	if rec.calls != 0 {
		t.Fatalf("session creator called %d times for invalid plans", rec.calls)
	}
}

func TestCheckoutModePerPlan(t *testing.T) {
	cases := []struct {
		plano string
		mode  string
	}{
		{"monthly", "subscription"},
		{"quarterly", "subscription"},
		{"lifetime", "payment"},
	}

	for _, tc := range cases {
		rec := &recordingCreator{}
		r := checkoutRouter(checkoutConfig(), rec, 1, "u1@oficina.com")

		resp := postCheckout(r, `{"plano":"`+tc.plano+`"}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("plano %s: expected 200, got %d (%s)", tc.plano, resp.Code, resp.Body.String())
		}
		if rec.params == nil || rec.params.Mode == nil {
			t.Fatalf("plano %s: session params missing mode", tc.plano)
		}
		if *rec.params.Mode != tc.mode {
			t.Fatalf("plano %s: mode = %q, want %q", tc.plano, *rec.params.Mode, tc.mode)
		}
	}
}

func TestCheckoutAttachesMetadataAndEmail(t *testing.T) {
	rec := &recordingCreator{}
	r := checkoutRouter(checkoutConfig(), rec, 7, "maria@oficina.com")

	resp := postCheckout(r, `{"plano":"monthly"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	if rec.params.Metadata["user_id"] != "7" || rec.params.Metadata["plano"] != "monthly" {
		t.Fatalf("metadata = %v, want user_id=7 plano=monthly", rec.params.Metadata)
	}
	if rec.params.CustomerEmail == nil || *rec.params.CustomerEmail != "maria@oficina.com" {
		t.Fatalf("customer email not prefilled: %+v", rec.params.CustomerEmail)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("response decode: %v", err)
	}
	if out.URL != "https://checkout.stripe.test/session" {
		t.Fatalf("url = %q", out.URL)
	}
}

func TestCheckoutMissingPriceConfigNamesKey(t *testing.T) {
	cfg := checkoutConfig()
	cfg.StripePriceQuarterly = ""
	rec := &recordingCreator{}
	r := checkoutRouter(cfg, rec, 1, "u1@oficina.com")

	resp := postCheckout(r, `{"plano":"quarterly"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "STRIPE_PRICE_QUARTERLY") {
		t.Fatalf("error should name STRIPE_PRICE_QUARTERLY: %s", resp.Body.String())
	}
	if rec.calls != 0 {
		t.Fatal("session creator must not be called when config is missing")
	}
}

func TestCheckoutUnauthenticated(t *testing.T) {
	rec := &recordingCreator{}
	r := checkoutRouter(checkoutConfig(), rec, 0, "")

	resp := postCheckout(r, `{"plano":"monthly"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if rec.calls != 0 {
		t.Fatal("session creator must not be called for unauthenticated callers")
	}
}
