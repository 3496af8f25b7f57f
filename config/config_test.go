package config

import (
	"strings"
	"testing"
)

func TestLoadMissingRequiredVars(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load should fail when DB_URL and JWT_SECRET are unset")
	}
	for _, name := range []string{"DB_URL", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error %q should name missing variable %s", err.Error(), name)
		}
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DBURL != "postgres://localhost/test" {
		t.Fatalf("DBURL = %q", cfg.DBURL)
	}
}

func TestMissingCheckoutVars(t *testing.T) {
	cfg := &Config{
		StripeSecretKey:      "sk_test_123",
		StripePriceMonthly:   "price_m",
		StripePriceQuarterly: "price_q",
		FrontendURL:          "http://localhost:5173",
	}

	missing := cfg.MissingCheckoutVars()
	if len(missing) != 1 || missing[0] != "STRIPE_PRICE_LIFETIME" {
		t.Fatalf("MissingCheckoutVars = %v, want [STRIPE_PRICE_LIFETIME]", missing)
	}

	cfg.StripePriceLifetime = "price_l"
	if got := cfg.MissingCheckoutVars(); len(got) != 0 {
		t.Fatalf("MissingCheckoutVars = %v, want empty", got)
	}
}
