package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-supplied setting, loaded once at startup
// and passed by reference into the handlers. Required fields are validated
// eagerly; the Stripe and Google groups are validated where they are used.
type Config struct {
	Port      string
	DBURL     string
	JWTSecret string

	FrontendURL string

	StripeSecretKey      string
	StripeWebhookSecret  string
	StripePriceMonthly   string
	StripePriceQuarterly string
	StripePriceLifetime  string

	GoogleClientID         string
	GoogleClientSecret     string
	GoogleRedirectURL      string
	GoogleFrontendRedirect string
}

// Load reads .env (if present) and the process environment. It fails with
// a single error enumerating every missing required variable, so a broken
// deploy surfaces the full list at once instead of one name per restart.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBURL:       os.Getenv("DB_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripePriceMonthly:   os.Getenv("STRIPE_PRICE_MONTHLY"),
		StripePriceQuarterly: os.Getenv("STRIPE_PRICE_QUARTERLY"),
		StripePriceLifetime:  os.Getenv("STRIPE_PRICE_LIFETIME"),

		GoogleClientID:         os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:     os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:      os.Getenv("GOOGLE_REDIRECT_URL"),
		GoogleFrontendRedirect: getEnv("GOOGLE_FRONTEND_REDIRECT", ""),
	}

	var missing []string
	if cfg.DBURL == "" {
		missing = append(missing, "DB_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// MissingCheckoutVars lists the Stripe/frontend variables the checkout flow
// needs but that are not set. Empty means checkout is fully configured.
func (c *Config) MissingCheckoutVars() []string {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"STRIPE_SECRET_KEY", c.StripeSecretKey},
		{"STRIPE_PRICE_MONTHLY", c.StripePriceMonthly},
		{"STRIPE_PRICE_QUARTERLY", c.StripePriceQuarterly},
		{"STRIPE_PRICE_LIFETIME", c.StripePriceLifetime},
		{"FRONTEND_URL", c.FrontendURL},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
