package stripewebhooks

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marcenaria-pro/config"
	"marcenaria-pro/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

const testWebhookSecret = "whsec_test_secret"

type fakeStore struct {
	subs     map[uint]billing.Subscription
	profiles map[uint]string
	writes   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subs:     map[uint]billing.Subscription{},
		profiles: map[uint]string{},
	}
}

func (f *fakeStore) UpsertSubscription(sub billing.Subscription) error {
	f.writes++
	f.subs[sub.UserID] = sub
	return nil
}

func (f *fakeStore) SetProfilePlan(userID uint, plano string, at time.Time) error {
	f.writes++
	f.profiles[userID] = plano
	return nil
}

func (f *fakeStore) CancelByStripeSubscriptionID(stripeSubID string) error {
	for userID, sub := range f.subs {
		if sub.StripeSubscriptionID == stripeSubID {
			f.writes++
			sub.Status = billing.StatusCancelled
			f.subs[userID] = sub
		}
	}
	return nil
}

func webhookRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{StripeWebhookSecret: testWebhookSecret}
	r := gin.New()
	r.POST("/webhook", StripeWebhook(cfg, store))
	return r
}

// signPayload builds a Stripe-Signature header for payload using the
// documented t=<ts>,v1=<hmac-sha256> scheme.
func signPayload(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func deliver(r *gin.Engine, payload []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBuffer(payload))
	req.Header.Set("Stripe-Signature", signature)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func eventPayload(t *testing.T, eventType string, object map[string]interface{}) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"id":      "evt_test_1",
		"type":    eventType,
		"created": time.Now().Unix(),
		"data":    map[string]interface{}{"object": object},
	})
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return payload
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	store := newFakeStore()
	r := webhookRouter(store)

	payload := eventPayload(t, "checkout.session.completed", map[string]interface{}{
		"id":       "cs_test_1",
		"metadata": map[string]string{"user_id": "1", "plano": "monthly"},
	})

	resp := deliver(r, payload, signPayload(payload, "whsec_wrong_secret"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.HasPrefix(resp.Body.String(), "Webhook Error:") {
		t.Fatalf("body should start with Webhook Error: got %q", resp.Body.String())
	}
	if store.writes != 0 {
		t.Fatalf("unverified payload caused %d writes", store.writes)
	}
}

func TestWebhookCheckoutCompletedActivatesSubscription(t *testing.T) {
	store := newFakeStore()
	r := webhookRouter(store)

	payload := eventPayload(t, "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_1",
		"customer":       "cus_123",
		"subscription":   "sub_123",
		"customer_email": "u1@oficina.com",
		"metadata":       map[string]string{"user_id": "1", "plano": "monthly"},
	})

	resp := deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), `"received":true`) {
		t.Fatalf("missing acknowledgement payload: %s", resp.Body.String())
	}

	sub, ok := store.subs[1]
	if !ok {
		t.Fatal("subscription for user 1 not written")
	}
	if sub.Plano != "monthly" || sub.Status != billing.StatusActive {
		t.Fatalf("subscription = %+v, want monthly/active", sub)
	}
	if sub.StripeCustomerID != "cus_123" || sub.StripeSubscriptionID != "sub_123" {
		t.Fatalf("stripe refs not stored: %+v", sub)
	}
	if sub.Email != "u1@oficina.com" {
		t.Fatalf("email = %q", sub.Email)
	}
	if store.profiles[1] != "monthly" {
		t.Fatalf("profile plan = %q, want monthly", store.profiles[1])
	}

	// Redelivery of the identical event must leave the same end state.
	before := store.subs[1]
	resp = deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("redelivery: expected 200, got %d", resp.Code)
	}
	after := store.subs[1]
	before.UpdatedAt, after.UpdatedAt = time.Time{}, time.Time{}
	if before != after {
		t.Fatalf("redelivery changed state: %+v vs %+v", before, after)
	}
	if store.profiles[1] != "monthly" {
		t.Fatal("redelivery changed profile plan")
	}
}

func TestWebhookCheckoutCompletedWithoutMetadataIsNoOp(t *testing.T) {
	store := newFakeStore()
	r := webhookRouter(store)

	payload := eventPayload(t, "checkout.session.completed", map[string]interface{}{
		"id":             "cs_test_2",
		"customer_email": "stranger@elsewhere.com",
	})

	resp := deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if store.writes != 0 {
		t.Fatalf("metadata-less session caused %d writes", store.writes)
	}
}

func TestWebhookSubscriptionDeleted(t *testing.T) {
	store := newFakeStore()
	store.subs[1] = billing.Subscription{
		UserID:               1,
		Plano:                "monthly",
		Status:               billing.StatusActive,
		StripeSubscriptionID: "sub_123",
	}
	r := webhookRouter(store)

	payload := eventPayload(t, "customer.subscription.deleted", map[string]interface{}{
		"id":     "sub_123",
		"status": "canceled",
	})

	resp := deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if store.subs[1].Status != billing.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", store.subs[1].Status)
	}

	// Cancellation does not downgrade the profile projection.
	if _, wrote := store.profiles[1]; wrote {
		t.Fatal("profile plan must not change on cancellation")
	}
}

func TestWebhookSubscriptionDeletedUnknownID(t *testing.T) {
	store := newFakeStore()
	store.subs[1] = billing.Subscription{
		UserID:               1,
		Status:               billing.StatusActive,
		StripeSubscriptionID: "sub_123",
	}
	r := webhookRouter(store)

	payload := eventPayload(t, "customer.subscription.deleted", map[string]interface{}{
		"id": "sub_unknown",
	})

	resp := deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if store.subs[1].Status != billing.StatusActive {
		t.Fatal("unrelated subscription was modified")
	}
}

func TestWebhookIgnoresOtherEvents(t *testing.T) {
	store := newFakeStore()
	r := webhookRouter(store)

	payload := eventPayload(t, "invoice.payment_failed", map[string]interface{}{
		"id": "in_test_1",
	})

	resp := deliver(r, payload, signPayload(payload, testWebhookSecret))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if store.writes != 0 {
		t.Fatalf("ignored event caused %d writes", store.writes)
	}
}
