package billing

import (
	"errors"
	"net/http"

	"marcenaria-pro/database"
	billingdomain "marcenaria-pro/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubscriptionDTO struct {
	Plano                string `json:"plano"`
	Status               string `json:"status"`
	StripeCustomerID     string `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string `json:"stripe_subscription_id,omitempty"`
	UpdatedAt            string `json:"updated_at"`
}

// GetSubscription returns the caller's subscription record, or an empty
// object when the user never completed a checkout.
func GetSubscription(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var sub billingdomain.Subscription
	err := database.DB.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"subscription": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": SubscriptionDTO{
		Plano:                sub.Plano,
		Status:               sub.Status,
		StripeCustomerID:     sub.StripeCustomerID,
		StripeSubscriptionID: sub.StripeSubscriptionID,
		UpdatedAt:            sub.UpdatedAt.Format("2006-01-02 15:04"),
	}})
}
