package users

import (
	"errors"
	"net/http"
	"time"

	"marcenaria-pro/database"
	billingdomain "marcenaria-pro/internal/domain/billing"
	"marcenaria-pro/internal/domain/plans"
	"marcenaria-pro/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Document string `json:"document,omitempty"`
}

type BillingDTO struct {
	Plan             string     `json:"plan"`
	SubscriptionDate *time.Time `json:"subscription_date,omitempty"`
	Status           string     `json:"status,omitempty"`
}

type MeResponse struct {
	User    UserDTO      `json:"user"`
	Billing BillingDTO   `json:"billing"`
	Limits  plans.Limits `json:"limits"`
}

// GetCurrentUser returns the caller's profile, billing projection and the
// entitlements of the current plan.
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	billing := BillingDTO{
		Plan:             user.Plan,
		SubscriptionDate: user.SubscriptionDate,
	}

	var sub billingdomain.Subscription
	err := database.DB.Where("user_id = ?", userID).First(&sub).Error
	if err == nil {
		billing.Status = sub.Status
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscription"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		User: UserDTO{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Role:     user.Role,
			Document: user.Document,
		},
		Billing: billing,
		Limits:  plans.LimitsFor(user.Plan),
	})
}
