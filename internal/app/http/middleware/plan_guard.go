package middleware

import (
	"net/http"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/plans"
	"marcenaria-pro/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequirePaidPlan gates routes behind a paid subscription. It reads the
// denormalized plan on the profile row, which the Stripe webhook keeps
// up to date.
func RequirePaidPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var user users.User
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		if !plans.IsPaid(user.Plan) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "This feature requires an active subscription",
			})
			return
		}

		c.Next()
	}
}
