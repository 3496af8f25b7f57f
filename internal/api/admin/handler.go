package admin

import (
	"net/http"
	"time"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/billing"
	"marcenaria-pro/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Plan             string     `json:"plan"`
	SubscriptionDate *time.Time `json:"subscription_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers          int64            `json:"total_users"`
	ActiveSubscriptions int64            `json:"active_subscriptions"`
	UsersPerPlan        map[string]int64 `json:"users_per_plan"`
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]AdminUser, 0, len(all))
	for _, u := range all {
		out = append(out, AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			Plan:             u.Plan,
			SubscriptionDate: u.SubscriptionDate,
			CreatedAt:        u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

func ListAllSubscriptions(c *gin.Context) {
	var subs []billing.Subscription
	if err := database.DB.Order("updated_at DESC").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load subscriptions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func GetAdminStats(c *gin.Context) {
	stats := AdminStats{UsersPerPlan: map[string]int64{}}

	if err := database.DB.Model(&users.User{}).Count(&stats.TotalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
		return
	}

	if err := database.DB.Model(&billing.Subscription{}).
		Where("status = ?", billing.StatusActive).
		Count(&stats.ActiveSubscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count subscriptions"})
		return
	}

	var perPlan []struct {
		Plan  string
		Count int64
	}
	if err := database.DB.Model(&users.User{}).
		Select("plan, count(*) as count").
		Group("plan").
		Scan(&perPlan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to group users per plan"})
		return
	}
	for _, row := range perPlan {
		stats.UsersPerPlan[row.Plan] = row.Count
	}

	c.JSON(http.StatusOK, stats)
}
