package plans

import (
	"net/http"

	"marcenaria-pro/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type PlanDTO struct {
	ID     string       `json:"id"`
	Paid   bool         `json:"paid"`
	Limits plans.Limits `json:"limits"`
}

// ListPlans exposes the static plan catalog with its entitlements.
func ListPlans(c *gin.Context) {
	ids := append([]string{plans.PlanFree}, plans.Paid()...)

	out := make([]PlanDTO, 0, len(ids))
	for _, id := range ids {
		out = append(out, PlanDTO{
			ID:     id,
			Paid:   plans.IsPaid(id),
			Limits: plans.LimitsFor(id),
		})
	}

	c.JSON(http.StatusOK, out)
}
