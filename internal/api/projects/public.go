package projects

import (
	"errors"
	"net/http"
	"time"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/projects"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicEstimateDTO is the client-facing snapshot of a shared estimate.
// Internal pricing inputs (margin, materials cost) stay hidden.
type PublicEstimateDTO struct {
	ClientName      string     `json:"client_name"`
	ProjectType     string     `json:"project_type"`
	Status          string     `json:"status"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	FinalPrice      *float64   `json:"final_price,omitempty"`
	PaymentTerms    string     `json:"payment_terms,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

func findByPublicToken(c *gin.Context) (*projects.Project, bool) {
	var project projects.Project
	err := database.DB.Where("public_token = ?", c.Param("token")).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load estimate"})
		return nil, false
	}
	return &project, true
}

// GET /public/estimate/:token
func GetPublicEstimate(c *gin.Context) {
	project, ok := findByPublicToken(c)
	if !ok {
		return
	}

	// Best effort; the view itself still renders if this write fails.
	database.DB.Model(project).UpdateColumn("client_view_count", gorm.Expr("client_view_count + 1"))

	c.JSON(http.StatusOK, PublicEstimateDTO{
		ClientName:      project.ClientName,
		ProjectType:     project.ProjectType,
		Status:          project.Status,
		Deadline:        project.Deadline,
		FinalPrice:      project.FinalPrice,
		PaymentTerms:    project.PaymentTerms,
		Notes:           project.Notes,
		ApprovedAt:      project.ApprovedAt,
		RejectionReason: project.RejectionReason,
	})
}

// POST /public/estimate/:token/decision
func DecidePublicEstimate(c *gin.Context) {
	project, ok := findByPublicToken(c)
	if !ok {
		return
	}

	if project.Status != projects.StatusPendingApproval {
		c.JSON(http.StatusConflict, gin.H{"error": "Estimate is not awaiting approval"})
		return
	}

	var input DecisionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Decision {
	case "approve":
		now := time.Now()
		project.Status = projects.StatusApproved
		project.ApprovedAt = &now
		project.RejectionReason = ""
	case "reject":
		project.Status = projects.StatusRejected
		project.RejectionReason = input.Reason
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decision must be approve or reject"})
		return
	}

	if err := database.DB.Save(project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record decision"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": project.Status})
}
