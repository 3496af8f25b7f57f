package projects

import (
	"errors"
	"fmt"
	"net/http"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/plans"
	"marcenaria-pro/internal/domain/projects"
	"marcenaria-pro/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// GET /projects
func ListProjects(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []projects.Project
	if err := userProjectsQuery(database.DB, userID).Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load projects"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /projects/:id
func GetProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var project projects.Project
	err := userProjectsQuery(database.DB, userID).Where("id = ?", c.Param("id")).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// POST /projects
func CreateProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input CreateProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = projects.StatusQuote
	}
	if !projects.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid status %q", status)})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var count int64
	if err := userProjectsQuery(database.DB, userID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check project quota"})
		return
	}
	limit := plans.LimitsFor(user.Plan).Projects
	if !plans.WithinQuota(count, limit) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("Project limit reached (%d). Upgrade your plan to create more projects.", limit),
		})
		return
	}

	project := projects.Project{
		ID:             uuid.NewString(),
		UserID:         userID,
		ClientName:     input.ClientName,
		ClientCPF:      input.ClientCPF,
		ClientAddress:  input.ClientAddress,
		ClientCity:     input.ClientCity,
		ProjectType:    input.ProjectType,
		Status:         status,
		StartDate:      input.StartDate,
		Deadline:       input.Deadline,
		MaterialsCost:  input.MaterialsCost,
		FinalPrice:     input.FinalPrice,
		EstimatedHours: input.EstimatedHours,
		EstimatedDays:  input.EstimatedDays,
		FreightCost:    input.FreightCost,
		MarginPercent:  input.MarginPercent,
		TaxPercent:     input.TaxPercent,
		PaymentTerms:   input.PaymentTerms,
		Notes:          input.Notes,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// PUT /projects/:id
func UpdateProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var project projects.Project
	err := userProjectsQuery(database.DB, userID).Where("id = ?", c.Param("id")).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	var input UpdateProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Status != nil && !projects.IsValidStatus(*input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid status %q", *input.Status)})
		return
	}

	applyProjectUpdate(&project, input)

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DELETE /projects/:id
func DeleteProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := userProjectsQuery(database.DB, userID).Where("id = ?", c.Param("id")).Delete(&projects.Project{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// POST /projects/:id/share — issues (or re-uses) the public estimate token
// and flips the project to pending approval.
func ShareProject(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var project projects.Project
	err := userProjectsQuery(database.DB, userID).Where("id = ?", c.Param("id")).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}

	if project.PublicToken == nil {
		token := uuid.NewString()
		project.PublicToken = &token
	}
	project.Status = projects.StatusPendingApproval

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"public_token": *project.PublicToken})
}

func applyProjectUpdate(p *projects.Project, in UpdateProjectRequest) {
	if in.ClientName != nil {
		p.ClientName = *in.ClientName
	}
	if in.ClientCPF != nil {
		p.ClientCPF = *in.ClientCPF
	}
	if in.ClientAddress != nil {
		p.ClientAddress = *in.ClientAddress
	}
	if in.ClientCity != nil {
		p.ClientCity = *in.ClientCity
	}
	if in.ProjectType != nil {
		p.ProjectType = *in.ProjectType
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.Deadline != nil {
		p.Deadline = in.Deadline
	}
	if in.MaterialsCost != nil {
		p.MaterialsCost = *in.MaterialsCost
	}
	if in.FinalPrice != nil {
		p.FinalPrice = in.FinalPrice
	}
	if in.EstimatedHours != nil {
		p.EstimatedHours = *in.EstimatedHours
	}
	if in.EstimatedDays != nil {
		p.EstimatedDays = *in.EstimatedDays
	}
	if in.FreightCost != nil {
		p.FreightCost = *in.FreightCost
	}
	if in.MarginPercent != nil {
		p.MarginPercent = *in.MarginPercent
	}
	if in.TaxPercent != nil {
		p.TaxPercent = *in.TaxPercent
	}
	if in.PaymentTerms != nil {
		p.PaymentTerms = *in.PaymentTerms
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
}
