package studio

import (
	"fmt"
	"net/http"
	"strings"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/studio"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RenderRequest struct {
	Sketch string `json:"sketch" binding:"required"` // data URL of the drawn sketch
	Style  string `json:"style" binding:"required"`
}

// placeholderRenderURL builds the mock render location for a job. There is
// no model behind the studio yet; the URL is deterministic so re-fetching a
// job always shows the same image.
func placeholderRenderURL(style, jobID string) string {
	return fmt.Sprintf("https://renders.marcenariapro.app/mock/%s/%s.png", style, jobID)
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// POST /studio/render
func CreateRender(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input RenderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !strings.HasPrefix(input.Sketch, "data:image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sketch must be an image data URL"})
		return
	}
	if !studio.IsValidStyle(input.Style) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown style %q", input.Style)})
		return
	}

	job := studio.RenderJob{
		ID:        uuid.NewString(),
		UserID:    userID,
		Style:     input.Style,
		SketchURL: input.Sketch,
		Status:    studio.StatusDone,
	}
	job.ResultURL = placeholderRenderURL(job.Style, job.ID)

	if err := database.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create render job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// GET /studio/renders
func ListRenders(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var jobs []studio.RenderJob
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load renders"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}
