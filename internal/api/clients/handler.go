package clients

import (
	"errors"
	"fmt"
	"net/http"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/clients"
	"marcenaria-pro/internal/domain/plans"
	"marcenaria-pro/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	CPF     string `json:"cpf"`
	Notes   string `json:"notes"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	CPF     *string `json:"cpf"`
	Notes   *string `json:"notes"`
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func userClientsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&clients.Client{}).Where("user_id = ?", userID)
}

// GET /clients
func ListClients(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []clients.Client
	if err := userClientsQuery(database.DB, userID).Order("name ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /clients
func CreateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input CreateClientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	var count int64
	if err := userClientsQuery(database.DB, userID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check client quota"})
		return
	}
	limit := plans.LimitsFor(user.Plan).Clients
	if !plans.WithinQuota(count, limit) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": fmt.Sprintf("Client limit reached (%d). Upgrade your plan to register more clients.", limit),
		})
		return
	}

	client := clients.Client{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		CPF:     input.CPF,
		Notes:   input.Notes,
	}

	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// PUT /clients/:id
func UpdateClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var client clients.Client
	err := userClientsQuery(database.DB, userID).Where("id = ?", c.Param("id")).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load client"})
		return
	}

	var input UpdateClientRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.CPF != nil {
		client.CPF = *input.CPF
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}

	if err := database.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// DELETE /clients/:id
func DeleteClient(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := userClientsQuery(database.DB, userID).Where("id = ?", c.Param("id")).Delete(&clients.Client{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
