package brands

import (
	"errors"
	"net/http"

	"marcenaria-pro/database"
	"marcenaria-pro/internal/domain/brands"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BrandRequest struct {
	Nome         string `json:"nome" binding:"required"`
	LogoURL      string `json:"logo_url"`
	SiteOficial  string `json:"site_oficial"`
	CatalogoURL  string `json:"catalogo_url"`
	TotalPadroes int    `json:"total_padroes"`
}

type UpdateBrandRequest struct {
	Nome         *string `json:"nome"`
	LogoURL      *string `json:"logo_url"`
	SiteOficial  *string `json:"site_oficial"`
	CatalogoURL  *string `json:"catalogo_url"`
	TotalPadroes *int    `json:"total_padroes"`
}

// GET /brands — the MDF manufacturer catalog, public.
func ListBrands(c *gin.Context) {
	var list []brands.Brand
	if err := database.DB.Order("nome ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load brands"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /admin/brands
func CreateBrand(c *gin.Context) {
	var input BrandRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	brand := brands.Brand{
		Nome:         input.Nome,
		LogoURL:      input.LogoURL,
		SiteOficial:  input.SiteOficial,
		CatalogoURL:  input.CatalogoURL,
		TotalPadroes: input.TotalPadroes,
	}

	if err := database.DB.Create(&brand).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Brand may already exist"})
		return
	}

	c.JSON(http.StatusOK, brand)
}

// PUT /admin/brands/:id
func UpdateBrand(c *gin.Context) {
	var brand brands.Brand
	err := database.DB.Where("id = ?", c.Param("id")).First(&brand).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load brand"})
		return
	}

	var input UpdateBrandRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Nome != nil {
		brand.Nome = *input.Nome
	}
	if input.LogoURL != nil {
		brand.LogoURL = *input.LogoURL
	}
	if input.SiteOficial != nil {
		brand.SiteOficial = *input.SiteOficial
	}
	if input.CatalogoURL != nil {
		brand.CatalogoURL = *input.CatalogoURL
	}
	if input.TotalPadroes != nil {
		brand.TotalPadroes = *input.TotalPadroes
	}

	if err := database.DB.Save(&brand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DELETE /admin/brands/:id
func DeleteBrand(c *gin.Context) {
	res := database.DB.Where("id = ?", c.Param("id")).Delete(&brands.Brand{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}
