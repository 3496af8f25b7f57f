package brands

// Brand is a manufacturer of MDF boards shown in the pattern catalog.
// Managed by admins, read-only for everyone else.
type Brand struct {
	ID           uint   `gorm:"primaryKey"`
	Nome         string `gorm:"not null;uniqueIndex:idx_fabricantes_mdf_nome"`
	LogoURL      string `gorm:"column:logo_url"`
	SiteOficial  string `gorm:"column:site_oficial"`
	CatalogoURL  string `gorm:"column:catalogo_url"`
	TotalPadroes int    `gorm:"column:total_padroes;not null;default:0"`
}

func (Brand) TableName() string { return "fabricantes_mdf" }
