package projects

import (
	"marcenaria-pro/internal/domain/projects"

	"gorm.io/gorm"
)

func userProjectsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&projects.Project{}).Where("user_id = ?", userID)
}
