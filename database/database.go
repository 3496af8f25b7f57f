package database

import (
	"fmt"
	"log"

	"marcenaria-pro/internal/domain/billing"
	"marcenaria-pro/internal/domain/brands"
	"marcenaria-pro/internal/domain/clients"
	"marcenaria-pro/internal/domain/projects"
	"marcenaria-pro/internal/domain/studio"
	"marcenaria-pro/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&billing.Subscription{},

		// workshop data
		&projects.Project{},
		&clients.Client{},
		&brands.Brand{},
		&studio.RenderJob{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
