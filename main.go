package main

import (
	"log"
	"time"

	"marcenaria-pro/config"
	"marcenaria-pro/database"
	routes "marcenaria-pro/internal/app/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ ", err)
	}
	database.InitDB(cfg.DBURL)

	r := gin.Default()

	// The PWA is served from arbitrary origins (installed app, preview
	// builds), so the API stays open and auth rides on the bearer token.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.RegisterRoutes(r, cfg)

	r.Run(":" + cfg.Port)
}
