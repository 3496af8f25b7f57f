package routes

import (
	"marcenaria-pro/config"
	"marcenaria-pro/database"
	adminapi "marcenaria-pro/internal/api/admin"
	authapi "marcenaria-pro/internal/api/auth"
	"marcenaria-pro/internal/api/billing"
	brandsapi "marcenaria-pro/internal/api/brands"
	clientsapi "marcenaria-pro/internal/api/clients"
	plansapi "marcenaria-pro/internal/api/plans"
	projectsapi "marcenaria-pro/internal/api/projects"
	studioapi "marcenaria-pro/internal/api/studio"
	stripewebhooks "marcenaria-pro/internal/api/stripewebhook"
	usersapi "marcenaria-pro/internal/api/users"
	"marcenaria-pro/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	// Stripe needs the raw body for signature verification, so the webhook
	// stays outside the sanitization group.
	r.POST("/webhook", stripewebhooks.StripeWebhook(cfg, stripewebhooks.NewGormStore(database.DB)))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/plans", plansapi.ListPlans)
	r.GET("/brands", brandsapi.ListBrands)

	r.GET("/public/estimate/:token", projectsapi.GetPublicEstimate)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register(cfg))
	public.POST("/login", authapi.Login(cfg))
	public.POST("/public/estimate/:token/decision", projectsapi.DecidePublicEstimate)

	public.GET("/auth/google", authapi.GoogleStart(cfg))
	public.GET("/auth/google/callback", authapi.GoogleCallback(cfg))

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/create-checkout-session", billing.CreateCheckoutSession(cfg, billing.StripeSessionCreator))
	auth.GET("/subscription", billing.GetSubscription)

	auth.GET("/projects", projectsapi.ListProjects)
	auth.GET("/projects/:id", projectsapi.GetProject)
	auth.POST("/projects", projectsapi.CreateProject)
	auth.PUT("/projects/:id", projectsapi.UpdateProject)
	auth.DELETE("/projects/:id", projectsapi.DeleteProject)
	auth.POST("/projects/:id/share", projectsapi.ShareProject)

	auth.GET("/clients", clientsapi.ListClients)
	auth.POST("/clients", clientsapi.CreateClient)
	auth.PUT("/clients/:id", clientsapi.UpdateClient)
	auth.DELETE("/clients/:id", clientsapi.DeleteClient)

	// Paid features
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequirePaidPlan())
	subscribed.POST("/studio/render", studioapi.CreateRender)
	subscribed.GET("/studio/renders", studioapi.ListRenders)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/subscriptions", adminapi.ListAllSubscriptions)
	admin.POST("/brands", brandsapi.CreateBrand)
	admin.PUT("/brands/:id", brandsapi.UpdateBrand)
	admin.DELETE("/brands/:id", brandsapi.DeleteBrand)
}
