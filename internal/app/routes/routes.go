package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shaon99/ota-backend/internal/app/controllers"
	"github.com/Shaon99/ota-backend/internal/app/middleware"
	"github.com/Shaon99/ota-backend/internal/domain/services"
	"github.com/Shaon99/ota-backend/internal/domain/services/container"
	"github.com/Shaon99/ota-backend/internal/infrastructure/config"
)

// corsMiddleware answers preflight requests and opens the API to browsers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouter builds the gin engine with all routes and middleware wired
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middleware.RequestID())

	serviceContainer := container.NewServiceContainer(db, cfg)

	middleware.InitAuthMiddleware(cfg, db)
	if redisService, ok := serviceContainer.GetService("redis").(services.InterfaceRedisService); ok {
		middleware.InitCacheMiddleware(redisService)
	}

	// Probes stay outside the versioned prefix so load balancers can hit
	// them without credentials.
	r.GET("/ping", controllers.HandleHealthFunc(serviceContainer, "ping"))
	r.GET("/health", controllers.HandleHealthFunc(serviceContainer, "ping"))
	r.GET("/health/status", controllers.HandleHealthFunc(serviceContainer, "status"))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.IPRateLimiter(1, 10))
	{
		auth.POST("/admin/signin", controllers.HandleAuthFunc(serviceContainer, "adminSignIn"))
		auth.POST("/b2b/register", controllers.HandleB2BCustomerFunc(serviceContainer, "register"))
		auth.POST("/b2b/signin", controllers.HandleB2BCustomerFunc(serviceContainer, "signIn"))
	}

	adminAuth := v1.Group("/auth/admin")
	adminAuth.Use(middleware.RequireAdmin())
	{
		adminAuth.POST("/logout", controllers.HandleAuthFunc(serviceContainer, "adminLogout"))
		adminAuth.GET("/profile", controllers.HandleAuthFunc(serviceContainer, "getAdminProfile"))
	}

	adminB2B := v1.Group("/admin/b2b")
	adminB2B.Use(middleware.RequireAdmin())
	{
		adminB2B.POST("/customer", controllers.HandleB2BCustomerFunc(serviceContainer, "create"))
		adminB2B.GET("/customers",
			middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
			controllers.HandleB2BCustomerFunc(serviceContainer, "getAll"))
		adminB2B.GET("/customer/:id",
			middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}),
			controllers.HandleB2BCustomerFunc(serviceContainer, "getByID"))
		adminB2B.PUT("/customer/:id", controllers.HandleB2BCustomerFunc(serviceContainer, "update"))
		adminB2B.PUT("/customer/:id/password", controllers.HandleB2BCustomerFunc(serviceContainer, "updatePassword"))
		adminB2B.PUT("/customer/:id/status", controllers.HandleB2BCustomerFunc(serviceContainer, "updateStatus"))
		adminB2B.DELETE("/customer/:id", controllers.HandleB2BCustomerFunc(serviceContainer, "delete"))
	}

	b2b := v1.Group("/b2b")
	b2b.Use(middleware.RequireB2BCustomer())
	{
		b2b.GET("/profile", controllers.HandleB2BCustomerFunc(serviceContainer, "getByID"))
		b2b.PUT("/profile", controllers.HandleB2BCustomerFunc(serviceContainer, "update"))
		b2b.PUT("/password", controllers.HandleB2BCustomerFunc(serviceContainer, "updatePassword"))
	}

	return r
}
