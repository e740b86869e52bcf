package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rentora.backend/internal/domain/entities"
	"rentora.backend/internal/interfaces/http/handlers"
	"rentora.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	propertyHandler *handlers.PropertyHandler
	leaseHandler    *handlers.LeaseHandler
	paymentHandler  *handlers.PaymentHandler
	maintHandler    *handlers.MaintenanceHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "rentora-backend",
			"version": "0.1.0",
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
			auth.POST("/verify-nid", d.authMiddleware, d.authHandler.VerifyNID)
		}

		// Property routes (public search, protected management)
		properties := v1.Group("/properties")
		{
			properties.GET("", d.propertyHandler.Search)
			properties.GET("/mine", d.authMiddleware, d.propertyHandler.Mine)
			properties.GET("/:id", d.propertyHandler.Get)

			properties.POST("", d.authMiddleware, middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.propertyHandler.Create)
			properties.PATCH("/:id", d.authMiddleware, d.propertyHandler.Update)
			properties.DELETE("/:id", d.authMiddleware, d.propertyHandler.Delete)
			properties.PUT("/:id/availability", d.authMiddleware, d.propertyHandler.SetAvailability)
			properties.POST("/:id/images", d.authMiddleware, d.propertyHandler.UploadImages)

			properties.POST("/:id/utility-bills", d.authMiddleware, middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.propertyHandler.AddUtilityBill)
			properties.GET("/:id/utility-bills", d.authMiddleware, d.propertyHandler.ListUtilityBills)
			properties.PUT("/:id/utility-bills/:billId/paid", d.authMiddleware, d.propertyHandler.MarkUtilityBillPaid)

			properties.GET("/:id/leases", d.authMiddleware, d.leaseHandler.ByProperty)
			properties.GET("/:id/maintenance", d.authMiddleware, d.maintHandler.ByProperty)
		}

		// Lease routes (protected)
		leases := v1.Group("/leases")
		leases.Use(d.authMiddleware)
		{
			leases.POST("", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), middleware.IdempotencyMiddleware(), d.leaseHandler.Create)
			leases.GET("/mine", d.leaseHandler.Mine)
			leases.GET("/:id", d.leaseHandler.Get)
			leases.POST("/:id/end", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.leaseHandler.End)
			leases.POST("/:id/renew", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.leaseHandler.Renew)
			leases.POST("/:id/agreement", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.leaseHandler.GenerateAgreement)
			leases.GET("/:id/payments", d.paymentHandler.ByLease)
		}

		// Rent payment routes (protected)
		payments := v1.Group("/payments")
		payments.Use(d.authMiddleware)
		{
			payments.POST("", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), middleware.IdempotencyMiddleware(), d.paymentHandler.Create)
			payments.GET("/mine", d.paymentHandler.Mine)
			payments.GET("/overdue", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.paymentHandler.Overdue)
			payments.GET("/:id", d.paymentHandler.Get)
			payments.PATCH("/:id/status", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.paymentHandler.UpdateStatus)
			payments.POST("/:id/slip", middleware.RequireRole(entities.UserRoleTenant), d.paymentHandler.UploadSlip)
			payments.GET("/:id/late-fee", d.paymentHandler.LateFee)
			payments.GET("/:id/verify", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.paymentHandler.Verify)
		}

		// Maintenance routes (protected)
		maintenance := v1.Group("/maintenance")
		maintenance.Use(d.authMiddleware)
		{
			maintenance.POST("", middleware.RequireRole(entities.UserRoleTenant), d.maintHandler.Create)
			maintenance.GET("/mine", d.maintHandler.Mine)
			maintenance.GET("/:id", d.maintHandler.Get)
			maintenance.PATCH("/:id/status", middleware.RequireRole(entities.UserRoleLandlord, entities.UserRoleAdmin), d.maintHandler.UpdateStatus)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.authHandler.ListUsers)
		}
	}
}
