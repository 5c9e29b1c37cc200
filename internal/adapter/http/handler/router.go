package handler

import (
	"storefront-settlement/internal/adapter/http/middleware"
	"storefront-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Accounts       ports.AccountService
	Onboarding     ports.OnboardingService
	Checkout       ports.CheckoutService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.Accounts)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	merchantHandler := NewMerchantHandler(deps.Accounts, deps.Onboarding)
	v1.POST("/session/restore", merchantHandler.RestoreSession)

	// --- Signed-in routes ---
	signedIn := v1.Group("", middleware.SessionRequired(deps.Accounts))
	{
		signedIn.GET("/session", merchantHandler.Session)
		signedIn.PUT("/payout-account", merchantHandler.UpdatePayoutAccount)

		checkoutHandler := NewCheckoutHandler(deps.Checkout)
		signedIn.POST("/checkout/quote", checkoutHandler.Quote)
		signedIn.POST("/checkout", checkoutHandler.Pay)
	}

	return r
}
