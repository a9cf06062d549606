// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/commission-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/commission-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	brandController         *controller.BrandController
	accountController       *controller.AccountController
	orderController         *controller.OrderController
	ledgerController        *controller.LedgerController
	paymentImportController *controller.PaymentImportController
	importRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
// Any controller may be nil; its routes are then not registered.
func NewRouter(
	healthController *controller.HealthController,
	brandController *controller.BrandController,
	accountController *controller.AccountController,
	orderController *controller.OrderController,
	ledgerController *controller.LedgerController,
	paymentImportController *controller.PaymentImportController,
	importRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:        healthController,
		brandController:         brandController,
		accountController:       accountController,
		orderController:         orderController,
		ledgerController:        ledgerController,
		paymentImportController: paymentImportController,
		importRateLimiter:       importRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) (*gin.Engine, error) {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine, nil
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	if r.healthController != nil {
		r.engine.GET("/health", r.healthController.Check)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.brandController != nil {
		brands := v1.Group("/brands")
		{
			brands.GET("", r.brandController.List)
			brands.POST("", r.brandController.Create)
			brands.GET("/:id", r.brandController.Get)
			brands.PATCH("/:id", r.brandController.Update)
			brands.POST("/:id/trackers", r.brandController.CreateTracker)
		}
	}

	if r.accountController != nil {
		accounts := v1.Group("/accounts")
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
		}
	}

	if r.orderController != nil {
		orders := v1.Group("/orders")
		{
			orders.POST("", r.orderController.Create)
			orders.PATCH("/:id", r.orderController.Update)
			orders.DELETE("/:id", r.orderController.Delete)
			orders.PUT("/:id/status", r.orderController.SetPayStatus)
		}
	}

	if r.ledgerController != nil {
		ledgers := v1.Group("/brands/:id/ledgers")
		{
			ledgers.GET("", r.ledgerController.List)
			ledgers.GET("/:account_id", r.ledgerController.Get)
			ledgers.POST("/:account_id/payments", r.ledgerController.RecordPayment)
			ledgers.POST("/:account_id/short-ship", r.ledgerController.MarkShortShipped)
		}
	}

	if r.paymentImportController != nil {
		limit := r.rateLimit()
		v1.POST("/brands/:id/imports/preview", limit, r.paymentImportController.Preview)
		v1.POST("/imports/:session_id/commit", limit, r.paymentImportController.Commit)
	}
}

// rateLimit returns the import limiter middleware, or a pass-through when none is configured.
func (r *Router) rateLimit() gin.HandlerFunc {
	if r.importRateLimiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return r.importRateLimiter.Middleware()
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
