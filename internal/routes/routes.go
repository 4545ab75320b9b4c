// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, and
// registers all HTTP routes with their middleware.
package routes

import (
	"walletledger/internal/config"
	"walletledger/internal/handlers"
	"walletledger/internal/middleware"
	"walletledger/internal/repositories"
	"walletledger/internal/repositories/counter"
	"walletledger/internal/services/ratelimit"
	"walletledger/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// Every route except /health sits behind the rate-limit middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	txRepo := repositories.NewTransactionRepository(db)
	counterStore := counter.NewRedisStore(repositories.RedisClient)

	// Initialize services
	txService := transaction.NewService(txRepo)
	limiter := ratelimit.NewLimiter(counterStore, ratelimit.Config{
		Limit:  int64(config.GetIntEnv("RATE_LIMIT_MAX", ratelimit.DefaultLimit)),
		Window: config.GetDurationEnv("RATE_LIMIT_WINDOW", ratelimit.DefaultWindow),
	})

	// Initialize handlers and middleware
	txHandler := handlers.NewTransactionHandler(txService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter)

	// Health endpoint bypasses admission control
	app.Get("/health", handlers.HealthCheck)

	// Rate-limited API surface
	limited := app.Use(rateLimitMiddleware.Handler)
	limited.Get("/transactions/summary/:user_id", txHandler.GetSummary)
	limited.Get("/transactions/:user_id", txHandler.GetUserTransactions)
	limited.Post("/transactions", txHandler.CreateTransaction)
	limited.Delete("/transactions/:id", txHandler.DeleteTransaction)
}
