package api_gateway

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/easyxpense-ledger/internal/api_gateway/handler"
	"github.com/easyxpense-ledger/internal/api_gateway/middleware"
	"github.com/easyxpense-ledger/internal/config"
	"github.com/gin-gonic/gin"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	authCfg *config.AuthConfig,
	authHandler *handler.AuthHandler,
	memberHandler *handler.MemberHandler,
	expenseHandler *handler.ExpenseHandler,
	settlementHandler *handler.SettlementHandler,
	balanceHandler *handler.BalanceHandler,
	activityHandler *handler.ActivityHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Registration and login are the only unauthenticated endpoints
		users := v1.Group("/users")
		{
			users.POST("", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("/me", middleware.Auth(logger, authCfg), authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(middleware.Auth(logger, authCfg))
		{
			// Group member operations
			members := protected.Group("/members")
			{
				members.POST("", memberHandler.Create)
				members.GET("", memberHandler.List)
				members.GET("/:id", memberHandler.GetByID)
			}

			// Expense record operations
			expenses := protected.Group("/expenses")
			{
				expenses.POST("", expenseHandler.Create)
				expenses.GET("", expenseHandler.List)
				expenses.GET("/:id", expenseHandler.GetByID)
			}

			// Settlement record operations
			settlements := protected.Group("/settlements")
			{
				settlements.POST("", settlementHandler.Create)
				settlements.GET("", settlementHandler.List)
				settlements.GET("/:id", settlementHandler.GetByID)
			}

			// Balance queries, always derived from the record history
			balances := protected.Group("/balances")
			{
				balances.GET("", balanceHandler.List)
				balances.GET("/:id", balanceHandler.GetByMemberID)
				balances.GET("/:id/pair/:other_id", balanceHandler.GetPair)
			}

			// Payment-history feed
			protected.GET("/activity", activityHandler.List)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
