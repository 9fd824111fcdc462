package routes

import (
	"github.com/Galaviv15/Cost-Manager-RESTful-Web-Services/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Register wires every endpoint onto the engine. Authentication is
// optional across the API; a valid bearer token only enriches the
// request log with the caller's id.
func Register(router *gin.Engine, h *Handler, authMiddleware, requestLogger gin.HandlerFunc) {
	router.Use(middleware.CORS())
	router.Use(authMiddleware)
	router.Use(requestLogger)

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUserDetails)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.POST("/transactions", h.CreateTransaction)
		api.GET("/transactions", h.ListTransactions)
		api.GET("/transactions/:id", h.GetTransaction)
		api.DELETE("/transactions/:id", h.DeleteTransaction)

		// Legacy aliases kept for existing clients.
		api.POST("/add", h.CreateTransaction)
		api.GET("/costs", h.ListTransactions)

		api.GET("/report", h.GetReport)
		api.GET("/reports", h.GetReport)

		api.POST("/budgets", h.CreateBudget)
		api.GET("/budgets", h.ListBudgets)
		api.PUT("/budgets/:id", h.UpdateBudget)
		api.DELETE("/budgets/:id", h.DeleteBudget)
		api.GET("/budgets/status", h.GetBudgetStatus)

		api.POST("/goals", h.CreateGoal)
		api.GET("/goals", h.ListGoals)
		api.DELETE("/goals/:id", h.DeleteGoal)
		api.POST("/goals/:id/contribute", h.ContributeToGoal)
		api.GET("/goals/:id/progress", h.GetGoalProgress)

		api.GET("/analytics/summary", h.GetAnalyticsSummary)
		api.GET("/analytics/trends", h.GetAnalyticsTrends)
		api.GET("/analytics/categories", h.GetAnalyticsCategories)

		api.GET("/about", h.GetAbout)
		api.GET("/logs", h.GetLogs)
		api.GET("/admin/team", h.GetAbout)
		api.GET("/admin/logs", h.GetLogs)
	}
}
