// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/church-ledger/backend/internal/domain/entity"
	"github.com/church-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/church-ledger/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	User        *controller.UserController
	Collection  *controller.CollectionController
	Expense     *controller.ExpenseController
	Budget      *controller.BudgetController
	CustomField *controller.CustomFieldController
	Intake      *controller.IntakeController
	Export      *controller.ExportController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
	relayToken       string
	requestObserver  middleware.RequestObserver
	metricsHandler   http.Handler
}

// NewRouter creates a new router instance with all dependencies.
// observer and metricsHandler may be nil to serve without instrumentation.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	relayToken string,
	observer middleware.RequestObserver,
	metricsHandler http.Handler,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
		relayToken:       relayToken,
		requestObserver:  observer,
		metricsHandler:   metricsHandler,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Amounts may arrive as JSON numbers; keep their exact decimal text.
	binding.EnableDecoderUseNumber = true
	if err := middleware.SetupValidator(); err != nil {
		slog.Error("Failed to register request validators", "error", err)
		panic(err)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	if r.requestObserver != nil {
		r.engine.Use(middleware.Metrics(r.requestObserver))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
	if r.metricsHandler != nil {
		r.engine.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	viewer := middleware.RequireRole(entity.RoleViewer)
	treasurer := middleware.RequireRole(entity.RoleTreasurer)
	admin := middleware.RequireRole(entity.RoleAdmin)

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
			auth.POST("/refresh", c.Auth.RefreshToken)
			auth.POST("/logout", c.Auth.Logout)
		}

		// Form relay authenticates with a shared token instead of a user session
		intake := v1.Group("/intake")
		intake.Use(middleware.RelayToken(r.relayToken))
		{
			intake.POST("/google-form", c.Intake.SubmitGoogleForm)
		}

		protected := v1.Group("")
		protected.Use(r.authMiddleware.Authenticate())

		users := protected.Group("/users")
		{
			users.GET("/me", c.User.Me)
			users.POST("", admin, c.User.Create)
		}

		collections := protected.Group("/collections")
		{
			collections.GET("", viewer, c.Collection.List)
			collections.GET("/:id", viewer, c.Collection.Get)
			collections.POST("", treasurer, c.Collection.Create)
			collections.PUT("/:id", treasurer, c.Collection.Update)
			collections.DELETE("/:id", admin, c.Collection.Delete)
		}

		expenses := protected.Group("/expenses")
		{
			expenses.GET("", viewer, c.Expense.List)
			expenses.GET("/summary", viewer, c.Expense.Summary)
			expenses.GET("/:id", viewer, c.Expense.Get)
			expenses.POST("", treasurer, c.Expense.Create)
			expenses.POST("/category-suggestion", treasurer, c.Expense.SuggestCategory)
			expenses.PUT("/:id", treasurer, c.Expense.Update)
			expenses.DELETE("/:id", admin, c.Expense.Delete)
		}

		budgets := protected.Group("/budgets")
		{
			budgets.GET("", viewer, c.Budget.List)
			budgets.GET("/:year", viewer, c.Budget.Get)
			budgets.GET("/:year/comparison", viewer, c.Budget.Compare)
			budgets.PUT("/:year", admin, c.Budget.Save)
			budgets.DELETE("/:year", admin, c.Budget.Delete)
		}

		customFields := protected.Group("/custom-fields")
		{
			customFields.GET("", viewer, c.CustomField.List)
			customFields.POST("", admin, c.CustomField.Create)
			customFields.PATCH("/:id", admin, c.CustomField.Update)
			customFields.DELETE("/:id", admin, c.CustomField.Deactivate)
			customFields.GET("/values/:table/:record_id", viewer, c.CustomField.GetValues)
			customFields.PUT("/values/:table/:record_id", treasurer, c.CustomField.SaveValues)
		}

		exports := protected.Group("/exports")
		{
			exports.POST("/sheets", treasurer, c.Export.ExportToSheets)
			exports.GET("/workbook", viewer, c.Export.DownloadWorkbook)
		}
	}
}
