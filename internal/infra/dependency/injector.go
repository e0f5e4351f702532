// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/church-ledger/backend/config"
	"github.com/church-ledger/backend/internal/application/adapter"
	"github.com/church-ledger/backend/internal/application/usecase/auth"
	"github.com/church-ledger/backend/internal/application/usecase/budget"
	"github.com/church-ledger/backend/internal/application/usecase/collection"
	"github.com/church-ledger/backend/internal/application/usecase/customfield"
	"github.com/church-ledger/backend/internal/application/usecase/expense"
	"github.com/church-ledger/backend/internal/application/usecase/export"
	"github.com/church-ledger/backend/internal/application/usecase/intake"
	"github.com/church-ledger/backend/internal/application/usecase/ledger"
	"github.com/church-ledger/backend/internal/domain/valueobject"
	"github.com/church-ledger/backend/internal/infra/metrics"
	"github.com/church-ledger/backend/internal/infra/server/router"
	"github.com/church-ledger/backend/internal/integration/adapters"
	"github.com/church-ledger/backend/internal/integration/email"
	"github.com/church-ledger/backend/internal/integration/email/templates"
	"github.com/church-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/church-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/church-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	DB               *gorm.DB
	Redis            *redis.Client
	Metrics          *metrics.Metrics
	Router           *router.Router
	LoginRateLimiter *middleware.RateLimiter
	TokenRepository  persistence.TokenRepository
	BootstrapAdmin   *auth.BootstrapAdminUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
// Optional integrations (Redis, Resend, Sheets, Gemini) are only wired when configured.
func NewInjector(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Injector, error) {
	defaultSplit, err := defaultFundSplit(cfg.Ledger)
	if err != nil {
		return nil, err
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	collectionRepo := persistence.NewCollectionRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetPlanRepository(db)
	customFieldRepo := persistence.NewCustomFieldRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Password.BcryptCost, cfg.Password.MinLength)
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
	)
	suggester := adapters.NewGeminiSuggester(cfg.Google.GeminiAPIKey)
	workbookBuilder := adapters.NewExcelWorkbookBuilder()
	sheetsExporter, err := adapters.NewSheetsExporter(ctx, adapters.SheetsConfig{
		SpreadsheetID:   cfg.Google.SpreadsheetID,
		CredentialsJSON: cfg.Google.CredentialsJSON,
		Endpoint:        cfg.Google.SheetsEndpoint,
	})
	if err != nil {
		return nil, err
	}

	var (
		redisClient *redis.Client
		splitCache  adapter.SplitCache
	)
	if cfg.Redis.URL != "" {
		redisClient, err = adapters.NewRedisClient(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		splitCache = adapters.NewRedisSplitCache(redisClient, cfg.Redis.SplitCacheTTL)
	} else {
		slog.Info("Redis not configured, fund split cache disabled")
	}

	var receiptSender adapter.ReceiptSender
	if cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		receiptSender = email.NewReceiptService(resendClient, renderer, email.DefaultReceiptConfig())
	} else {
		slog.Info("Resend not configured, submission receipts disabled")
	}

	appMetrics := metrics.New()

	// Create ledger pipeline
	processor := ledger.NewProcessor(ledger.NewRecordValidator(collectionRepo))
	splitResolver := collection.NewSplitResolver(budgetRepo, splitCache, defaultSplit)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	createUserUseCase := auth.NewCreateUserUseCase(userRepo, passwordService)
	getCurrentUserUseCase := auth.NewGetCurrentUserUseCase(userRepo)
	bootstrapAdminUseCase := auth.NewBootstrapAdminUseCase(userRepo, passwordService)

	// Create collection use cases
	createCollectionUseCase := collection.NewCreateCollectionUseCase(collectionRepo, processor, splitResolver)
	updateCollectionUseCase := collection.NewUpdateCollectionUseCase(collectionRepo, processor, splitResolver)
	getCollectionUseCase := collection.NewGetCollectionUseCase(collectionRepo)
	listCollectionsUseCase := collection.NewListCollectionsUseCase(collectionRepo)
	deleteCollectionUseCase := collection.NewDeleteCollectionUseCase(collectionRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, processor)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, processor)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	getSummaryUseCase := expense.NewGetSummaryUseCase(expenseRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(suggester)

	// Create budget use cases
	saveBudgetPlanUseCase := budget.NewSaveBudgetPlanUseCase(budgetRepo, splitCache)
	getBudgetPlanUseCase := budget.NewGetBudgetPlanUseCase(budgetRepo)
	listBudgetPlansUseCase := budget.NewListBudgetPlansUseCase(budgetRepo)
	deleteBudgetPlanUseCase := budget.NewDeleteBudgetPlanUseCase(budgetRepo, splitCache)
	compareBudgetUseCase := budget.NewCompareBudgetUseCase(budgetRepo, expenseRepo)

	// Create custom field use cases
	createCustomFieldUseCase := customfield.NewCreateCustomFieldUseCase(customFieldRepo)
	listCustomFieldsUseCase := customfield.NewListCustomFieldsUseCase(customFieldRepo)
	updateCustomFieldUseCase := customfield.NewUpdateCustomFieldUseCase(customFieldRepo)
	deactivateCustomFieldUseCase := customfield.NewDeactivateCustomFieldUseCase(customFieldRepo)
	saveValuesUseCase := customfield.NewSaveValuesUseCase(customFieldRepo, collectionRepo, expenseRepo)
	getValuesUseCase := customfield.NewGetValuesUseCase(customFieldRepo, collectionRepo, expenseRepo)

	// Create intake and export use cases
	submitFormUseCase := intake.NewSubmitFormUseCase(userRepo, createCollectionUseCase, createExpenseUseCase, receiptSender)
	exportToSheetsUseCase := export.NewExportToSheetsUseCase(collectionRepo, expenseRepo, sheetsExporter)
	buildWorkbookUseCase := export.NewBuildWorkbookUseCase(collectionRepo, expenseRepo, workbookBuilder)

	// Create controllers
	var cacheHealth controller.HealthChecker
	if redisClient != nil {
		cacheHealth = func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, cacheHealth)

	controllers := router.Controllers{
		Health: healthController,
		Auth:   controller.NewAuthController(loginUseCase, refreshTokenUseCase, logoutUseCase),
		User:   controller.NewUserController(createUserUseCase, getCurrentUserUseCase),
		Collection: controller.NewCollectionController(
			createCollectionUseCase,
			updateCollectionUseCase,
			getCollectionUseCase,
			listCollectionsUseCase,
			deleteCollectionUseCase,
			appMetrics,
		),
		Expense: controller.NewExpenseController(
			createExpenseUseCase,
			updateExpenseUseCase,
			getExpenseUseCase,
			listExpensesUseCase,
			deleteExpenseUseCase,
			getSummaryUseCase,
			suggestCategoryUseCase,
			appMetrics,
		),
		Budget: controller.NewBudgetController(
			saveBudgetPlanUseCase,
			getBudgetPlanUseCase,
			listBudgetPlansUseCase,
			deleteBudgetPlanUseCase,
			compareBudgetUseCase,
		),
		CustomField: controller.NewCustomFieldController(
			createCustomFieldUseCase,
			listCustomFieldsUseCase,
			updateCustomFieldUseCase,
			deactivateCustomFieldUseCase,
			saveValuesUseCase,
			getValuesUseCase,
		),
		Intake: controller.NewIntakeController(submitFormUseCase, appMetrics),
		Export: controller.NewExportController(exportToSheetsUseCase, buildWorkbookUseCase),
	}

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	if cfg.Intake.RelayToken == "" {
		slog.Warn("FORM_RELAY_TOKEN not set, form relay endpoint will reject all submissions")
	}

	// Create router
	r := router.NewRouter(
		controllers,
		loginRateLimiter,
		authMiddleware,
		cfg.Intake.RelayToken,
		appMetrics,
		appMetrics.Handler(),
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Redis:            redisClient,
		Metrics:          appMetrics,
		Router:           r,
		LoginRateLimiter: loginRateLimiter,
		TokenRepository:  tokenRepo,
		BootstrapAdmin:   bootstrapAdminUseCase,
	}, nil
}

// Close releases connections owned by the injector.
func (i *Injector) Close() error {
	if i.Redis != nil {
		return i.Redis.Close()
	}
	return nil
}

// defaultFundSplit builds the split used for years without a budget plan.
func defaultFundSplit(cfg config.LedgerConfig) (valueobject.FundSplit, error) {
	split, err := valueobject.NewFundSplit(
		decimal.NewFromFloat(cfg.DefaultSharedFundPercent),
		decimal.NewFromFloat(cfg.DefaultPastoralTeamPercent),
		decimal.NewFromFloat(cfg.DefaultOperationalPercent),
	)
	if err != nil {
		return valueobject.FundSplit{}, fmt.Errorf("invalid default fund split: %w", err)
	}
	return split, nil
}
