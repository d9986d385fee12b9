// Package main is the entry point for the Paisa API server.
//
// @title                    Paisa API
// @version                  1.0
// @description              Personal finance analytics service. Aggregates expenses, income, subscriptions, budgets, debts and goals into dashboards, weekly reports and behaviour insights.
// @host                     localhost:8080
// @BasePath                 /api/v1
package main

import (
	"os"

	"paisa/internal/config"
	"paisa/internal/database"
	_ "paisa/internal/docs"
	"paisa/internal/email"
	"paisa/internal/handlers"
	"paisa/internal/logger"
	"paisa/internal/middleware"
	"paisa/internal/scheduler"
	"paisa/internal/services"
	"paisa/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Server failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	validator.Register()

	manager, err := database.NewManager(cfg)
	if err != nil {
		return err
	}
	if err := manager.Migrate(); err != nil {
		return err
	}
	db := manager.DB()

	// Weekly report emails are optional; without SMTP config the report
	// endpoints still work, only delivery is rejected.
	var sender email.Sender
	if cfg.SMTPHost != "" {
		sender = email.NewSMTPSender(cfg)
	}

	expenseService := services.NewExpenseService(db)
	incomeService := services.NewIncomeService(db)
	subscriptionService := services.NewSubscriptionService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	debtService := services.NewDebtService(db)
	recurringService := services.NewRecurringService(db)
	trackerService := services.NewTrackerService(db)
	preferenceService := services.NewPreferenceService(db)
	badgeService := services.NewBadgeService(db)
	insightService := services.NewInsightService(db, cfg.TrendWindowDays)
	reportService := services.NewReportService(db, sender)

	expenseHandler := handlers.NewExpenseHandler(expenseService)
	incomeHandler := handlers.NewIncomeHandler(incomeService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	debtHandler := handlers.NewDebtHandler(debtService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	trackerHandler := handlers.NewTrackerHandler(trackerService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	insightHandler := handlers.NewInsightHandler(insightService)
	reportHandler := handlers.NewReportHandler(reportService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", expenseHandler.CreateExpense)
			expenses.GET("", expenseHandler.GetExpenses)
			expenses.GET("/search", expenseHandler.SearchExpenses)
			expenses.GET("/duplicates", expenseHandler.GetDuplicates)
			expenses.GET("/:id", expenseHandler.GetExpense)
			expenses.PUT("/:id", expenseHandler.UpdateExpense)
			expenses.DELETE("/:id", expenseHandler.DeleteExpense)
		}

		income := v1.Group("/income")
		{
			income.POST("", incomeHandler.CreateIncome)
			income.GET("", incomeHandler.GetIncome)
		}

		subscriptions := v1.Group("/subscriptions")
		{
			subscriptions.POST("", subscriptionHandler.CreateSubscription)
			subscriptions.GET("", subscriptionHandler.GetSubscriptions)
			subscriptions.GET("/total", subscriptionHandler.GetTotals)
			subscriptions.POST("/:id/cancel", subscriptionHandler.CancelSubscription)
			subscriptions.DELETE("/:id", subscriptionHandler.DeleteSubscription)
		}

		budgets := v1.Group("/budgets")
		{
			budgets.POST("", budgetHandler.CreateBudget)
			budgets.GET("", budgetHandler.GetBudgets)
			budgets.GET("/status/:category", budgetHandler.GetBudgetStatus)
			budgets.PUT("/:id", budgetHandler.UpdateBudget)
			budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		}

		goals := v1.Group("/goals")
		{
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("", goalHandler.GetGoals)
			goals.GET("/:id/calculations", goalHandler.GetGoalCalculations)
			goals.PUT("/:id", goalHandler.UpdateGoalAmount)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		debts := v1.Group("/debts")
		{
			debts.POST("", debtHandler.CreateDebt)
			debts.GET("", debtHandler.GetDebts)
			debts.POST("/:id/payments", debtHandler.RecordPayment)
			debts.PUT("/:id/status", debtHandler.UpdateDebtStatus)
			debts.DELETE("/:id", debtHandler.DeleteDebt)
		}

		recurring := v1.Group("/recurring")
		{
			recurring.POST("", recurringHandler.CreateRecurring)
			recurring.GET("", recurringHandler.GetRecurring)
			recurring.POST("/process", recurringHandler.ProcessRecurring)
			recurring.DELETE("/:id", recurringHandler.DeleteRecurring)
		}

		trackers := v1.Group("/trackers")
		{
			trackers.POST("", trackerHandler.CreateTracker)
			trackers.GET("", trackerHandler.GetTrackers)
			trackers.PUT("/:id/price", trackerHandler.UpdatePrice)
		}

		preferences := v1.Group("/preferences")
		{
			preferences.GET("", preferenceHandler.GetPreferences)
			preferences.PUT("", preferenceHandler.SavePreferences)
		}

		badges := v1.Group("/badges")
		{
			badges.GET("", badgeHandler.GetBadges)
			badges.POST("/check", badgeHandler.CheckBadges)
		}

		insights := v1.Group("/analytics")
		{
			insights.GET("/dashboard", insightHandler.GetDashboard)
			insights.GET("/trends", insightHandler.GetTrends)
			insights.GET("/behaviour", insightHandler.GetBehaviour)
			insights.GET("/merchants", insightHandler.GetMerchants)
			insights.GET("/categories/:category", insightHandler.GetCategoryInsights)
			insights.GET("/recommendations", insightHandler.GetRecommendations)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/weekly", reportHandler.GetWeeklyReport)
			reports.POST("/weekly/email", reportHandler.EmailWeeklyReport)
		}
	}

	if cfg.SchedulerEnabled {
		sched := scheduler.New(recurringService, cfg.SchedulerSpec)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()
	}

	logger.Get().Infof("Starting server on port %s", cfg.Port)
	return router.Run(":" + cfg.Port)
}
