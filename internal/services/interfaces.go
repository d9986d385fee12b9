package services

import (
	"time"

	"paisa/internal/analytics"
	"paisa/internal/models"
	"paisa/internal/pagination"
)

// ExpenseFilter holds optional filter parameters for searching expenses.
type ExpenseFilter struct {
	Query     string
	Category  string
	MinAmount *float64
	MaxAmount *float64
	StartDate *time.Time
	EndDate   *time.Time
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	CreateExpense(userID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	SearchExpenses(userID string, filter ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	FindDuplicates(userID string) ([]analytics.DuplicateGroup, error)
}

// IncomeServicer defines the contract for the income ledger.
type IncomeServicer interface {
	CreateIncome(userID string, amount float64, source, currency string, date time.Time) (*models.Income, error)
	GetUserIncome(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
}

// SubscriptionTotals reports aggregate subscription cost.
type SubscriptionTotals struct {
	MonthlyTotal float64 `json:"monthly_total"`
	YearlyTotal  float64 `json:"yearly_total"`
}

// SubscriptionServicer defines the contract for subscriptions.
type SubscriptionServicer interface {
	CreateSubscription(userID, name string, amount float64, cycle models.BillingCycle, category, currency string, nextBillingDate time.Time) (*models.Subscription, error)
	GetUserSubscriptions(userID string, activeOnly bool) ([]models.Subscription, error)
	CancelSubscription(userID, subscriptionID string) (*models.Subscription, error)
	DeleteSubscription(userID, subscriptionID string) error
	GetTotals(userID string) (*SubscriptionTotals, error)
}

// BudgetServicer defines the contract for category budgets.
type BudgetServicer interface {
	CreateBudget(userID, category string, monthlyLimit float64, currency string) (*models.Budget, error)
	GetUserBudgets(userID string) ([]analytics.BudgetStatus, error)
	GetBudgetStatus(userID, category string) (*analytics.BudgetStatus, error)
	UpdateBudget(userID, budgetID string, monthlyLimit float64) (*models.Budget, error)
	DeleteBudget(userID, budgetID string) error
}

// GoalView is a goal with its derived progress.
type GoalView struct {
	models.Goal
	ProgressPercent float64 `json:"progress_percent"`
}

// GoalServicer defines the contract for savings goals.
type GoalServicer interface {
	CreateGoal(userID, name, category string, targetAmount, currentAmount float64, targetDate time.Time, currency string) (*models.Goal, error)
	GetUserGoals(userID string) ([]GoalView, error)
	UpdateGoalAmount(userID, goalID string, currentAmount float64) (*models.Goal, error)
	DeleteGoal(userID, goalID string) error
	GetGoalPace(userID, goalID string) (*analytics.GoalPace, error)
}

// DebtView is a debt with its derived repayment progress.
type DebtView struct {
	models.Debt
	RemainingAmount float64 `json:"remaining_amount"`
	PercentPaid     float64 `json:"percent_paid"`
}

// DebtServicer defines the contract for debts.
type DebtServicer interface {
	CreateDebt(userID, name string, principal, annualRatePercent float64, tenureMonths int, startDate time.Time, currency string) (*models.Debt, error)
	GetUserDebts(userID string) ([]DebtView, error)
	RecordPayment(userID, debtID string, amount float64) (*models.Debt, error)
	UpdateDebtStatus(userID, debtID string, status models.DebtStatus) (*models.Debt, error)
	DeleteDebt(userID, debtID string) error
}

// ProcessResult reports the outcome of a recurring-transaction run.
type ProcessResult struct {
	Processed []string `json:"processed"`
	Count     int      `json:"count"`
}

// RecurringServicer defines the contract for recurring transaction templates.
type RecurringServicer interface {
	CreateRecurring(userID, name string, amount float64, category string, entryType models.EntryType, frequency models.Frequency, dayOfMonth int, currency string) (*models.RecurringTransaction, error)
	GetUserRecurring(userID string) ([]models.RecurringTransaction, error)
	DeleteRecurring(userID, recurringID string) error
	ProcessDue(userID string, now time.Time) (*ProcessResult, error)
	ProcessAllDue(now time.Time) (*ProcessResult, error)
}

// TrackerServicer defines the contract for price trackers.
type TrackerServicer interface {
	CreateTracker(userID, productName string, currentPrice float64, targetPrice *float64, url, currency string) (*models.PriceTracker, error)
	GetUserTrackers(userID string) ([]models.PriceTracker, error)
	UpdatePrice(userID, trackerID string, newPrice float64) (*models.PriceTracker, error)
}

// PreferenceServicer defines the contract for user preferences.
type PreferenceServicer interface {
	GetPreferences(userID string) (*models.Preferences, error)
	SavePreferences(userID string, mode models.PersonalityMode, language string, spendingAlerts bool, email string) (*models.Preferences, error)
}

// BadgeCheckResult reports newly awarded badges.
type BadgeCheckResult struct {
	NewBadges   []models.Badge `json:"new_badges"`
	TotalBadges int            `json:"total_badges"`
}

// BadgeServicer defines the contract for milestone badges.
type BadgeServicer interface {
	GetUserBadges(userID string) ([]models.Badge, error)
	CheckAndAward(userID string) (*BadgeCheckResult, error)
}

// InsightServicer derives analytics view models from the record store.
type InsightServicer interface {
	GetDashboard(userID string) (*analytics.DashboardSummary, error)
	GetTrends(userID string, days int) ([]analytics.TrendPoint, error)
	GetBehaviour(userID string) (*analytics.BehaviourReport, error)
	GetMerchants(userID string) ([]analytics.MerchantSummary, error)
	GetCategoryInsights(userID, category string) (*analytics.CategoryInsights, error)
	GetRecommendations(userID string) ([]analytics.Recommendation, error)
}

// ReportServicer builds and delivers periodic reports.
type ReportServicer interface {
	GetWeeklyReport(userID string) (*analytics.WeeklyReport, error)
	EmailWeeklyReport(userID, recipient string) (*analytics.WeeklyReport, error)
}
