package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"paisa/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense creates an expense for the default user.
func CreateTestExpense(t *testing.T, db *gorm.DB, amount float64, category string, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      models.DefaultUserID,
		Amount:      amount,
		Category:    category,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Currency:    "INR",
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income entry for the default user.
func CreateTestIncome(t *testing.T, db *gorm.DB, amount float64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:   models.DefaultUserID,
		Amount:   amount,
		Source:   fmt.Sprintf("Test source %d", nextID()),
		Currency: "INR",
		Date:     date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestSubscription creates an active subscription for the default user.
func CreateTestSubscription(t *testing.T, db *gorm.DB, amount float64, cycle models.BillingCycle) *models.Subscription {
	t.Helper()

	subscription := &models.Subscription{
		UserID:          models.DefaultUserID,
		Name:            fmt.Sprintf("Test Subscription %d", nextID()),
		Amount:          amount,
		BillingCycle:    cycle,
		Category:        "Entertainment",
		Currency:        "INR",
		NextBillingDate: time.Now().AddDate(0, 1, 0),
		IsActive:        true,
	}
	if err := db.Create(subscription).Error; err != nil {
		t.Fatalf("failed to create test subscription: %v", err)
	}
	return subscription
}

// CreateTestBudget creates a budget for the given category and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, category string, monthlyLimit float64, month string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:       models.DefaultUserID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
		Month:        month,
		Currency:     "INR",
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates a savings goal for the default user.
func CreateTestGoal(t *testing.T, db *gorm.DB, target, current float64, targetDate time.Time) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:        models.DefaultUserID,
		Name:          fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount:  target,
		CurrentAmount: current,
		TargetDate:    targetDate,
		Currency:      "INR",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestRecurring creates an active recurring expense template due at nextDate.
func CreateTestRecurring(t *testing.T, db *gorm.DB, amount float64, frequency models.Frequency, nextDate time.Time) *models.RecurringTransaction {
	t.Helper()

	recurring := &models.RecurringTransaction{
		UserID:    models.DefaultUserID,
		Name:      fmt.Sprintf("Test Recurring %d", nextID()),
		Amount:    amount,
		Category:  "Bills",
		Type:      models.EntryTypeExpense,
		Frequency: frequency,
		NextDate:  nextDate,
		Currency:  "INR",
		IsActive:  true,
	}
	if err := db.Create(recurring).Error; err != nil {
		t.Fatalf("failed to create test recurring transaction: %v", err)
	}
	return recurring
}
