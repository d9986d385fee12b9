package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/services"
)

// --- mock budget service ---

type mockBudgetService struct {
	createBudgetFn    func(userID, category string, monthlyLimit float64, currency string) (*models.Budget, error)
	getUserBudgetsFn  func(userID string) ([]analytics.BudgetStatus, error)
	getBudgetStatusFn func(userID, category string) (*analytics.BudgetStatus, error)
	updateBudgetFn    func(userID, budgetID string, monthlyLimit float64) (*models.Budget, error)
	deleteBudgetFn    func(userID, budgetID string) error
}

func (m *mockBudgetService) CreateBudget(userID, category string, monthlyLimit float64, currency string) (*models.Budget, error) {
	if m.createBudgetFn != nil {
		return m.createBudgetFn(userID, category, monthlyLimit, currency)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) GetUserBudgets(userID string) ([]analytics.BudgetStatus, error) {
	if m.getUserBudgetsFn != nil {
		return m.getUserBudgetsFn(userID)
	}
	return []analytics.BudgetStatus{}, nil
}

func (m *mockBudgetService) GetBudgetStatus(userID, category string) (*analytics.BudgetStatus, error) {
	if m.getBudgetStatusFn != nil {
		return m.getBudgetStatusFn(userID, category)
	}
	return &analytics.BudgetStatus{}, nil
}

func (m *mockBudgetService) UpdateBudget(userID, budgetID string, monthlyLimit float64) (*models.Budget, error) {
	if m.updateBudgetFn != nil {
		return m.updateBudgetFn(userID, budgetID, monthlyLimit)
	}
	return &models.Budget{}, nil
}

func (m *mockBudgetService) DeleteBudget(userID, budgetID string) error {
	if m.deleteBudgetFn != nil {
		return m.deleteBudgetFn(userID, budgetID)
	}
	return nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.POST("/budgets", handler.CreateBudget)
	r.GET("/budgets", handler.GetBudgets)
	r.GET("/budgets/status/:category", handler.GetBudgetStatus)
	r.PUT("/budgets/:id", handler.UpdateBudget)
	r.DELETE("/budgets/:id", handler.DeleteBudget)
	return r
}

// --- tests ---

func TestBudgetHandler_CreateBudget(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBudgetService{
			createBudgetFn: func(userID, category string, monthlyLimit float64, _ string) (*models.Budget, error) {
				return &models.Budget{
					Base:         models.Base{ID: testExpenseID},
					UserID:       userID,
					Category:     category,
					MonthlyLimit: monthlyLimit,
					Month:        "2025-06",
					Currency:     "INR",
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Food","monthly_limit":5000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		budget := result["budget"].(map[string]interface{})
		if budget["category"] != "Food" {
			t.Errorf("expected category Food, got %v", budget["category"])
		}
	})

	t.Run("returns 409 on duplicate", func(t *testing.T) {
		svc := &mockBudgetService{
			createBudgetFn: func(_, _ string, _ float64, _ string) (*models.Budget, error) {
				return nil, apperrors.ErrBudgetExists
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Food","monthly_limit":5000}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BUDGET_EXISTS")
	})

	t.Run("rejects non-positive limit", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(&mockBudgetService{}))

		rec := doRequest(r, "POST", "/budgets", `{"category":"Food","monthly_limit":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestBudgetHandler_GetBudgetStatus(t *testing.T) {
	t.Run("returns status for category", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetStatusFn: func(_, category string) (*analytics.BudgetStatus, error) {
				return &analytics.BudgetStatus{
					Category:    category,
					Limit:       1000,
					PercentUsed: 85,
					Status:      analytics.BudgetWarning,
				}, nil
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets/status/Food", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["status"] != "warning" {
			t.Errorf("expected warning status, got %v", result["status"])
		}
	})

	t.Run("returns 404 when no budget", func(t *testing.T) {
		svc := &mockBudgetService{
			getBudgetStatusFn: func(_, _ string) (*analytics.BudgetStatus, error) {
				return nil, apperrors.ErrBudgetNotFound
			},
		}
		r := setupBudgetRouter(NewBudgetHandler(svc))

		rec := doRequest(r, "GET", "/budgets/status/Food", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
