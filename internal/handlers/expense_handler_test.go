package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"paisa/internal/analytics"
	apperrors "paisa/internal/errors"
	"paisa/internal/models"
	"paisa/internal/pagination"
	"paisa/internal/services"
	"paisa/internal/validator"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn   func(userID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error)
	getUserExpensesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn  func(userID, expenseID string) (*models.Expense, error)
	updateExpenseFn   func(userID, expenseID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error)
	deleteExpenseFn   func(userID, expenseID string) error
	searchExpensesFn  func(userID string, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	findDuplicatesFn  func(userID string) ([]analytics.DuplicateGroup, error)
}

func (m *mockExpenseService) CreateExpense(userID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, amount, category, description, merchant, currency, isRegret, date)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID string, amount float64, category, description, merchant, currency string, isRegret bool, date time.Time) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, amount, category, description, merchant, currency, isRegret, date)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) SearchExpenses(userID string, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.searchExpensesFn != nil {
		return m.searchExpensesFn(userID, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 50, 0)
	return &resp, nil
}

func (m *mockExpenseService) FindDuplicates(userID string) ([]analytics.DuplicateGroup, error) {
	if m.findDuplicatesFn != nil {
		return m.findDuplicatesFn(userID)
	}
	return []analytics.DuplicateGroup{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	r.POST("/expenses", handler.CreateExpense)
	r.GET("/expenses", handler.GetExpenses)
	r.GET("/expenses/search", handler.SearchExpenses)
	r.GET("/expenses/duplicates", handler.GetDuplicates)
	r.GET("/expenses/:id", handler.GetExpense)
	r.PUT("/expenses/:id", handler.UpdateExpense)
	r.DELETE("/expenses/:id", handler.DeleteExpense)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

const testExpenseID = "01890a5d-ac96-774b-bcce-b302099a8057"

// --- tests ---

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(userID string, amount float64, category, description, merchant, currency string, isRegret bool, _ time.Time) (*models.Expense, error) {
				return &models.Expense{
					Base:        models.Base{ID: testExpenseID},
					UserID:      userID,
					Amount:      amount,
					Category:    category,
					Description: description,
					Currency:    "INR",
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "POST", "/expenses",
			`{"amount":450,"category":"Food","description":"Dinner","merchant":"Zomato"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		expense := result["expense"].(map[string]interface{})
		if expense["category"] != "Food" {
			t.Errorf("expected category Food, got %v", expense["category"])
		}
	})

	t.Run("defaults owner when user_id absent", func(t *testing.T) {
		var gotUserID string
		svc := &mockExpenseService{
			createExpenseFn: func(userID string, _ float64, _, _, _, _ string, _ bool, _ time.Time) (*models.Expense, error) {
				gotUserID = userID
				return &models.Expense{}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		doRequest(r, "POST", "/expenses", `{"amount":100,"category":"Food"}`)

		if gotUserID != models.DefaultUserID {
			t.Errorf("expected default owner, got %q", gotUserID)
		}
	})

	t.Run("rejects missing amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses", `{"category":"Food"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "POST", "/expenses", `{"amount":100,"category":"Food","currency":"XYZ"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetExpense(t *testing.T) {
	t.Run("returns 404 when missing", func(t *testing.T) {
		svc := &mockExpenseService{
			getExpenseByIDFn: func(_, _ string) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/"+testExpenseID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EXPENSE_NOT_FOUND")
	})

	t.Run("rejects malformed id", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses/not-a-uuid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_SearchExpenses(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		var gotFilter services.ExpenseFilter
		svc := &mockExpenseService{
			searchExpensesFn: func(_ string, filter services.ExpenseFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
				gotFilter = filter
				resp := pagination.NewPageResponse([]models.Expense{}, page.Page, page.PageSize, 0)
				return &resp, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/search?q=zomato&category=Food&min_amount=100", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotFilter.Query != "zomato" || gotFilter.Category != "Food" {
			t.Errorf("expected filter passed through, got %+v", gotFilter)
		}
		if gotFilter.MinAmount == nil || *gotFilter.MinAmount != 100 {
			t.Errorf("expected min amount 100, got %v", gotFilter.MinAmount)
		}
	})

	t.Run("rejects bad min_amount", func(t *testing.T) {
		r := setupExpenseRouter(NewExpenseHandler(&mockExpenseService{}))

		rec := doRequest(r, "GET", "/expenses/search?min_amount=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_GetDuplicates(t *testing.T) {
	t.Run("returns groups with count", func(t *testing.T) {
		svc := &mockExpenseService{
			findDuplicatesFn: func(_ string) ([]analytics.DuplicateGroup, error) {
				return []analytics.DuplicateGroup{
					{Original: models.Expense{Amount: 500}, Duplicates: []models.Expense{{Amount: 500}}},
				}, nil
			},
		}
		r := setupExpenseRouter(NewExpenseHandler(svc))

		rec := doRequest(r, "GET", "/expenses/duplicates", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["count"].(float64) != 1 {
			t.Errorf("expected count 1, got %v", result["count"])
		}
	})
}
