package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "assistec/internal/errors"
	"assistec/internal/ledger"
	"assistec/internal/models"
	"assistec/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listPeriodFn         func(period ledger.Period) ([]models.Transaction, error)
	periodSummaryFn      func(period ledger.Period) (ledger.Summary, error)
	getTransactionByIDFn func(id string) (*models.Transaction, error)
	createFromDraftFn    func(userID string, draft ledger.Draft) (*models.Transaction, error)
	updateFromDraftFn    func(userID, id string, draft ledger.Draft) (*models.Transaction, error)
	deleteTransactionFn  func(id string) error
}

func (m *mockTransactionService) ListPeriod(period ledger.Period) ([]models.Transaction, error) {
	if m.listPeriodFn != nil {
		return m.listPeriodFn(period)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) PeriodSummary(period ledger.Period) (ledger.Summary, error) {
	if m.periodSummaryFn != nil {
		return m.periodSummaryFn(period)
	}
	return ledger.Summary{}, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) CreateFromDraft(userID string, draft ledger.Draft) (*models.Transaction, error) {
	if m.createFromDraftFn != nil {
		return m.createFromDraftFn(userID, draft)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateFromDraft(userID, id string, draft ledger.Draft) (*models.Transaction, error) {
	if m.updateFromDraftFn != nil {
		return m.updateFromDraftFn(userID, id, draft)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUser(testUserID, models.AdminRoleConsultant))
	auth.GET("/transactions", handler.GetPeriodTransactions)
	auth.GET("/transactions/summary", handler.GetPeriodSummary)
	auth.GET("/transactions/categories", handler.GetCategories)
	auth.POST("/transactions", handler.CreateTransaction)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_GetPeriodTransactions(t *testing.T) {
	t.Run("tags response with requested period", func(t *testing.T) {
		txSvc := &mockTransactionService{
			listPeriodFn: func(period ledger.Period) ([]models.Transaction, error) {
				return []models.Transaction{{Description: "Conserto"}}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?year=2025&month=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		period := result["period"].(map[string]interface{})
		if period["year"] != float64(2025) || period["month"] != float64(3) {
			t.Errorf("expected period 2025-03 in response, got %v", period)
		}
		if len(result["transactions"].([]interface{})) != 1 {
			t.Errorf("expected 1 transaction, got %v", result["transactions"])
		}
	})

	t.Run("returns 400 for invalid month", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?year=2025&month=13", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for non-numeric year", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions?year=abc&month=3", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("defaults to the current period", func(t *testing.T) {
		var requested ledger.Period
		txSvc := &mockTransactionService{
			listPeriodFn: func(period ledger.Period) ([]models.Transaction, error) {
				requested = period
				return []models.Transaction{}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "GET", "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !requested.Valid() {
			t.Errorf("expected a valid default period, got %+v", requested)
		}
	})
}

func TestTransactionHandler_GetPeriodSummary(t *testing.T) {
	txSvc := &mockTransactionService{
		periodSummaryFn: func(period ledger.Period) (ledger.Summary, error) {
			return ledger.Summary{TotalIncome: 40000, TotalExpense: 25000, Balance: 15000}, nil
		},
	}
	handler := NewTransactionHandler(txSvc)
	r := setupTransactionRouter(handler)

	rec := doRequest(r, "GET", "/transactions/summary?year=2025&month=3", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["balance"] != float64(15000) {
		t.Errorf("expected balance 15000, got %v", summary["balance"])
	}
}

func TestTransactionHandler_GetCategories(t *testing.T) {
	handler := NewTransactionHandler(&mockTransactionService{})
	r := setupTransactionRouter(handler)

	rec := doRequest(r, "GET", "/transactions/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	income := result["income"].([]interface{})
	expense := result["expense"].([]interface{})
	if len(income) != len(ledger.IncomeCategories) {
		t.Errorf("expected %d income categories, got %d", len(ledger.IncomeCategories), len(income))
	}
	if len(expense) != len(ledger.ExpenseCategories) {
		t.Errorf("expected %d expense categories, got %d", len(ledger.ExpenseCategories), len(expense))
	}
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createFromDraftFn: func(userID string, draft ledger.Draft) (*models.Transaction, error) {
				entry, err := draft.Validate()
				if err != nil {
					return nil, err
				}
				return &models.Transaction{
					Type:        entry.Type,
					Amount:      entry.Amount,
					Description: entry.Description,
					Category:    entry.Category,
					Date:        entry.Date,
					CreatedBy:   userID,
				}, nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":"150,50","description":"Conserto de celular","category":"Conserto","date":"2025-03-15"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		tx := result["transaction"].(map[string]interface{})
		if tx["amount"] != float64(15050) {
			t.Errorf("expected amount 15050, got %v", tx["amount"])
		}
		if tx["created_by"] != testUserID {
			t.Errorf("expected created_by %s, got %v", testUserID, tx["created_by"])
		}
	})

	t.Run("surfaces draft validation errors", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createFromDraftFn: func(userID string, draft ledger.Draft) (*models.Transaction, error) {
				return nil, apperrors.ErrMissingDescription
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions",
			`{"type":"income","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MISSING_DESCRIPTION")
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "POST", "/transactions", `{"type":"transfer","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		txSvc := &mockTransactionService{
			updateFromDraftFn: func(userID, id string, draft ledger.Draft) (*models.Transaction, error) {
				return nil, apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/"+testUserID,
			`{"type":"income","amount":"10","description":"x","category":"Conserto","date":"2025-03-01"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 400 for malformed id", func(t *testing.T) {
		handler := NewTransactionHandler(&mockTransactionService{})
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "PUT", "/transactions/not-a-uuid",
			`{"type":"income","amount":"10","description":"x","category":"Conserto","date":"2025-03-01"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var deletedID string
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(id string) error {
				deletedID = id
				return nil
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/"+testUserID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if deletedID != testUserID {
			t.Errorf("expected delete of %s, got %s", testUserID, deletedID)
		}
	})

	t.Run("returns 404 for unknown transaction", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(id string) error {
				return apperrors.ErrTransactionNotFound
			},
		}
		handler := NewTransactionHandler(txSvc)
		r := setupTransactionRouter(handler)

		rec := doRequest(r, "DELETE", "/transactions/"+testUserID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
