package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "assistec/internal/errors"
	"assistec/internal/ledger"
	"assistec/internal/models"
	"assistec/internal/services"
)

// TransactionHandler handles financial ledger requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionDraftRequest represents the request payload for creating or
// updating a transaction. Amount and date arrive as raw text; only the type
// is validated at binding time so the ledger's own validation order decides
// which field error is reported first.
type TransactionDraftRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      string                 `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Date        string                 `json:"date"`
	Notes       string                 `json:"notes"`
}

func (r TransactionDraftRequest) draft() ledger.Draft {
	return ledger.Draft{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}

// PeriodTransactionsResponse tags the transaction list with the period it
// was loaded for, so the client can discard responses for periods it has
// already navigated away from.
type PeriodTransactionsResponse struct {
	Period       ledger.Period        `json:"period"`
	Transactions []models.Transaction `json:"transactions"`
}

// PeriodSummaryResponse tags the summary with its period.
type PeriodSummaryResponse struct {
	Period  ledger.Period  `json:"period"`
	Summary ledger.Summary `json:"summary"`
}

// CategoriesResponse lists the valid categories per transaction type.
type CategoriesResponse struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// parsePeriodQuery reads the year and month query parameters, defaulting to
// the current month when both are absent.
func parsePeriodQuery(c *gin.Context) (ledger.Period, error) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if yearStr == "" && monthStr == "" {
		return ledger.PeriodOf(time.Now().UTC()), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return ledger.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year")
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return ledger.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month")
	}

	period := ledger.Period{Year: year, Month: month}
	if !period.Valid() {
		return ledger.Period{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return period, nil
}

// GetPeriodTransactions returns the transactions of one calendar month
// @Summary     List period transactions
// @Description Get all transactions dated within the given month, newest first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} PeriodTransactionsResponse "Period transactions"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetPeriodTransactions(c *gin.Context) {
	period, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, err := h.transactionService.ListPeriod(period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":       period,
		"transactions": transactions,
	})
}

// GetPeriodSummary returns the aggregates of one calendar month
// @Summary     Get period summary
// @Description Get income, expense and balance totals with per-category breakdowns for the given month
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} PeriodSummaryResponse "Period summary"
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/summary [get]
func (h *TransactionHandler) GetPeriodSummary(c *gin.Context) {
	period, err := parsePeriodQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.transactionService.PeriodSummary(period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":  period,
		"summary": summary,
	})
}

// GetCategories returns the fixed category sets
// @Summary     List categories
// @Description Get the valid category lists for income and expense transactions
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoriesResponse "Category sets"
// @Router      /transactions/categories [get]
func (h *TransactionHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"income":  ledger.IncomeCategories,
		"expense": ledger.ExpenseCategories,
	})
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Validate and record a new income or expense transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionDraftRequest true "Transaction draft"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateFromDraft(userID, req.draft())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Validate the draft and replace the stored transaction's fields
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                  true "Transaction ID"
// @Param       request body TransactionDraftRequest true "Transaction draft"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateFromDraft(userID, transactionID, req.draft())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
