package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
	"expense-manager/internal/service"

	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

type RecordTransactionRequest struct {
	Date        string `json:"date,omitempty"`
	AccountNo   string `json:"account_no"`
	ExpenseType string `json:"expense_type"`
	Amount      string `json:"amount"`
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	AccountNo   string `json:"account_no"`
	ExpenseType string `json:"expense_type"`
	Amount      string `json:"amount"`
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID.String(),
		Date:        domain.FormatDate(tx.Date),
		AccountNo:   tx.AccountNo,
		ExpenseType: tx.ExpenseType.String(),
		Amount:      tx.Amount.String(),
	}
}

// RecordTransaction applies the balance effect and appends the log entry in
// one atomic call. The date defaults to today when omitted.
func (h *TransactionHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			writeError(w, errors.NewAppErrorf(errors.InvalidInput, "invalid date format, expected %s", domain.DateFormat))
			return
		}
		date = parsed
	}

	expenseType, err := domain.ParseExpenseType(req.ExpenseType)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "expense_type must be INCOME or EXPENSE"))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid amount format").WithDetails(err.Error()))
		return
	}

	tx, err := h.transactionService.RecordTransaction(date, req.AccountNo, expenseType, amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

// ListTransactions returns the log oldest-first, optionally truncated by the
// limit query parameter.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var (
		transactions []domain.Transaction
		err          error
	)

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, parseErr := strconv.Atoi(limitStr)
		if parseErr != nil {
			writeError(w, errors.NewAppError(errors.InvalidInput, "limit must be an integer"))
			return
		}
		transactions, err = h.transactionService.ListTransactions(limit)
	} else {
		transactions, err = h.transactionService.ListAllTransactions()
	}

	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, toTransactionResponse(&transactions[i]))
	}

	writeJSON(w, http.StatusOK, responses)
}
