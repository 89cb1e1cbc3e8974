package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Validation failures are rejected before any store access, so a nil store
// is enough for these cases.

func TestAccountServiceRejectsEmptyAccountNumber(t *testing.T) {
	svc := NewAccountService(nil, discardLogger())

	_, err := svc.GetAccount("")
	assert.Equal(t, errors.ErrInvalidAccount, err)

	err = svc.AddAccount(&domain.Account{AccountNo: "", BankName: "BankX", HolderName: "Alice"})
	assert.Equal(t, errors.ErrInvalidAccount, err)

	err = svc.UpdateAccount(&domain.Account{AccountNo: ""})
	assert.Equal(t, errors.ErrInvalidAccount, err)

	err = svc.RemoveAccount("")
	assert.Equal(t, errors.ErrInvalidAccount, err)

	err = svc.ApplyTransactionEffect("", domain.Income, decimal.NewFromInt(10))
	assert.Equal(t, errors.ErrInvalidAccount, err)
}

func TestAccountServiceRejectsNegativeAmounts(t *testing.T) {
	svc := NewAccountService(nil, discardLogger())

	err := svc.AddAccount(&domain.Account{
		AccountNo: "AC1",
		Balance:   decimal.NewFromInt(-1),
	})
	assert.Equal(t, errors.ErrInvalidAmount, err)

	// The full-overwrite path enforces the same floor as AddAccount
	err = svc.UpdateAccount(&domain.Account{
		AccountNo: "AC1",
		Balance:   decimal.NewFromInt(-1),
	})
	assert.Equal(t, errors.ErrInvalidAmount, err)

	err = svc.ApplyTransactionEffect("AC1", domain.Expense, decimal.NewFromInt(-5))
	assert.Equal(t, errors.ErrInvalidAmount, err)
}

func TestApplyTransactionEffectRejectsUnknownExpenseType(t *testing.T) {
	svc := NewAccountService(nil, discardLogger())

	err := svc.ApplyTransactionEffect("AC1", domain.ExpenseType("REFUND"), decimal.NewFromInt(5))
	if assert.Error(t, err) {
		appErr, ok := err.(*errors.AppError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.InvalidInput, appErr.Code)
		}
	}
}

func TestTransactionServiceRejectsInvalidInput(t *testing.T) {
	svc := NewTransactionService(nil, discardLogger())
	today := time.Now()

	_, err := svc.LogTransaction(today, "", domain.Income, decimal.NewFromInt(10))
	assert.Equal(t, errors.ErrInvalidAccount, err)

	_, err = svc.RecordTransaction(today, "", domain.Expense, decimal.NewFromInt(10))
	assert.Equal(t, errors.ErrInvalidAccount, err)

	_, err = svc.LogTransaction(today, "AC1", domain.ExpenseType("REFUND"), decimal.NewFromInt(10))
	if assert.Error(t, err) {
		appErr, ok := err.(*errors.AppError)
		if assert.True(t, ok) {
			assert.Equal(t, errors.InvalidInput, appErr.Code)
		}
	}

	_, err = svc.LogTransaction(today, "AC1", domain.Income, decimal.NewFromInt(-1))
	assert.Equal(t, errors.ErrInvalidAmount, err)
}

func TestListTransactionsNonPositiveLimit(t *testing.T) {
	svc := NewTransactionService(nil, discardLogger())

	for _, limit := range []int{0, -1, -100} {
		transactions, err := svc.ListTransactions(limit)
		assert.NoError(t, err, "limit %d", limit)
		assert.Empty(t, transactions, "limit %d", limit)
	}
}
