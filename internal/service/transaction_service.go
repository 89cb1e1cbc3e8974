package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
	"expense-manager/internal/repository"
)

type TransactionService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewTransactionService(store *repository.Store, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

// LogTransaction appends one entry to the log. It does not touch the
// account's balance; RecordTransaction does both under one transaction.
func (s *TransactionService) LogTransaction(date time.Time, accountNo string, expenseType domain.ExpenseType, amount decimal.Decimal) (*domain.Transaction, error) {
	s.logger.Info("Logging transaction",
		"account_no", accountNo,
		"expense_type", expenseType,
		"amount", amount)

	tx, err := s.buildTransaction(date, accountNo, expenseType, amount)
	if err != nil {
		return nil, err
	}

	if err := s.store.Transactions().CreateTransaction(tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// RecordTransaction applies the balance effect and appends the log entry as
// a single all-or-nothing step. A rejected balance update (insufficient
// funds, unknown account) leaves the log untouched, and a failed append
// rolls the balance back.
func (s *TransactionService) RecordTransaction(date time.Time, accountNo string, expenseType domain.ExpenseType, amount decimal.Decimal) (*domain.Transaction, error) {
	s.logger.Info("Recording transaction",
		"account_no", accountNo,
		"expense_type", expenseType,
		"amount", amount)

	tx, err := s.buildTransaction(date, accountNo, expenseType, amount)
	if err != nil {
		return nil, err
	}

	err = s.store.WithTransaction(func(txStore *repository.Store) error {
		if err := applyEffect(txStore, accountNo, expenseType, amount); err != nil {
			return err
		}
		return txStore.Transactions().CreateTransaction(tx)
	})
	if err != nil {
		s.logger.Error("Failed to record transaction", "account_no", accountNo, "error", err)
		return nil, err
	}

	s.logger.Info("Transaction recorded", "transaction_id", tx.ID, "account_no", accountNo)
	return tx, nil
}

func (s *TransactionService) ListAllTransactions() ([]domain.Transaction, error) {
	return s.store.Transactions().ListTransactions()
}

// ListTransactions returns the first limit entries of the log. A limit of
// zero or below yields an empty log; a limit beyond the log size yields the
// whole log.
func (s *TransactionService) ListTransactions(limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		return []domain.Transaction{}, nil
	}
	return s.store.Transactions().ListTransactionsLimit(limit)
}

func (s *TransactionService) buildTransaction(date time.Time, accountNo string, expenseType domain.ExpenseType, amount decimal.Decimal) (*domain.Transaction, error) {
	if accountNo == "" {
		return nil, errors.ErrInvalidAccount
	}
	if expenseType != domain.Income && expenseType != domain.Expense {
		return nil, errors.NewAppErrorf(errors.InvalidInput, "unknown expense type %q", expenseType)
	}
	if amount.IsNegative() {
		return nil, errors.ErrInvalidAmount
	}

	return &domain.Transaction{
		ID:          uuid.New(),
		Date:        date,
		AccountNo:   accountNo,
		ExpenseType: expenseType,
		Amount:      amount,
	}, nil
}
