package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
	"expense-manager/internal/repository"
)

type AccountService struct {
	store  *repository.Store
	logger *slog.Logger
}

func NewAccountService(store *repository.Store, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  store,
		logger: logger,
	}
}

func (s *AccountService) ListAccountNumbers() ([]string, error) {
	return s.store.Accounts().ListAccountNumbers()
}

func (s *AccountService) ListAccounts() ([]domain.Account, error) {
	return s.store.Accounts().ListAccounts()
}

func (s *AccountService) GetAccount(accountNo string) (*domain.Account, error) {
	if accountNo == "" {
		return nil, errors.ErrInvalidAccount
	}
	return s.store.Accounts().GetAccount(accountNo)
}

func (s *AccountService) AddAccount(account *domain.Account) error {
	s.logger.Info("Creating account", "account_no", account.AccountNo, "bank_name", account.BankName)

	if account.AccountNo == "" {
		return errors.ErrInvalidAccount
	}
	if account.Balance.IsNegative() {
		return errors.ErrInvalidAmount
	}

	return s.store.Accounts().CreateAccount(account)
}

func (s *AccountService) UpdateAccount(account *domain.Account) error {
	s.logger.Info("Updating account", "account_no", account.AccountNo)

	if account.AccountNo == "" {
		return errors.ErrInvalidAccount
	}
	// The overwrite path enforces the same floor as AddAccount, so a full
	// replace can never smuggle in a negative balance.
	if account.Balance.IsNegative() {
		return errors.ErrInvalidAmount
	}

	return s.store.Accounts().UpdateAccount(account)
}

func (s *AccountService) RemoveAccount(accountNo string) error {
	s.logger.Info("Removing account", "account_no", accountNo)

	if accountNo == "" {
		return errors.ErrInvalidAccount
	}

	return s.store.Accounts().DeleteAccount(accountNo)
}

// ApplyTransactionEffect adjusts an account's balance by a transaction's
// amount: INCOME adds, EXPENSE subtracts. The read, the non-negative check
// and the write run inside one store transaction, so the account is either
// updated to the new balance or left untouched. A result below zero fails
// with insufficient_funds.
func (s *AccountService) ApplyTransactionEffect(accountNo string, expenseType domain.ExpenseType, amount decimal.Decimal) error {
	s.logger.Info("Applying transaction effect",
		"account_no", accountNo,
		"expense_type", expenseType,
		"amount", amount)

	if accountNo == "" {
		return errors.ErrInvalidAccount
	}
	if expenseType != domain.Income && expenseType != domain.Expense {
		return errors.NewAppErrorf(errors.InvalidInput, "unknown expense type %q", expenseType)
	}
	if amount.IsNegative() {
		return errors.ErrInvalidAmount
	}

	return s.store.WithTransaction(func(txStore *repository.Store) error {
		return applyEffect(txStore, accountNo, expenseType, amount)
	})
}

// applyEffect runs the balance protocol against whatever executor the given
// store is bound to, so the composite record operation can reuse it inside
// its own transaction.
func applyEffect(store *repository.Store, accountNo string, expenseType domain.ExpenseType, amount decimal.Decimal) error {
	accounts := store.Accounts()

	account, err := accounts.GetAccount(accountNo)
	if err != nil {
		return err
	}

	var newBalance decimal.Decimal
	switch expenseType {
	case domain.Income:
		newBalance = account.Balance.Add(amount)
	case domain.Expense:
		newBalance = account.Balance.Sub(amount)
	default:
		return errors.NewAppErrorf(errors.InvalidInput, "unknown expense type %q", expenseType)
	}

	if newBalance.IsNegative() {
		return errors.ErrInsufficientFunds
	}

	account.Balance = newBalance
	return accounts.UpdateAccount(account)
}
