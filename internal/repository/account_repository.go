package repository

import (
	"database/sql"
	"log/slog"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
)

type accountRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewAccountRepository(db SQLExecutor, logger *slog.Logger) domain.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) ListAccountNumbers() ([]string, error) {
	query := `
		SELECT account_no FROM accounts ORDER BY account_no
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list account numbers", "error", err)
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to list account numbers").WithDetails(err.Error())
	}
	defer rows.Close()

	numbers := []string{}
	for rows.Next() {
		var accountNo string
		if err := rows.Scan(&accountNo); err != nil {
			return nil, errors.NewAppError(errors.StoreUnavailable, "failed to scan account number").WithDetails(err.Error())
		}
		numbers = append(numbers, accountNo)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to read account numbers").WithDetails(err.Error())
	}

	return numbers, nil
}

func (r *accountRepository) ListAccounts() ([]domain.Account, error) {
	query := `
		SELECT account_no, bank_name, holder_name, balance
		FROM accounts ORDER BY account_no
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list accounts", "error", err)
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to list accounts").WithDetails(err.Error())
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccountRow(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to read accounts").WithDetails(err.Error())
	}

	return accounts, nil
}

func (r *accountRepository) GetAccount(accountNo string) (*domain.Account, error) {
	query := `
		SELECT account_no, bank_name, holder_name, balance
		FROM accounts WHERE account_no = $1
	`

	var account domain.Account
	var balanceStr string

	err := r.db.QueryRow(query, accountNo).Scan(
		&account.AccountNo,
		&account.BankName,
		&account.HolderName,
		&balanceStr,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_no", accountNo)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to get account", "account_no", accountNo, "error", err)
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to get account").WithDetails(err.Error())
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		r.logger.Error("Failed to parse balance", "account_no", accountNo, "balance_str", balanceStr, "error", err)
		return nil, errors.NewAppError(errors.StoreCorruption, "failed to parse balance").WithDetails(err.Error())
	}

	account.Balance = balance
	return &account, nil
}

func (r *accountRepository) CreateAccount(account *domain.Account) error {
	query := `
		INSERT INTO accounts (account_no, bank_name, holder_name, balance)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(
		query,
		account.AccountNo,
		account.BankName,
		account.HolderName,
		account.Balance.String(),
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate account creation attempt", "account_no", account.AccountNo)
				return errors.ErrDuplicateAccount
			}
		}
		r.logger.Error("Failed to create account", "account_no", account.AccountNo, "error", err)
		return errors.NewAppError(errors.StoreUnavailable, "failed to create account").WithDetails(err.Error())
	}

	r.logger.Info("Account created successfully", "account_no", account.AccountNo)
	return nil
}

func (r *accountRepository) UpdateAccount(account *domain.Account) error {
	query := `
		UPDATE accounts
		SET bank_name = $1, holder_name = $2, balance = $3
		WHERE account_no = $4
	`

	result, err := r.db.Exec(
		query,
		account.BankName,
		account.HolderName,
		account.Balance.String(),
		account.AccountNo,
	)
	if err != nil {
		r.logger.Error("Failed to update account", "account_no", account.AccountNo, "error", err)
		return errors.NewAppError(errors.StoreUnavailable, "failed to update account").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.StoreUnavailable, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No account found to update", "account_no", account.AccountNo)
		return errors.ErrAccountNotFound
	}

	r.logger.Info("Account updated", "account_no", account.AccountNo, "balance", account.Balance)
	return nil
}

// DeleteAccount removes the row whose account number is exactly accountNo.
// The predicate is parameterized so adversarial numbers never widen the match.
// Deleting a number with no row is a no-op, not an error.
func (r *accountRepository) DeleteAccount(accountNo string) error {
	query := `
		DELETE FROM accounts WHERE account_no = $1
	`

	result, err := r.db.Exec(query, accountNo)
	if err != nil {
		r.logger.Error("Failed to delete account", "account_no", accountNo, "error", err)
		return errors.NewAppError(errors.StoreUnavailable, "failed to delete account").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.StoreUnavailable, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No account found to delete", "account_no", accountNo)
		return nil
	}

	r.logger.Info("Account deleted", "account_no", accountNo)
	return nil
}

func scanAccountRow(rows *sql.Rows) (*domain.Account, error) {
	var account domain.Account
	var balanceStr string

	if err := rows.Scan(
		&account.AccountNo,
		&account.BankName,
		&account.HolderName,
		&balanceStr,
	); err != nil {
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to scan account").WithDetails(err.Error())
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, errors.NewAppError(errors.StoreCorruption, "failed to parse balance").WithDetails(err.Error())
	}

	account.Balance = balance
	return &account, nil
}
