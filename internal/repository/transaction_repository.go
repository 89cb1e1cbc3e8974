package repository

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
)

type transactionRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransactionRepository(db SQLExecutor, logger *slog.Logger) domain.TransactionRepository {
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transactionRepository) CreateTransaction(tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_no, date, expense_type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()

	_, err := r.db.Exec(
		query,
		tx.ID,
		tx.AccountNo,
		domain.FormatDate(tx.Date),
		tx.ExpenseType.String(),
		tx.Amount.String(),
		now,
	)

	if err != nil {
		r.logger.Error("Failed to log transaction",
			"account_no", tx.AccountNo,
			"expense_type", tx.ExpenseType,
			"amount", tx.Amount,
			"error", err)
		return errors.NewAppError(errors.StoreUnavailable, "failed to log transaction").WithDetails(err.Error())
	}

	tx.CreatedAt = now
	r.logger.Info("Transaction logged", "transaction_id", tx.ID, "account_no", tx.AccountNo)
	return nil
}

// ListTransactions returns the whole log, oldest entry first.
func (r *transactionRepository) ListTransactions() ([]domain.Transaction, error) {
	query := `
		SELECT id, account_no, date, expense_type, amount, created_at
		FROM transactions ORDER BY created_at, id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list transactions", "error", err)
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to list transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	return r.collectTransactions(rows)
}

// ListTransactionsLimit returns the first limit entries under the same
// ordering as ListTransactions. Callers guarantee limit > 0.
func (r *transactionRepository) ListTransactionsLimit(limit int) ([]domain.Transaction, error) {
	query := `
		SELECT id, account_no, date, expense_type, amount, created_at
		FROM transactions ORDER BY created_at, id LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		r.logger.Error("Failed to list transactions", "limit", limit, "error", err)
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to list transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	return r.collectTransactions(rows)
}

func (r *transactionRepository) collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}

	for rows.Next() {
		var tx domain.Transaction
		var dateStr, typeStr, amountStr string

		if err := rows.Scan(
			&tx.ID,
			&tx.AccountNo,
			&dateStr,
			&typeStr,
			&amountStr,
			&tx.CreatedAt,
		); err != nil {
			return nil, errors.NewAppError(errors.StoreUnavailable, "failed to scan transaction").WithDetails(err.Error())
		}

		date, err := domain.ParseDate(dateStr)
		if err != nil {
			r.logger.Error("Malformed stored date", "transaction_id", tx.ID, "date_str", dateStr, "error", err)
			return nil, errors.NewAppError(errors.StoreCorruption, "failed to parse transaction date").WithDetails(err.Error())
		}
		tx.Date = date

		expenseType, err := domain.ParseExpenseType(typeStr)
		if err != nil {
			r.logger.Error("Malformed stored expense type", "transaction_id", tx.ID, "expense_type_str", typeStr, "error", err)
			return nil, errors.NewAppError(errors.StoreCorruption, "failed to parse expense type").WithDetails(err.Error())
		}
		tx.ExpenseType = expenseType

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, errors.NewAppError(errors.StoreCorruption, "failed to parse amount").WithDetails(err.Error())
		}
		tx.Amount = amount

		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.StoreUnavailable, "failed to read transactions").WithDetails(err.Error())
	}

	return transactions, nil
}
