package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateFormat is the textual form transaction dates take in the store.
// Day-month-year granularity only; time of day is never preserved.
const DateFormat = "2006-01-02"

// Transaction is one immutable entry of the expense log. The sign of the
// balance effect is implied by ExpenseType; Amount is always the magnitude.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	AccountNo   string          `json:"account_no"`
	ExpenseType ExpenseType     `json:"expense_type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FormatDate renders a date in the store's textual form, dropping any
// time-of-day component.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate reads a stored date string back into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

type TransactionRepository interface {
	CreateTransaction(tx *Transaction) error
	ListTransactions() ([]Transaction, error)
	ListTransactionsLimit(limit int) ([]Transaction, error)
}
