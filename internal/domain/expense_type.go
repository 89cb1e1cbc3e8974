package domain

import "fmt"

// ExpenseType is the direction of a transaction's effect on a balance:
// INCOME adds the amount, EXPENSE subtracts it.
type ExpenseType string

const (
	Income  ExpenseType = "INCOME"
	Expense ExpenseType = "EXPENSE"
)

// ParseExpenseType maps the stored literal back to an ExpenseType.
// Anything outside the two known variants is rejected.
func ParseExpenseType(s string) (ExpenseType, error) {
	switch ExpenseType(s) {
	case Income, Expense:
		return ExpenseType(s), nil
	}
	return "", fmt.Errorf("unknown expense type %q", s)
}

func (t ExpenseType) String() string {
	return string(t)
}
