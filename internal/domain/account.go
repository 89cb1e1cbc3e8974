package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a balance-bearing record identified by its account number.
// The number is immutable after creation; everything else can be overwritten.
type Account struct {
	AccountNo  string          `json:"account_no"`
	BankName   string          `json:"bank_name"`
	HolderName string          `json:"account_holder_name"`
	Balance    decimal.Decimal `json:"balance"`
}

type AccountRepository interface {
	ListAccountNumbers() ([]string, error)
	ListAccounts() ([]Account, error)
	GetAccount(accountNo string) (*Account, error)
	CreateAccount(account *Account) error
	UpdateAccount(account *Account) error
	DeleteAccount(accountNo string) error
}
