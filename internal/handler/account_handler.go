package handler

import (
	"encoding/json"
	"net/http"

	"expense-manager/internal/domain"
	"expense-manager/internal/errors"
	"expense-manager/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	accountService *service.AccountService
}

func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

type AccountRequest struct {
	AccountNo  string `json:"account_no"`
	BankName   string `json:"bank_name"`
	HolderName string `json:"account_holder_name"`
	Balance    string `json:"balance"`
}

type AccountResponse struct {
	AccountNo  string `json:"account_no"`
	BankName   string `json:"bank_name"`
	HolderName string `json:"account_holder_name"`
	Balance    string `json:"balance"`
}

func toAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountNo:  account.AccountNo,
		BankName:   account.BankName,
		HolderName: account.HolderName,
		Balance:    account.Balance.String(),
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid balance format"))
		return
	}

	account := &domain.Account{
		AccountNo:  req.AccountNo,
		BankName:   req.BankName,
		HolderName: req.HolderName,
		Balance:    balance,
	}

	if err := h.accountService.AddAccount(account); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}

	writeJSON(w, http.StatusOK, responses)
}

func (h *AccountHandler) ListAccountNumbers(w http.ResponseWriter, r *http.Request) {
	numbers, err := h.accountService.ListAccountNumbers()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, numbers)
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountNo := vars["account_no"]

	account, err := h.accountService.GetAccount(accountNo)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountNo := vars["account_no"]

	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		writeError(w, errors.NewAppError(errors.InvalidAmount, "invalid balance format"))
		return
	}

	account := &domain.Account{
		AccountNo:  accountNo,
		BankName:   req.BankName,
		HolderName: req.HolderName,
		Balance:    balance,
	}

	if err := h.accountService.UpdateAccount(account); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	accountNo := vars["account_no"]

	if err := h.accountService.RemoveAccount(accountNo); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
