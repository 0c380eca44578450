package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
)

type TransactionController struct {
	financeService *services.FinanceService
}

func NewTransactionController(s *services.FinanceService) *TransactionController {
	return &TransactionController{financeService: s}
}

// GET /api/transactions
func (c *TransactionController) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.financeService.ListTransactions(r.Context())
	respondList(w, list, err)
}

// GET /api/transactions/{id}
func (c *TransactionController) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	t, err := c.financeService.GetTransaction(r.Context(), mux.Vars(r)["id"])
	respondRecord(w, t, err, "Transaction not found")
}

// POST /api/transactions
func (c *TransactionController) CreateTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := c.financeService.CreateTransaction(r.Context(), req)
	respondCreated(w, t, err)
}
