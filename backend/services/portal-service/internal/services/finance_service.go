package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// FinanceService records levy, rent and other transactions. It never moves
// money.
type FinanceService struct {
	txns repositories.TransactionRepository
}

func NewFinanceService(txns repositories.TransactionRepository) *FinanceService {
	return &FinanceService{txns: txns}
}

func (s *FinanceService) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	list, err := s.txns.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch transactions", err)
	}
	return list, nil
}

func (s *FinanceService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	t, err := s.txns.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch transaction", err)
	}
	return t, nil
}

func (s *FinanceService) CreateTransaction(ctx context.Context, req dtos.CreateTransactionRequest) (*models.Transaction, error) {
	t := &models.Transaction{
		PropertyID:    req.PropertyID,
		UnitID:        req.UnitID,
		Type:          req.Type,
		Category:      req.Category,
		Amount:        req.Amount,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		Status:        req.Status,
		DueDate:       req.DueDate,
		PaidDate:      req.PaidDate,
	}
	if err := s.txns.Create(ctx, t); err != nil {
		return nil, storeError("transaction", err)
	}
	return t, nil
}
