package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.Transaction, error)
	Update(ctx context.Context, id string, mutate func(*models.Transaction) error) (*models.Transaction, error)
}

type transactionRepo struct {
	*BaseMemRepo[models.Transaction]
	db *MemStore
}

func NewTransactionRepository(db *MemStore) TransactionRepository {
	return &transactionRepo{BaseMemRepo: db.transactions, db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	stored, err := r.Insert(ctx, func(int) (models.Transaction, error) {
		next := *t
		if next.ID == "" {
			next.ID = uuid.NewString()
		}
		if next.CreatedAt.IsZero() {
			next.CreatedAt = r.db.now()
		}
		next.ApplyDefaults()
		return next, nil
	})
	if err != nil {
		return err
	}
	*t = stored
	return nil
}

// ListByPropertyID skips transactions that are not tied to a property.
func (r *transactionRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.Transaction, error) {
	return r.ListWhere(ctx, func(t *models.Transaction) bool {
		return t.PropertyID != nil && *t.PropertyID == propID
	})
}

func (r *transactionRepo) Update(ctx context.Context, id string, mutate func(*models.Transaction) error) (*models.Transaction, error) {
	return r.UpdateWith(ctx, id, func(t *models.Transaction) error {
		createdAt := t.CreatedAt
		if err := mutate(t); err != nil {
			return err
		}
		t.ID, t.CreatedAt = id, createdAt
		return nil
	})
}
