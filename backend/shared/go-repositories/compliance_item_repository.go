package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type ComplianceItemRepository interface {
	Create(ctx context.Context, c *models.ComplianceItem) error
	GetByID(ctx context.Context, id string) (*models.ComplianceItem, error)
	List(ctx context.Context) ([]*models.ComplianceItem, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.ComplianceItem, error)
	Update(ctx context.Context, id string, mutate func(*models.ComplianceItem) error) (*models.ComplianceItem, error)
}

type complianceItemRepo struct {
	*BaseMemRepo[models.ComplianceItem]
	db *MemStore
}

func NewComplianceItemRepository(db *MemStore) ComplianceItemRepository {
	return &complianceItemRepo{BaseMemRepo: db.compliance, db: db}
}

func (r *complianceItemRepo) Create(ctx context.Context, c *models.ComplianceItem) error {
	stored, err := r.Insert(ctx, func(int) (models.ComplianceItem, error) {
		next := *c
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
	*c = stored
	return nil
}

func (r *complianceItemRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.ComplianceItem, error) {
	return r.ListWhere(ctx, func(c *models.ComplianceItem) bool { return c.PropertyID == propID })
}

func (r *complianceItemRepo) Update(
	ctx context.Context,
	id string,
	mutate func(*models.ComplianceItem) error,
) (*models.ComplianceItem, error) {
	return r.UpdateWith(ctx, id, func(c *models.ComplianceItem) error {
		createdAt := c.CreatedAt
		if err := mutate(c); err != nil {
			return err
		}
		c.ID, c.CreatedAt = id, createdAt
		return nil
	})
}
