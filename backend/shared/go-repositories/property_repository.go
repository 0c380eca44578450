package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

/* ───────────── public interface ───────────── */

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]*models.Property, error)
	Update(ctx context.Context, id string, mutate func(*models.Property) error) (*models.Property, error)
}

/* ───────────── implementation ───────────── */

type propertyRepo struct {
	*BaseMemRepo[models.Property]
	db *MemStore
}

func NewPropertyRepository(db *MemStore) PropertyRepository {
	return &propertyRepo{BaseMemRepo: db.properties, db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	stored, err := r.Insert(ctx, func(int) (models.Property, error) {
		next := *p
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
	*p = stored
	return nil
}

func (r *propertyRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*models.Property, error) {
	return r.ListWhere(ctx, func(p *models.Property) bool { return p.CompanyID == companyID })
}

func (r *propertyRepo) Update(ctx context.Context, id string, mutate func(*models.Property) error) (*models.Property, error) {
	return r.UpdateWith(ctx, id, func(p *models.Property) error {
		createdAt := p.CreatedAt
		if err := mutate(p); err != nil {
			return err
		}
		p.ID, p.CreatedAt = id, createdAt
		return nil
	})
}
