package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type CompanyRepository interface {
	Create(ctx context.Context, c *models.Company) error
	GetByID(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, id string, mutate func(*models.Company) error) (*models.Company, error)
}

type companyRepo struct {
	*BaseMemRepo[models.Company]
	db *MemStore
}

func NewCompanyRepository(db *MemStore) CompanyRepository {
	return &companyRepo{BaseMemRepo: db.companies, db: db}
}

func (r *companyRepo) Create(ctx context.Context, c *models.Company) error {
	stored, err := r.Insert(ctx, func(int) (models.Company, error) {
		next := *c
		if next.ID == "" {
			next.ID = uuid.NewString()
		}
		if next.CreatedAt.IsZero() {
			next.CreatedAt = r.db.now()
		}
		return next, nil
	})
	if err != nil {
		return err
	}
	*c = stored
	return nil
}

func (r *companyRepo) Update(ctx context.Context, id string, mutate func(*models.Company) error) (*models.Company, error) {
	return r.UpdateWith(ctx, id, func(c *models.Company) error {
		createdAt := c.CreatedAt
		if err := mutate(c); err != nil {
			return err
		}
		c.ID, c.CreatedAt = id, createdAt
		return nil
	})
}
