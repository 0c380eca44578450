package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type UnitRepository interface {
	Create(ctx context.Context, u *models.Unit) error
	CreateMany(ctx context.Context, list []models.Unit) error
	GetByID(ctx context.Context, id string) (*models.Unit, error)
	List(ctx context.Context) ([]*models.Unit, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.Unit, error)
	Update(ctx context.Context, id string, mutate func(*models.Unit) error) (*models.Unit, error)
}

type unitRepo struct {
	*BaseMemRepo[models.Unit]
	db *MemStore
}

func NewUnitRepository(db *MemStore) UnitRepository {
	return &unitRepo{BaseMemRepo: db.units, db: db}
}

func (r *unitRepo) Create(ctx context.Context, u *models.Unit) error {
	stored, err := r.Insert(ctx, func(int) (models.Unit, error) {
		next := *u
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
	*u = stored
	return nil
}

func (r *unitRepo) CreateMany(ctx context.Context, list []models.Unit) error {
	for i := range list {
		if err := r.Create(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *unitRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.Unit, error) {
	return r.ListWhere(ctx, func(u *models.Unit) bool { return u.PropertyID == propID })
}

func (r *unitRepo) Update(ctx context.Context, id string, mutate func(*models.Unit) error) (*models.Unit, error) {
	return r.UpdateWith(ctx, id, func(u *models.Unit) error {
		createdAt := u.CreatedAt
		if err := mutate(u); err != nil {
			return err
		}
		u.ID, u.CreatedAt = id, createdAt
		return nil
	})
}
