package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type InspectionRepository interface {
	Create(ctx context.Context, i *models.Inspection) error
	GetByID(ctx context.Context, id string) (*models.Inspection, error)
	List(ctx context.Context) ([]*models.Inspection, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.Inspection, error)
	Update(ctx context.Context, id string, mutate func(*models.Inspection) error) (*models.Inspection, error)
}

type inspectionRepo struct {
	*BaseMemRepo[models.Inspection]
	db *MemStore
}

func NewInspectionRepository(db *MemStore) InspectionRepository {
	return &inspectionRepo{BaseMemRepo: db.inspections, db: db}
}

func (r *inspectionRepo) Create(ctx context.Context, i *models.Inspection) error {
	stored, err := r.Insert(ctx, func(int) (models.Inspection, error) {
		next := *i
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
	*i = stored
	return nil
}

func (r *inspectionRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.Inspection, error) {
	return r.ListWhere(ctx, func(i *models.Inspection) bool { return i.PropertyID == propID })
}

func (r *inspectionRepo) Update(ctx context.Context, id string, mutate func(*models.Inspection) error) (*models.Inspection, error) {
	return r.UpdateWith(ctx, id, func(i *models.Inspection) error {
		createdAt := i.CreatedAt
		if err := mutate(i); err != nil {
			return err
		}
		i.ID, i.CreatedAt = id, createdAt
		return nil
	})
}
