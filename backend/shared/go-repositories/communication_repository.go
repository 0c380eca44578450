package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

type CommunicationRepository interface {
	Create(ctx context.Context, c *models.Communication) error
	GetByID(ctx context.Context, id string) (*models.Communication, error)
	List(ctx context.Context) ([]*models.Communication, error)
	// ListByUserID returns messages the user sent or received.
	ListByUserID(ctx context.Context, userID string) ([]*models.Communication, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.Communication, error)
	Update(ctx context.Context, id string, mutate func(*models.Communication) error) (*models.Communication, error)
}

type communicationRepo struct {
	*BaseMemRepo[models.Communication]
	db *MemStore
}

func NewCommunicationRepository(db *MemStore) CommunicationRepository {
	return &communicationRepo{BaseMemRepo: db.communications, db: db}
}

func (r *communicationRepo) Create(ctx context.Context, c *models.Communication) error {
	stored, err := r.Insert(ctx, func(int) (models.Communication, error) {
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

func (r *communicationRepo) ListByUserID(ctx context.Context, userID string) ([]*models.Communication, error) {
	return r.ListWhere(ctx, func(c *models.Communication) bool { return c.Involves(userID) })
}

func (r *communicationRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.Communication, error) {
	return r.ListWhere(ctx, func(c *models.Communication) bool {
		return c.PropertyID != nil && *c.PropertyID == propID
	})
}

func (r *communicationRepo) Update(
	ctx context.Context,
	id string,
	mutate func(*models.Communication) error,
) (*models.Communication, error) {
	return r.UpdateWith(ctx, id, func(c *models.Communication) error {
		createdAt := c.CreatedAt
		if err := mutate(c); err != nil {
			return err
		}
		c.ID, c.CreatedAt = id, createdAt
		return nil
	})
}
