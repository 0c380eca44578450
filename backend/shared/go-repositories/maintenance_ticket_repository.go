package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

/* ───────────── public interface ───────────── */

type MaintenanceTicketRepository interface {
	// Create assigns MT-<year>-<seq> when TicketNumber is empty. seq is the
	// number of stored tickets plus one.
	Create(ctx context.Context, t *models.MaintenanceTicket) error
	GetByID(ctx context.Context, id string) (*models.MaintenanceTicket, error)
	List(ctx context.Context) ([]*models.MaintenanceTicket, error)
	ListByPropertyID(ctx context.Context, propID string) ([]*models.MaintenanceTicket, error)
	ListByStatus(ctx context.Context, statuses ...models.TicketStatusType) ([]*models.MaintenanceTicket, error)
	Update(ctx context.Context, id string, mutate func(*models.MaintenanceTicket) error) (*models.MaintenanceTicket, error)
}

/* ───────────── implementation ───────────── */

type maintenanceTicketRepo struct {
	*BaseMemRepo[models.MaintenanceTicket]
	db *MemStore
}

func NewMaintenanceTicketRepository(db *MemStore) MaintenanceTicketRepository {
	return &maintenanceTicketRepo{BaseMemRepo: db.tickets, db: db}
}

func (r *maintenanceTicketRepo) Create(ctx context.Context, t *models.MaintenanceTicket) error {
	stored, err := r.Insert(ctx, func(seq int) (models.MaintenanceTicket, error) {
		next := *t
		now := r.db.now()
		if next.ID == "" {
			next.ID = uuid.NewString()
		}
		if next.TicketNumber == "" {
			next.TicketNumber = utils.FormatTicketNumber(now.Year(), seq)
		}
		if next.CreatedAt.IsZero() {
			next.CreatedAt = now
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

func (r *maintenanceTicketRepo) ListByPropertyID(ctx context.Context, propID string) ([]*models.MaintenanceTicket, error) {
	return r.ListWhere(ctx, func(t *models.MaintenanceTicket) bool { return t.PropertyID == propID })
}

func (r *maintenanceTicketRepo) ListByStatus(
	ctx context.Context,
	statuses ...models.TicketStatusType,
) ([]*models.MaintenanceTicket, error) {
	return r.ListWhere(ctx, func(t *models.MaintenanceTicket) bool {
		for _, s := range statuses {
			if t.Status == s {
				return true
			}
		}
		return false
	})
}

// Update keeps ID, TicketNumber and CreatedAt regardless of what mutate does.
func (r *maintenanceTicketRepo) Update(
	ctx context.Context,
	id string,
	mutate func(*models.MaintenanceTicket) error,
) (*models.MaintenanceTicket, error) {
	return r.UpdateWith(ctx, id, func(t *models.MaintenanceTicket) error {
		number, createdAt := t.TicketNumber, t.CreatedAt
		if err := mutate(t); err != nil {
			return err
		}
		t.ID, t.TicketNumber, t.CreatedAt = id, number, createdAt
		return nil
	})
}
