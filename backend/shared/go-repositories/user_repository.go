package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
)

/* ───────────── public interface ───────────── */

type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, mutate func(*models.User) error) (*models.User, error)
}

/* ───────────── implementation ───────────── */

type userRepo struct {
	*BaseMemRepo[models.User]
	db *MemStore
}

func NewUserRepository(db *MemStore) UserRepository {
	return &userRepo{BaseMemRepo: db.users, db: db}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	stored, err := r.Insert(ctx, func(int) (models.User, error) {
		next := *u
		if next.ID == "" {
			next.ID = uuid.NewString()
		}
		if r.emailTakenLocked(next.Email) {
			return models.User{}, ErrDuplicateEmail
		}
		now := r.db.now()
		if next.CreatedAt.IsZero() {
			next.CreatedAt = now
		}
		next.UpdatedAt = now
		next.ApplyDefaults()
		return next, nil
	})
	if err != nil {
		return err
	}
	*u = stored
	return nil
}

// GetByEmail matches case-insensitively. Returns nil, nil when absent.
func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var found *models.User
	r.scan(func(u models.User) bool {
		if strings.EqualFold(u.Email, email) {
			found = &u
			return false
		}
		return true
	})
	return found, nil
}

func (r *userRepo) Update(ctx context.Context, id string, mutate func(*models.User) error) (*models.User, error) {
	return r.UpdateWith(ctx, id, func(u *models.User) error {
		createdAt := u.CreatedAt
		if err := mutate(u); err != nil {
			return err
		}
		u.ID = id
		u.CreatedAt = createdAt
		u.UpdatedAt = r.db.now()
		return nil
	})
}

// emailTakenLocked must be called with the users write lock held.
func (r *userRepo) emailTakenLocked(email string) bool {
	for _, existing := range r.items {
		if strings.EqualFold(existing.Email, email) {
			return true
		}
	}
	return false
}
