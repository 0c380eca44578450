package seeding

import (
	"context"
	"fmt"

	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// Repositories is the set of stores SeedFixtures writes to.
type Repositories struct {
	Users              repositories.UserRepository
	Companies          repositories.CompanyRepository
	Properties         repositories.PropertyRepository
	Units              repositories.UnitRepository
	MaintenanceTickets repositories.MaintenanceTicketRepository
	Inspections        repositories.InspectionRepository
	Transactions       repositories.TransactionRepository
	ComplianceItems    repositories.ComplianceItemRepository
	Communications     repositories.CommunicationRepository
}

type creator[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, v *T) error
}

// SeedFixtures inserts every fixture whose id is not already stored, so it
// is safe to call more than once.
func SeedFixtures(ctx context.Context, repos Repositories, fx *Fixtures) error {
	users := make([]models.User, 0, len(fx.Users))
	for _, uf := range fx.Users {
		hash, err := utils.HashPassword(uf.Password)
		if err != nil {
			return fmt.Errorf("hash password for fixture user %s: %w", uf.ID, err)
		}
		u := uf.User
		u.PasswordHash = hash
		users = append(users, u)
	}

	if err := seedCollection[models.User](ctx, "users", repos.Users, users); err != nil {
		return err
	}
	if err := seedCollection[models.Company](ctx, "companies", repos.Companies, fx.Companies); err != nil {
		return err
	}
	if err := seedCollection[models.Property](ctx, "properties", repos.Properties, fx.Properties); err != nil {
		return err
	}
	if err := seedCollection[models.Unit](ctx, "units", repos.Units, fx.Units); err != nil {
		return err
	}
	if err := seedCollection[models.MaintenanceTicket](ctx, "maintenance tickets", repos.MaintenanceTickets, fx.MaintenanceTickets); err != nil {
		return err
	}
	if err := seedCollection[models.Inspection](ctx, "inspections", repos.Inspections, fx.Inspections); err != nil {
		return err
	}
	if err := seedCollection[models.Transaction](ctx, "transactions", repos.Transactions, fx.Transactions); err != nil {
		return err
	}
	if err := seedCollection[models.ComplianceItem](ctx, "compliance items", repos.ComplianceItems, fx.ComplianceItems); err != nil {
		return err
	}
	return seedCollection[models.Communication](ctx, "communications", repos.Communications, fx.Communications)
}

func seedCollection[T interface{ GetID() string }](
	ctx context.Context,
	name string,
	repo creator[T],
	items []T,
) error {
	created := 0
	for i := range items {
		item := items[i]
		existing, err := repo.GetByID(ctx, item.GetID())
		if err != nil {
			return fmt.Errorf("check existing %s %s: %w", name, item.GetID(), err)
		}
		if existing != nil {
			utils.Logger.Debugf("seeding: %s id=%s already present; skipping", name, item.GetID())
			continue
		}
		if err := repo.Create(ctx, &item); err != nil {
			return fmt.Errorf("create %s %s: %w", name, item.GetID(), err)
		}
		created++
	}
	utils.Logger.Infof("seeding: created %d %s", created, name)
	return nil
}
