package app

import (
	"context"
	"fmt"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/config"
	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/services"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-seeding"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// App holds the store and everything wired on top of it.
type App struct {
	Config   *config.Config
	Store    *repositories.MemStore
	Repos    seeding.Repositories
	Fixtures *seeding.Fixtures

	AuthService          services.AuthService
	UserService          *services.UserService
	CompanyService       *services.CompanyService
	PropertyService      *services.PropertyService
	MaintenanceService   *services.MaintenanceService
	InspectionService    *services.InspectionService
	FinanceService       *services.FinanceService
	ComplianceService    *services.ComplianceService
	CommunicationService *services.CommunicationService
	DashboardService     *services.DashboardService
	DemoRequestService   services.DemoRequestService
}

// NewApp builds the store, seeds it when LDFlag_SeedDbWithFixtures is set,
// and constructs the services.
func NewApp(cfg *config.Config, storeOpts ...repositories.MemStoreOption) (*App, error) {
	utils.Logger.Infof("Initializing %s App", cfg.AppName)

	store := repositories.NewMemStore(storeOpts...)
	repos := seeding.Repositories{
		Users:              repositories.NewUserRepository(store),
		Companies:          repositories.NewCompanyRepository(store),
		Properties:         repositories.NewPropertyRepository(store),
		Units:              repositories.NewUnitRepository(store),
		MaintenanceTickets: repositories.NewMaintenanceTicketRepository(store),
		Inspections:        repositories.NewInspectionRepository(store),
		Transactions:       repositories.NewTransactionRepository(store),
		ComplianceItems:    repositories.NewComplianceItemRepository(store),
		Communications:     repositories.NewCommunicationRepository(store),
	}

	fixtures, err := seeding.LoadFixtures()
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	if cfg.LDFlag_SeedDbWithFixtures {
		if err := seeding.SeedFixtures(context.Background(), repos, fixtures); err != nil {
			return nil, fmt.Errorf("seed fixtures: %w", err)
		}
	} else {
		utils.Logger.Info("Fixture seeding disabled; starting with an empty store.")
	}

	return &App{
		Config:   cfg,
		Store:    store,
		Repos:    repos,
		Fixtures: fixtures,

		AuthService:    services.NewAuthService(repos.Users),
		UserService:    services.NewUserService(repos.Users),
		CompanyService: services.NewCompanyService(repos.Companies, repos.Properties),
		PropertyService: services.NewPropertyService(
			repos.Properties, repos.Units, repos.MaintenanceTickets,
			repos.Inspections, repos.Transactions, repos.ComplianceItems,
		),
		MaintenanceService:   services.NewMaintenanceService(repos.MaintenanceTickets, store.Now),
		InspectionService:    services.NewInspectionService(repos.Inspections),
		FinanceService:       services.NewFinanceService(repos.Transactions),
		ComplianceService:    services.NewComplianceService(repos.ComplianceItems),
		CommunicationService: services.NewCommunicationService(repos.Communications),
		DashboardService: services.NewDashboardService(
			repos.Properties, repos.MaintenanceTickets, repos.Transactions,
			fixtures.RecentActivity, fixtures.UpcomingInspections,
		),
		DemoRequestService: services.NewDemoRequestService(),
	}, nil
}

// Close is a no-op for the in-memory store but included for consistency.
func (a *App) Close() {
	utils.Logger.Infof("%s app shutting down.", a.Config.AppName)
}
