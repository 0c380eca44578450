package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-seeding"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	utils.PasswordHashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newStore(t *testing.T, seed bool) (*repositories.MemStore, seeding.Repositories, *seeding.Fixtures) {
	t.Helper()
	db := repositories.NewMemStore(repositories.WithClock(func() time.Time { return fixedNow }))
	repos := seeding.Repositories{
		Users:              repositories.NewUserRepository(db),
		Companies:          repositories.NewCompanyRepository(db),
		Properties:         repositories.NewPropertyRepository(db),
		Units:              repositories.NewUnitRepository(db),
		MaintenanceTickets: repositories.NewMaintenanceTicketRepository(db),
		Inspections:        repositories.NewInspectionRepository(db),
		Transactions:       repositories.NewTransactionRepository(db),
		ComplianceItems:    repositories.NewComplianceItemRepository(db),
		Communications:     repositories.NewCommunicationRepository(db),
	}
	fx, err := seeding.LoadFixtures()
	require.NoError(t, err)
	if seed {
		require.NoError(t, seeding.SeedFixtures(context.Background(), repos, fx))
	}
	return db, repos, fx
}

func requireAppError(t *testing.T, err error, status int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %v", err)
	assert.Equal(t, status, appErr.StatusCode)
	return appErr
}

/* ---------- auth ---------- */

func TestLogin(t *testing.T) {
	_, repos, _ := newStore(t, true)
	svc := NewAuthService(repos.Users)
	ctx := context.Background()

	u, err := svc.Login(ctx, "admin@propmanpulse.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", u.ID)
	assert.Equal(t, models.UserRoleAdmin, u.Role)

	_, err = svc.Login(ctx, "admin@propmanpulse.com", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "admin123")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

/* ---------- users ---------- */

func TestCreateUser_HashesPasswordAndRejectsDuplicateEmail(t *testing.T) {
	_, repos, _ := newStore(t, false)
	svc := NewUserService(repos.Users)
	ctx := context.Background()

	req := dtos.CreateUserRequest{
		Email:     "jane@example.com",
		Password:  "secret99",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	u, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, models.UserRoleTenant, u.Role)
	assert.NotEqual(t, "secret99", u.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret99", u.PasswordHash))

	_, err = svc.CreateUser(ctx, req)
	appErr := requireAppError(t, err, http.StatusConflict)
	assert.ErrorIs(t, appErr, utils.ErrEmailExists)

	missing, err := svc.GetUser(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

/* ---------- dashboard ---------- */

func TestDashboardStats_Fixtures(t *testing.T) {
	_, repos, fx := newStore(t, true)
	svc := NewDashboardService(repos.Properties, repos.MaintenanceTickets, repos.Transactions,
		fx.RecentActivity, fx.UpcomingInspections)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dtos.DashboardStats{
		TotalProperties: 2,
		ActiveTenants:   211,
		OpenTickets:     1,
		ComplianceRate:  92,
		MonthlyRevenue:  185000.5,
	}, *stats)

	assert.Len(t, svc.RecentActivity(), 3)
	assert.Len(t, svc.UpcomingInspections(), 3)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	_, repos, _ := newStore(t, false)
	svc := NewDashboardService(repos.Properties, repos.MaintenanceTickets, repos.Transactions, nil, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dtos.DashboardStats{}, *stats)
	assert.NotNil(t, svc.RecentActivity())
	assert.Empty(t, svc.UpcomingInspections())
}

func TestDashboardStats_TracksNewRecords(t *testing.T) {
	_, repos, fx := newStore(t, true)
	ctx := context.Background()
	svc := NewDashboardService(repos.Properties, repos.MaintenanceTickets, repos.Transactions,
		fx.RecentActivity, fx.UpcomingInspections)

	require.NoError(t, repos.Transactions.Create(ctx, &models.Transaction{
		Type:        models.TransactionTypeRent,
		Category:    models.TransactionCategoryIncome,
		Amount:      "14999.40",
		Description: "March rent",
		Status:      models.TransactionStatusCompleted,
	}))
	require.NoError(t, repos.MaintenanceTickets.Create(ctx, &models.MaintenanceTicket{
		PropertyID:  "property-2",
		Title:       "Broken gate",
		Description: "Main gate motor stuck",
		Category:    models.TicketCategoryGeneral,
		ReportedBy:  "manager-1",
	}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.OpenTickets)
	assert.InDelta(t, 199999.9, stats.MonthlyRevenue, 1e-6)
}

/* ---------- maintenance ---------- */

func TestMaintenance_CreateAssignsNumberAndDefaults(t *testing.T) {
	db, repos, _ := newStore(t, false)
	svc := NewMaintenanceService(repos.MaintenanceTickets, db.Now)

	tk, err := svc.CreateTicket(context.Background(), dtos.CreateMaintenanceTicketRequest{
		PropertyID:  "property-1",
		Title:       "Leaking faucet",
		Description: "Kitchen tap drips",
		Category:    models.TicketCategoryPlumbing,
		ReportedBy:  "manager-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "MT-2025-001", tk.TicketNumber)
	assert.Equal(t, models.TicketPriorityMedium, tk.Priority)
	assert.Equal(t, models.TicketStatusOpen, tk.Status)
	assert.Nil(t, tk.CompletedAt)
}

func TestMaintenance_UpdateMergesFields(t *testing.T) {
	db, repos, _ := newStore(t, true)
	svc := NewMaintenanceService(repos.MaintenanceTickets, db.Now)
	ctx := context.Background()

	before, err := svc.GetTicket(ctx, "ticket-1")
	require.NoError(t, err)
	require.NotNil(t, before)

	after, err := svc.UpdateTicket(ctx, "ticket-1", dtos.UpdateMaintenanceTicketRequest{
		Status:     utils.Ptr(models.TicketStatusCompleted),
		ActualCost: utils.NewNullable("850.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusCompleted, after.Status)
	assert.Equal(t, "850.00", *after.ActualCost)
	require.NotNil(t, after.CompletedAt)
	assert.True(t, after.CompletedAt.Equal(fixedNow))

	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.TicketNumber, after.TicketNumber)
	assert.Equal(t, before.Priority, after.Priority)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	require.NotNil(t, after.AssignedTo)
	assert.Equal(t, *before.AssignedTo, *after.AssignedTo)
}

func TestMaintenance_UpdateClearsNullFields(t *testing.T) {
	db, repos, _ := newStore(t, true)
	svc := NewMaintenanceService(repos.MaintenanceTickets, db.Now)
	ctx := context.Background()

	after, err := svc.UpdateTicket(ctx, "ticket-1", dtos.UpdateMaintenanceTicketRequest{
		AssignedTo:    utils.NewNull[string](),
		EstimatedCost: utils.NewNull[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, after.AssignedTo)
	assert.Nil(t, after.EstimatedCost)
	require.NotNil(t, after.UnitID)
	assert.Equal(t, "unit-1", *after.UnitID)

	// Reopening with completedAt null drops the completion stamp.
	_, err = svc.UpdateTicket(ctx, "ticket-1", dtos.UpdateMaintenanceTicketRequest{
		Status: utils.Ptr(models.TicketStatusCompleted),
	})
	require.NoError(t, err)
	reopened, err := svc.UpdateTicket(ctx, "ticket-1", dtos.UpdateMaintenanceTicketRequest{
		Status:      utils.Ptr(models.TicketStatusOpen),
		CompletedAt: utils.NewNull[time.Time](),
	})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt)
}

func TestMaintenance_UpdateKeepsExplicitCompletedAt(t *testing.T) {
	db, repos, _ := newStore(t, true)
	svc := NewMaintenanceService(repos.MaintenanceTickets, db.Now)

	done := time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
	after, err := svc.UpdateTicket(context.Background(), "ticket-2", dtos.UpdateMaintenanceTicketRequest{
		Status:      utils.Ptr(models.TicketStatusCompleted),
		CompletedAt: utils.NewNullable(done),
	})
	require.NoError(t, err)
	require.NotNil(t, after.CompletedAt)
	assert.True(t, after.CompletedAt.Equal(done))
}

func TestMaintenance_UpdateUnknownTicket(t *testing.T) {
	db, repos, _ := newStore(t, false)
	svc := NewMaintenanceService(repos.MaintenanceTickets, db.Now)

	_, err := svc.UpdateTicket(context.Background(), "nope", dtos.UpdateMaintenanceTicketRequest{
		Title: utils.Ptr("x"),
	})
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Maintenance ticket not found", appErr.Message)
}

/* ---------- properties ---------- */

func TestPropertyListings_RequireProperty(t *testing.T) {
	_, repos, _ := newStore(t, true)
	svc := NewPropertyService(repos.Properties, repos.Units, repos.MaintenanceTickets,
		repos.Inspections, repos.Transactions, repos.ComplianceItems)
	ctx := context.Background()

	units, err := svc.ListPropertyUnits(ctx, "property-1")
	require.NoError(t, err)
	assert.NotEmpty(t, units)
	for _, u := range units {
		assert.Equal(t, "property-1", u.PropertyID)
	}

	_, err = svc.ListPropertyTickets(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)
	_, err = svc.ListPropertyComplianceItems(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)
}

func TestCompanyProperties(t *testing.T) {
	_, repos, _ := newStore(t, true)
	svc := NewCompanyService(repos.Companies, repos.Properties)
	ctx := context.Background()

	props, err := svc.ListCompanyProperties(ctx, "company-1")
	require.NoError(t, err)
	assert.Len(t, props, 2)

	_, err = svc.ListCompanyProperties(ctx, "missing")
	requireAppError(t, err, http.StatusNotFound)
}

/* ---------- communications ---------- */

func TestListCommunications_FiltersByUser(t *testing.T) {
	_, repos, _ := newStore(t, true)
	svc := NewCommunicationService(repos.Communications)
	ctx := context.Background()

	all, err := svc.ListCommunications(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListCommunications(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "communication-2", mine[0].ID)

	none, err := svc.ListCommunications(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, none)
}

/* ---------- demo requests ---------- */

func TestSubmitDemoRequest(t *testing.T) {
	svc := NewDemoRequestService()
	err := svc.SubmitDemoRequest(context.Background(), dtos.DemoRequest{
		Email:     "lead@example.com",
		FirstName: "Lee",
		LastName:  "Ad",
		Phone:     "+27 82 000 0000",
		Company:   "Acme Estates",
	})
	assert.NoError(t, err)
}
