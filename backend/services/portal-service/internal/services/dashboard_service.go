package services

import (
	"context"
	"math"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type DashboardService struct {
	properties repositories.PropertyRepository
	tickets    repositories.MaintenanceTicketRepository
	txns       repositories.TransactionRepository

	activity []models.ActivityItem
	upcoming []models.UpcomingInspection
}

func NewDashboardService(
	properties repositories.PropertyRepository,
	tickets repositories.MaintenanceTicketRepository,
	txns repositories.TransactionRepository,
	activity []models.ActivityItem,
	upcoming []models.UpcomingInspection,
) *DashboardService {
	return &DashboardService{
		properties: properties,
		tickets:    tickets,
		txns:       txns,
		activity:   activity,
		upcoming:   upcoming,
	}
}

// Stats aggregates the current store contents:
//
//	totalProperties  number of properties
//	activeTenants    sum of totalUnits
//	openTickets      tickets that are open or in progress
//	complianceRate   rounded mean of property compliance rates, 0 if none
//	monthlyRevenue   unrounded sum of completed income transactions
func (s *DashboardService) Stats(ctx context.Context) (*dtos.DashboardStats, error) {
	props, err := s.properties.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch dashboard stats", err)
	}
	active, err := s.tickets.ListByStatus(ctx, models.TicketStatusOpen, models.TicketStatusInProgress)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch dashboard stats", err)
	}
	txns, err := s.txns.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch dashboard stats", err)
	}

	stats := &dtos.DashboardStats{
		TotalProperties: len(props),
		OpenTickets:     len(active),
	}

	rateSum := 0
	for _, p := range props {
		stats.ActiveTenants += utils.Val(p.TotalUnits)
		rateSum += utils.Val(p.ComplianceRate)
	}
	if len(props) > 0 {
		stats.ComplianceRate = int(math.Round(float64(rateSum) / float64(len(props))))
	}

	revenue := 0.0
	for _, t := range txns {
		if !t.IsRealizedIncome() {
			continue
		}
		amount, err := utils.ParseDecimal(t.Amount)
		if err != nil {
			utils.Logger.WithError(err).WithField("transaction_id", t.ID).Warn("skipping unparseable amount")
			continue
		}
		revenue += amount
	}
	stats.MonthlyRevenue = revenue

	return stats, nil
}

func (s *DashboardService) RecentActivity() []models.ActivityItem {
	if s.activity == nil {
		return []models.ActivityItem{}
	}
	return s.activity
}

func (s *DashboardService) UpcomingInspections() []models.UpcomingInspection {
	if s.upcoming == nil {
		return []models.UpcomingInspection{}
	}
	return s.upcoming
}
