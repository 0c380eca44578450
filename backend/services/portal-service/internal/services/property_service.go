package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

// PropertyService covers properties, their units, and the per-property
// views over the other collections.
type PropertyService struct {
	properties  repositories.PropertyRepository
	units       repositories.UnitRepository
	tickets     repositories.MaintenanceTicketRepository
	inspections repositories.InspectionRepository
	txns        repositories.TransactionRepository
	compliance  repositories.ComplianceItemRepository
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	units repositories.UnitRepository,
	tickets repositories.MaintenanceTicketRepository,
	inspections repositories.InspectionRepository,
	txns repositories.TransactionRepository,
	compliance repositories.ComplianceItemRepository,
) *PropertyService {
	return &PropertyService{
		properties:  properties,
		units:       units,
		tickets:     tickets,
		inspections: inspections,
		txns:        txns,
		compliance:  compliance,
	}
}

/* ---------- properties ---------- */

func (s *PropertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	list, err := s.properties.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch properties", err)
	}
	return list, nil
}

// GetProperty returns nil, nil when the property does not exist.
func (s *PropertyService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch property", err)
	}
	return p, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, req dtos.CreatePropertyRequest) (*models.Property, error) {
	p := &models.Property{
		Name:           req.Name,
		Address:        req.Address,
		Type:           req.Type,
		ManagementType: req.ManagementType,
		TotalUnits:     req.TotalUnits,
		CompanyID:      req.CompanyID,
		ImageURL:       req.ImageURL,
		AnnualLevy:     req.AnnualLevy,
		ComplianceRate: req.ComplianceRate,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, storeError("property", err)
	}
	utils.Logger.WithField("property_id", p.ID).Info("property created")
	return p, nil
}

/* ---------- units ---------- */

func (s *PropertyService) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	list, err := s.units.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch units", err)
	}
	return list, nil
}

func (s *PropertyService) GetUnit(ctx context.Context, id string) (*models.Unit, error) {
	u, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch unit", err)
	}
	return u, nil
}

func (s *PropertyService) CreateUnit(ctx context.Context, req dtos.CreateUnitRequest) (*models.Unit, error) {
	u := &models.Unit{
		PropertyID:  req.PropertyID,
		UnitNumber:  req.UnitNumber,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Size:        req.Size,
		MonthlyRent: req.MonthlyRent,
		IsOccupied:  req.IsOccupied,
		TenantID:    req.TenantID,
		OwnerID:     req.OwnerID,
	}
	if err := s.units.Create(ctx, u); err != nil {
		return nil, storeError("unit", err)
	}
	return u, nil
}

/* ---------- per-property listings ---------- */

func (s *PropertyService) ListPropertyUnits(ctx context.Context, propID string) ([]*models.Unit, error) {
	if err := s.requireProperty(ctx, propID); err != nil {
		return nil, err
	}
	list, err := s.units.ListByPropertyID(ctx, propID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch units", err)
	}
	return list, nil
}

func (s *PropertyService) ListPropertyTickets(ctx context.Context, propID string) ([]*models.MaintenanceTicket, error) {
	if err := s.requireProperty(ctx, propID); err != nil {
		return nil, err
	}
	list, err := s.tickets.ListByPropertyID(ctx, propID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch maintenance tickets", err)
	}
	return list, nil
}

func (s *PropertyService) ListPropertyInspections(ctx context.Context, propID string) ([]*models.Inspection, error) {
	if err := s.requireProperty(ctx, propID); err != nil {
		return nil, err
	}
	list, err := s.inspections.ListByPropertyID(ctx, propID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch inspections", err)
	}
	return list, nil
}

func (s *PropertyService) ListPropertyTransactions(ctx context.Context, propID string) ([]*models.Transaction, error) {
	if err := s.requireProperty(ctx, propID); err != nil {
		return nil, err
	}
	list, err := s.txns.ListByPropertyID(ctx, propID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch transactions", err)
	}
	return list, nil
}

func (s *PropertyService) ListPropertyComplianceItems(ctx context.Context, propID string) ([]*models.ComplianceItem, error) {
	if err := s.requireProperty(ctx, propID); err != nil {
		return nil, err
	}
	list, err := s.compliance.ListByPropertyID(ctx, propID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch compliance items", err)
	}
	return list, nil
}

func (s *PropertyService) requireProperty(ctx context.Context, id string) error {
	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return utils.NewNotFoundError("Property not found")
	}
	return nil
}
