package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type InspectionService struct {
	inspections repositories.InspectionRepository
}

func NewInspectionService(inspections repositories.InspectionRepository) *InspectionService {
	return &InspectionService{inspections: inspections}
}

func (s *InspectionService) ListInspections(ctx context.Context) ([]*models.Inspection, error) {
	list, err := s.inspections.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch inspections", err)
	}
	return list, nil
}

func (s *InspectionService) GetInspection(ctx context.Context, id string) (*models.Inspection, error) {
	i, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch inspection", err)
	}
	return i, nil
}

func (s *InspectionService) CreateInspection(ctx context.Context, req dtos.CreateInspectionRequest) (*models.Inspection, error) {
	i := &models.Inspection{
		PropertyID:    req.PropertyID,
		UnitID:        req.UnitID,
		Type:          req.Type,
		ScheduledDate: utils.Val(req.ScheduledDate),
		CompletedDate: req.CompletedDate,
		InspectorID:   req.InspectorID,
		Status:        req.Status,
		Findings:      req.Findings,
		ReportURL:     req.ReportURL,
	}
	if err := s.inspections.Create(ctx, i); err != nil {
		return nil, storeError("inspection", err)
	}
	return i, nil
}
