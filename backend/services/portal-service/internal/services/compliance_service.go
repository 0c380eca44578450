package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type ComplianceService struct {
	items repositories.ComplianceItemRepository
}

func NewComplianceService(items repositories.ComplianceItemRepository) *ComplianceService {
	return &ComplianceService{items: items}
}

func (s *ComplianceService) ListItems(ctx context.Context) ([]*models.ComplianceItem, error) {
	list, err := s.items.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch compliance items", err)
	}
	return list, nil
}

func (s *ComplianceService) GetItem(ctx context.Context, id string) (*models.ComplianceItem, error) {
	c, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch compliance item", err)
	}
	return c, nil
}

func (s *ComplianceService) CreateItem(ctx context.Context, req dtos.CreateComplianceItemRequest) (*models.ComplianceItem, error) {
	c := &models.ComplianceItem{
		PropertyID:    req.PropertyID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		DueDate:       utils.Val(req.DueDate),
		CompletedDate: req.CompletedDate,
		Status:        req.Status,
		AssignedTo:    req.AssignedTo,
		Documents:     req.Documents,
	}
	if err := s.items.Create(ctx, c); err != nil {
		return nil, storeError("compliance item", err)
	}
	return c, nil
}
