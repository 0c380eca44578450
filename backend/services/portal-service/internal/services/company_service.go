package services

import (
	"context"

	"github.com/JacquiM/PropManPulse/backend/services/portal-service/internal/dtos"
	"github.com/JacquiM/PropManPulse/backend/shared/go-models"
	"github.com/JacquiM/PropManPulse/backend/shared/go-repositories"
	"github.com/JacquiM/PropManPulse/backend/shared/go-utils"
)

type CompanyService struct {
	companies  repositories.CompanyRepository
	properties repositories.PropertyRepository
}

func NewCompanyService(
	companies repositories.CompanyRepository,
	properties repositories.PropertyRepository,
) *CompanyService {
	return &CompanyService{companies: companies, properties: properties}
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	list, err := s.companies.List(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch companies", err)
	}
	return list, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch company", err)
	}
	return c, nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, req dtos.CreateCompanyRequest) (*models.Company, error) {
	c := &models.Company{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, storeError("company", err)
	}
	return c, nil
}

// ListCompanyProperties 404s when the company itself is unknown.
func (s *CompanyService) ListCompanyProperties(ctx context.Context, companyID string) ([]*models.Property, error) {
	c, err := s.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.NewNotFoundError("Company not found")
	}
	list, err := s.properties.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch properties", err)
	}
	return list, nil
}
