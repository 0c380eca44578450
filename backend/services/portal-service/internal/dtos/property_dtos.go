package dtos

import "github.com/JacquiM/PropManPulse/backend/shared/go-models"

// ----- Company DTOs -----
type CreateCompanyRequest struct {
	Name    string             `json:"name" validate:"required"`
	Type    models.CompanyType `json:"type" validate:"required,oneof=management_company body_corporate hoa"`
	Address *string            `json:"address"`
	Phone   *string            `json:"phone"`
	Email   *string            `json:"email" validate:"omitempty,email"`
}

// ----- Property DTOs -----
type CreatePropertyRequest struct {
	Name           string                `json:"name" validate:"required"`
	Address        string                `json:"address" validate:"required"`
	Type           models.PropertyType   `json:"type" validate:"required,oneof=residential commercial mixed_use industrial"`
	ManagementType models.ManagementType `json:"managementType" validate:"required,oneof=community rental"`
	TotalUnits     *int                  `json:"totalUnits" validate:"omitempty,min=0"`
	CompanyID      string                `json:"companyId" validate:"required"`
	ImageURL       *string               `json:"imageUrl" validate:"omitempty,url"`
	AnnualLevy     *string               `json:"annualLevy" validate:"omitempty,decimal"`
	ComplianceRate *int                  `json:"complianceRate" validate:"omitempty,min=0,max=100"`
}

// ----- Unit DTOs -----
type CreateUnitRequest struct {
	PropertyID  string          `json:"propertyId" validate:"required"`
	UnitNumber  string          `json:"unitNumber" validate:"required"`
	Type        models.UnitType `json:"type" validate:"required,oneof=apartment house office shop"`
	Bedrooms    *int            `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms   *int            `json:"bathrooms" validate:"omitempty,min=0"`
	Size        *string         `json:"size" validate:"omitempty,decimal"`
	MonthlyRent *string         `json:"monthlyRent" validate:"omitempty,decimal"`
	IsOccupied  *bool           `json:"isOccupied"`
	TenantID    *string         `json:"tenantId"`
	OwnerID     *string         `json:"ownerId"`
}
