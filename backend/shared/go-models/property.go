package models

import "time"

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeMixedUse    PropertyType = "mixed_use"
	PropertyTypeIndustrial  PropertyType = "industrial"
)

// ManagementType separates body-corporate/HOA schemes from rental portfolios.
type ManagementType string

const (
	ManagementTypeCommunity ManagementType = "community"
	ManagementTypeRental    ManagementType = "rental"
)

type Property struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Type           PropertyType   `json:"type"`
	ManagementType ManagementType `json:"managementType"`
	TotalUnits     *int           `json:"totalUnits"`
	CompanyID      string         `json:"companyId"`
	ImageURL       *string        `json:"imageUrl"`
	AnnualLevy     *string        `json:"annualLevy"`
	ComplianceRate *int           `json:"complianceRate"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func (p Property) GetID() string { return p.ID }

func (p *Property) ApplyDefaults() {
	if p.ComplianceRate == nil {
		zero := 0
		p.ComplianceRate = &zero
	}
}
