package models

import "time"

type CompanyType string

const (
	CompanyTypeManagementCompany CompanyType = "management_company"
	CompanyTypeBodyCorporate     CompanyType = "body_corporate"
	CompanyTypeHOA               CompanyType = "hoa"
)

type Company struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      CompanyType `json:"type"`
	Address   *string     `json:"address"`
	Phone     *string     `json:"phone"`
	Email     *string     `json:"email"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (c Company) GetID() string { return c.ID }
