// go-models/unit.go
package models

import "time"

type UnitType string

const (
	UnitTypeApartment UnitType = "apartment"
	UnitTypeHouse     UnitType = "house"
	UnitTypeOffice    UnitType = "office"
	UnitTypeShop      UnitType = "shop"
)

// Unit represents a lettable or owned space inside a property.
type Unit struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	UnitNumber  string    `json:"unitNumber"`
	Type        UnitType  `json:"type"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	Size        *string   `json:"size"`
	MonthlyRent *string   `json:"monthlyRent"`
	IsOccupied  *bool     `json:"isOccupied"`
	TenantID    *string   `json:"tenantId"`
	OwnerID     *string   `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (u Unit) GetID() string { return u.ID }

func (u *Unit) ApplyDefaults() {
	if u.IsOccupied == nil {
		occupied := false
		u.IsOccupied = &occupied
	}
}
