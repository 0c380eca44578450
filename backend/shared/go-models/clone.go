package models

import "slices"

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clone methods return a copy that shares no memory with the receiver.

func (u User) Clone() User {
	u.CompanyID = clonePtr(u.CompanyID)
	u.ProfileImage = clonePtr(u.ProfileImage)
	return u
}

func (c Company) Clone() Company {
	c.Address = clonePtr(c.Address)
	c.Phone = clonePtr(c.Phone)
	c.Email = clonePtr(c.Email)
	return c
}

func (p Property) Clone() Property {
	p.TotalUnits = clonePtr(p.TotalUnits)
	p.ImageURL = clonePtr(p.ImageURL)
	p.AnnualLevy = clonePtr(p.AnnualLevy)
	p.ComplianceRate = clonePtr(p.ComplianceRate)
	return p
}

func (u Unit) Clone() Unit {
	u.Bedrooms = clonePtr(u.Bedrooms)
	u.Bathrooms = clonePtr(u.Bathrooms)
	u.Size = clonePtr(u.Size)
	u.MonthlyRent = clonePtr(u.MonthlyRent)
	u.IsOccupied = clonePtr(u.IsOccupied)
	u.TenantID = clonePtr(u.TenantID)
	u.OwnerID = clonePtr(u.OwnerID)
	return u
}

func (t MaintenanceTicket) Clone() MaintenanceTicket {
	t.UnitID = clonePtr(t.UnitID)
	t.AssignedTo = clonePtr(t.AssignedTo)
	t.EstimatedCost = clonePtr(t.EstimatedCost)
	t.ActualCost = clonePtr(t.ActualCost)
	t.CompletedAt = clonePtr(t.CompletedAt)
	return t
}

func (i Inspection) Clone() Inspection {
	i.UnitID = clonePtr(i.UnitID)
	i.CompletedDate = clonePtr(i.CompletedDate)
	i.ReportURL = clonePtr(i.ReportURL)
	i.Findings = slices.Clone(i.Findings)
	return i
}

func (t Transaction) Clone() Transaction {
	t.PropertyID = clonePtr(t.PropertyID)
	t.UnitID = clonePtr(t.UnitID)
	t.PaymentMethod = clonePtr(t.PaymentMethod)
	t.Reference = clonePtr(t.Reference)
	t.DueDate = clonePtr(t.DueDate)
	t.PaidDate = clonePtr(t.PaidDate)
	return t
}

func (c ComplianceItem) Clone() ComplianceItem {
	c.Description = clonePtr(c.Description)
	c.CompletedDate = clonePtr(c.CompletedDate)
	c.AssignedTo = clonePtr(c.AssignedTo)
	c.Documents = slices.Clone(c.Documents)
	return c
}

func (c Communication) Clone() Communication {
	c.ToUserID = clonePtr(c.ToUserID)
	c.PropertyID = clonePtr(c.PropertyID)
	return c
}
