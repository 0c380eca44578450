package dtos

type DashboardStats struct {
	TotalProperties int     `json:"totalProperties"`
	ActiveTenants   int     `json:"activeTenants"`
	OpenTickets     int     `json:"openTickets"`
	ComplianceRate  int     `json:"complianceRate"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
}
