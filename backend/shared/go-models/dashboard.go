package models

// ActivityItem and UpcomingInspection are static dashboard fixtures; they
// are not derived from stored tickets or inspections.
type ActivityItem struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Property string `json:"property" yaml:"property"`
	Type     string `json:"type" yaml:"type"`
	Priority string `json:"priority" yaml:"priority"`
	Time     string `json:"time" yaml:"time"`
}

type UpcomingInspection struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Property string `json:"property" yaml:"property"`
	Date     string `json:"date" yaml:"date"`
	Type     string `json:"type" yaml:"type"`
}
