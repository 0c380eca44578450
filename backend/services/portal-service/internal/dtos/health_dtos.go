package dtos

type HealthCheckResponse struct {
	Status      string         `json:"status"`
	Collections map[string]int `json:"collections,omitempty"`
}
