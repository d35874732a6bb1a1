package models

import "time"

// HealthResponse represents the response structure for health check endpoints
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-01T00:00:00Z"`
	Service   string    `json:"service" example:"api-backend"`
}
