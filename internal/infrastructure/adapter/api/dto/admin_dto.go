package dto

// SweepResponse reports a manually triggered expiration sweep
type SweepResponse struct {
	Expired int `json:"expired"`
}

// HealthResponse reports service and storage status
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Driver  string `json:"driver"`
	Pool    any    `json:"pool,omitempty"`
}
