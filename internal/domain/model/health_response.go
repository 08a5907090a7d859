package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
}

// NewComponentHealthStatus builds a component status with a single message detail.
func NewComponentHealthStatus(status HealthStatus, message string) ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  status,
		Details: map[string]string{"message": message},
	}
}

// OverallStatus is DOWN when any component is DOWN. UNKNOWN components do not degrade it.
func OverallStatus(components ...ComponentHealthStatus) HealthStatus {
	for _, component := range components {
		if component.Status == StatusDown {
			return StatusDown
		}
	}
	return StatusUp
}
