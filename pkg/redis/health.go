package redis

import (
	"context"
	"strconv"
)

// HealthCheck represents the health check response for Redis
type HealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthChecker pings Redis and reports pool statistics
type HealthChecker struct {
	client *Client
}

func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{client: client}
}

// HealthCheck pings Redis once within ctx.
func (h *HealthChecker) HealthCheck(ctx context.Context) HealthCheck {
	config := h.client.GetConfig()
	stats := h.client.GetClient().PoolStats()

	details := map[string]string{
		"address":     config.Addr(),
		"database":    strconv.Itoa(config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err := h.client.Ping(ctx); err != nil {
		details["message"] = err.Error()
		return HealthCheck{Status: StatusDown, Details: details}
	}

	details["message"] = string(StatusUp)
	return HealthCheck{Status: StatusUp, Details: details}
}
