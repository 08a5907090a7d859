package model

import "time"

// Heartbeat is the last outcome of the scheduled database probe
type Heartbeat struct {
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
	RequestID string        `json:"requestId"`
	CheckedAt time.Time     `json:"checkedAt"`
	Latency   time.Duration `json:"latency"`
}

func NewHeartbeat(result ProbeResult, requestID string, checkedAt time.Time, latency time.Duration) Heartbeat {
	return Heartbeat{
		OK:        result.OK(),
		Error:     result.Message(),
		RequestID: requestID,
		CheckedAt: checkedAt.UTC(),
		Latency:   latency,
	}
}
