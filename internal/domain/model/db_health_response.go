package model

// DBHealthResponse is the body of the database connectivity check.
// Error is set on every failure, even when the message is empty.
type DBHealthResponse struct {
	OK    bool    `json:"ok" example:"false"`
	Error *string `json:"error,omitempty" example:"connection refused"`
}

func NewDBHealthResponse(result ProbeResult) DBHealthResponse {
	if result.OK() {
		return DBHealthResponse{OK: true}
	}
	message := result.Message()
	return DBHealthResponse{OK: false, Error: &message}
}
