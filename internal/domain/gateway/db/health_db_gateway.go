package db

import "context"

// probeQuery is issued only to confirm the database answers
const probeQuery = "SELECT 1"

// HealthDBGateway runs the connectivity probe against the shared database handle.
type HealthDBGateway interface {
	// Probe executes one probe query. It never retries.
	Probe(ctx context.Context) error
	// Client names the database client behind the gateway.
	Client() string
}
