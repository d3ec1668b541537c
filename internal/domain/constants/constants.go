// Package constants holds configuration values that select infrastructure implementations.
package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Store drivers.
const (
	StoreDriverPostgres  = "postgres"
	StoreDriverFirestore = "firestore"
	StoreDriverMemory    = "memory"
)

// Match event types.
const (
	EventMatchConfirmed = "match.confirmed"
	EventMatchReleased  = "match.released"
)
