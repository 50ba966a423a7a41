package cmd

import "time"

// Storage driver names accepted by STORAGE_DRIVER.
const (
	StorageDriverLocal    = "local"
	StorageDriverPostgres = "postgres"
)

// Config carries everything the composition root needs to wire the
// application.
type Config struct {
	HTTPPort string

	// StorageDriver selects the persistence adapter: "local" for the
	// file-backed key-value store, "postgres" for the gorm adapter.
	StorageDriver string

	// DataDir holds the seed fixtures (users.json, menu.json, orders.json).
	DataDir string

	// StateDir holds the key-value store files when the local driver is
	// active.
	StateDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	BoardRefreshInterval    time.Duration
	TrackingRefreshInterval time.Duration
}
