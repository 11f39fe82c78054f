package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "assetbook"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Advisory lock tuning for booking creation. The TTL bounds how long a
	// crashed holder can block an asset; the wait bounds how long a caller
	// spins for the lock before reporting a conflict.
	DefaultBookingLockTTL           = 10 * time.Second
	DefaultBookingLockWait          = 2 * time.Second
	DefaultBookingLockRetryInterval = 50 * time.Millisecond

	// Seed value matching the original deployment's header.
	DefaultHeaderText = "Buchungssystem"

	DefaultPaginationLimit = 100
)
