package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "lawnmow"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8000"
	DefaultLogLevel = "info"

	DefaultKafkaEventTopic = "lawnmow.events"

	DefaultDefaultListLimit = 50
	DefaultMaxListLimit     = 200
	DefaultMaxRequestSize   = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout       = 15 * time.Second
	DefaultWriteTimeout      = 15 * time.Second
	DefaultIdleTimeout       = 60 * time.Second
	DefaultShutdownTimeout   = 30 * time.Second
	DefaultStoreReadTimeout  = 5 * time.Second
	DefaultStoreWriteTimeout = 5 * time.Second
)
