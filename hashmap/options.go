package hashmap

import (
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultBucketCount is a reasonable bucket count for small maps.
	DefaultBucketCount uint32 = 32
	// MaxBucketCount bounds the bucket array; larger requests fail with
	// ErrAllocationFailure.
	MaxBucketCount uint32 = 1 << 24
)

// Config holds the construction parameters of a HashMap.
type Config struct {
	// BucketCount is the number of hash buckets to allocate. Must be > 0.
	BucketCount uint32

	// MaxLoad enables automatic growth: once the map holds more than
	// MaxLoad entries per bucket, the bucket array is grown. Zero keeps the
	// bucket count fixed.
	MaxLoad uint32

	// MaxEntries caps the number of entries. Inserting a new key into a full
	// map fails with ErrAllocationFailure. Zero means unlimited.
	MaxEntries uint32

	// Logger receives debug records of structural changes. Defaults to the
	// standard logrus logger tagged with component=hashmap.
	Logger *log.Entry
}

type Option func(*Config)

// WithMaxLoad enables growth once the average chain length exceeds n.
func WithMaxLoad(n uint32) Option {
	return func(c *Config) {
		c.MaxLoad = n
	}
}

// WithMaxEntries caps the number of entries the map accepts.
func WithMaxEntries(n uint32) Option {
	return func(c *Config) {
		c.MaxEntries = n
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultLogger() *log.Entry {
	return log.WithFields(log.Fields{"component": "hashmap"})
}
