package repository

import "time"

// CacheRepository caches serialized appraisal results keyed by document
// digest. A zero TTL means no expiry.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
