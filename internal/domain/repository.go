package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PortionSource defines the interface for looking up reference portion data
// for a food from an external nutrition database (USDA FoodData Central).
// Implementations perform network I/O; the validation core never calls this
// on the request path, only the out-of-band reference-data refresh does.
type PortionSource interface {
	LookupPortions(ctx context.Context, foodName string) ([]FoodPortion, error)
}
