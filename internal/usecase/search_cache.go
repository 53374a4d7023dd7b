package usecase

import (
	"context"
	"time"
)

// SearchCache is the read-path cache consumed by the candidate search. A
// nil or unavailable implementation must behave as a miss, never an error.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
