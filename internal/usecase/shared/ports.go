package shared

import (
	"context"
	"time"

	"hotel-booking/internal/domain/search"
	"hotel-booking/internal/pkg/pagination"
)

// SearchIndex is the secondary store holding search documents keyed by booking id.
type SearchIndex interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, doc search.Document) error
	// SaveAll upserts the batch atomically.
	SaveAll(ctx context.Context, docs []search.Document) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*search.Document, error)
	FindByReference(ctx context.Context, reference string) (*search.Document, error)
	FindByConfirmationNumber(ctx context.Context, confirmationNumber string) (*search.Document, error)
	FullTextSearch(ctx context.Context, text string, page pagination.Request) (pagination.Page[search.Document], error)
	Search(ctx context.Context, criteria search.Criteria, page pagination.Request) (pagination.Page[search.Document], error)
	// Scan returns every document matching criteria in criteria.Order, unpaged.
	Scan(ctx context.Context, criteria search.Criteria) ([]search.Document, error)
	Count(ctx context.Context) (int64, error)
}

// Cache is a JSON value cache. Get reports a miss with false and no error.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// HotelDirectory resolves hotel data for denormalization. Unknown ids are absent from the result.
type HotelDirectory interface {
	Lookup(ctx context.Context, ids []int64) (map[int64]search.HotelInfo, error)
}
