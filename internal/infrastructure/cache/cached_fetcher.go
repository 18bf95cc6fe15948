// Package cache provides a Redis-backed read-through cache in front of the
// remote catalog service, so repeated enrichment batches do not re-fetch the
// same reference records. It is suitable for distributed deployments where
// multiple instances share a catalog snapshot.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appenrichment "github.com/marketledger/backend/internal/application/enrichment"
	"github.com/marketledger/backend/internal/domain/enrichment"
)

const (
	productKeyPrefix    = "catalog:product:"
	promotionKeyPrefix  = "catalog:promotion:"
	departmentKeyPrefix = "catalog:department:"

	defaultTTL = 15 * time.Minute
)

// CachedFetcher wraps a ReferenceFetcher with a Redis read-through cache.
// Cache failures degrade to direct catalog lookups; they never fail a batch.
type CachedFetcher struct {
	inner  appenrichment.ReferenceFetcher
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisOptions holds Redis connection settings for the reference cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewCachedFetcher connects to Redis and wraps the given fetcher.
func NewCachedFetcher(inner appenrichment.ReferenceFetcher, opts RedisOptions, logger *zap.Logger) (*CachedFetcher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewCachedFetcherWithClient(inner, client, opts.TTL, logger), nil
}

// NewCachedFetcherWithClient wraps the fetcher using an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewCachedFetcherWithClient(inner appenrichment.ReferenceFetcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedFetcher{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger.Named("reference_cache"),
	}
}

// FetchProducts resolves item codes, serving cached records where possible.
func (f *CachedFetcher) FetchProducts(ctx context.Context, codes []string) (map[string]*enrichment.OrderProduct, error) {
	return fetchThrough(ctx, f, productKeyPrefix, codes, f.inner.FetchProducts)
}

// FetchPromotions resolves promotion codes, serving cached records where possible.
func (f *CachedFetcher) FetchPromotions(ctx context.Context, codes []string) (map[string]*enrichment.OrderPromotion, error) {
	return fetchThrough(ctx, f, promotionKeyPrefix, codes, f.inner.FetchPromotions)
}

// FetchDepartments resolves branch codes, serving cached records where possible.
func (f *CachedFetcher) FetchDepartments(ctx context.Context, codes []string) (map[string]*enrichment.OrderDepartment, error) {
	return fetchThrough(ctx, f, departmentKeyPrefix, codes, f.inner.FetchDepartments)
}

// Close closes the Redis client.
func (f *CachedFetcher) Close() error {
	return f.client.Close()
}

// fetchThrough reads cached records for the requested codes, fetches the
// misses from the underlying catalog and writes them back with a TTL.
// Unknown codes are not cached; the catalog stays authoritative for absence.
func fetchThrough[T any](
	ctx context.Context,
	f *CachedFetcher,
	prefix string,
	codes []string,
	fetch func(context.Context, []string) (map[string]*T, error),
) (map[string]*T, error) {
	records := make(map[string]*T, len(codes))

	misses := codes
	if cached, err := f.readCached(ctx, prefix, codes, records); err != nil {
		f.logger.Warn("cache read failed, falling back to catalog", zap.Error(err))
	} else {
		misses = cached
	}

	if len(misses) == 0 {
		return records, nil
	}

	fetched, err := fetch(ctx, misses)
	if err != nil {
		return nil, err
	}
	for code, record := range fetched {
		records[code] = record
	}

	if err := writeCached(ctx, f, prefix, fetched); err != nil {
		f.logger.Warn("cache write failed", zap.Error(err))
	}

	return records, nil
}

// readCached fills records with cache hits and returns the missed codes.
func (f *CachedFetcher) readCached(ctx context.Context, prefix string, codes []string, records any) ([]string, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = prefix + code
	}

	values, err := f.client.MGet(ctx, keys...).Result()
	if err != nil {
		return codes, err
	}

	var misses []string
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			misses = append(misses, codes[i])
			continue
		}
		if err := decodeInto(records, codes[i], raw); err != nil {
			// Treat a corrupt entry as a miss; the write-back will repair it.
			f.logger.Warn("dropping corrupt cache entry",
				zap.String("key", keys[i]), zap.Error(err))
			misses = append(misses, codes[i])
		}
	}
	return misses, nil
}

// decodeInto unmarshals a cached value into the typed record map.
func decodeInto(records any, code, raw string) error {
	switch m := records.(type) {
	case map[string]*enrichment.OrderProduct:
		var record enrichment.OrderProduct
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return err
		}
		m[code] = &record
	case map[string]*enrichment.OrderPromotion:
		var record enrichment.OrderPromotion
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return err
		}
		m[code] = &record
	case map[string]*enrichment.OrderDepartment:
		var record enrichment.OrderDepartment
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return err
		}
		m[code] = &record
	default:
		return fmt.Errorf("unsupported record map %T", records)
	}
	return nil
}

// writeCached stores freshly fetched records in one pipelined round trip.
func writeCached[T any](ctx context.Context, f *CachedFetcher, prefix string, fetched map[string]*T) error {
	if len(fetched) == 0 {
		return nil
	}

	pipe := f.client.Pipeline()
	for code, record := range fetched {
		payload, err := json.Marshal(record)
		if err != nil {
			return err
		}
		pipe.Set(ctx, prefix+code, payload, f.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Ensure CachedFetcher implements ReferenceFetcher
var _ appenrichment.ReferenceFetcher = (*CachedFetcher)(nil)
