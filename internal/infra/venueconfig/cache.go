package venueconfig

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"lanebook/internal/domain/venue"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedProvider is a read-through cache over another Provider. Cache
// failures degrade to the underlying source; they never fail a request.
type CachedProvider struct {
	source Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProvider(source Provider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(venueID uuid.UUID) string {
	return "lanebook:venue-config:" + venueID.String()
}

func (p *CachedProvider) Get(ctx context.Context, venueID uuid.UUID) (venue.Config, error) {
	key := cacheKey(venueID)

	raw, err := p.client.Get(ctx, key).Bytes()
	if err == nil {
		var cfg venue.Config
		if err := json.Unmarshal(raw, &cfg); err == nil {
			return cfg, nil
		}
		slog.Warn("discarding malformed cached venue config", "key", key)
	} else if err != redis.Nil {
		slog.Warn("venue config cache read failed", "error", err)
	}

	cfg, err := p.source.Get(ctx, venueID)
	if err != nil {
		return venue.Config{}, err
	}

	if raw, err := json.Marshal(cfg); err == nil {
		if err := p.client.Set(ctx, key, raw, p.ttl).Err(); err != nil {
			slog.Warn("venue config cache write failed", "error", err)
		}
	}
	return cfg, nil
}
