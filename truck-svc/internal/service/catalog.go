package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"foodtruck/truck-svc/internal/domain"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	CacheKeyInfo      = "foodtruck:info"
	CacheKeyMenu      = "foodtruck:menu"
	CacheKeyLocations = "foodtruck:locations"
)

// CacheKey maps a catalog entity to the cache key holding its snapshot.
func CacheKey(entity string) (string, bool) {
	switch entity {
	case domain.EntityInfo:
		return CacheKeyInfo, true
	case domain.EntityMenu:
		return CacheKeyMenu, true
	case domain.EntityLocation:
		return CacheKeyLocations, true
	}
	return "", false
}

var textPolicy = bluemonday.StrictPolicy()

// cleanText strips markup from user supplied text. The policy escapes
// entities, so they are decoded again; templates escape on output.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// catalog carries the cache and event wiring shared by the services.
type catalog struct {
	cache     CatalogCache
	publisher CatalogPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func newCatalog(cache CatalogCache, publisher CatalogPublisher, logger *zap.Logger) catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return catalog{
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// cachedRead serves key from the cache when present, otherwise calls load
// and stores the result. Cache failures only cost a repository read.
func cachedRead[T any](ctx context.Context, c catalog, key string, load func(context.Context) (T, error), store func(T) bool) (T, error) {
	var value T
	if c.cache != nil {
		hit, err := c.cache.Get(ctx, key, &value)
		if err != nil {
			c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return value, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if c.cache != nil && store(value) {
		if err := c.cache.Set(ctx, key, value); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}

// changed announces a write. Without a publisher, or when publishing fails,
// the cached snapshot is dropped inline.
func (c catalog) changed(ctx context.Context, entity, id, action string) {
	key, _ := CacheKey(entity)

	if c.publisher != nil {
		err := c.publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
			Type:      domain.EventCatalogChanged,
			Entity:    entity,
			EntityID:  id,
			Action:    action,
			Timestamp: c.now(),
		})
		if err == nil {
			return
		}
		c.logger.Warn("catalog event publish failed",
			zap.String("entity", entity), zap.String("id", id), zap.Error(err))
	}

	if c.cache != nil {
		if err := c.cache.Invalidate(ctx, key); err != nil {
			c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
		}
	}
}
