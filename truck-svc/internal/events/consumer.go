package events

import (
	"context"
	"encoding/json"
	"errors"

	"foodtruck/truck-svc/internal/domain"
	"foodtruck/truck-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.CatalogEvent) error
}

var _ ConsumerInterface = (*Consumer)(nil)

// Consumer drops cached catalog snapshots when a catalog change event arrives.
type Consumer struct {
	Reader MessageReader
	Cache  CacheInvalidator
	logger *zap.Logger
}

func NewConsumer(reader MessageReader, cache CacheInvalidator, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{Reader: reader, Cache: cache, logger: logger}
}

// Start reads until ctx is done.
func (c *Consumer) Start(ctx context.Context) {
	c.logger.Info("catalog consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("catalog consumer stopped")
				return
			}
			c.logger.Warn("read catalog message", zap.Error(err))
			continue
		}

		var event domain.CatalogEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.logger.Warn("decode catalog message", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			c.logger.Warn("process catalog event",
				zap.String("entity", event.Entity), zap.String("id", event.EntityID), zap.Error(err))
		}
	}
}

var ErrUnknownEntity = errors.New("unknown catalog entity")

func (c *Consumer) Process(ctx context.Context, event domain.CatalogEvent) error {
	if event.Type != domain.EventCatalogChanged {
		return nil
	}
	key, ok := service.CacheKey(event.Entity)
	if !ok {
		return ErrUnknownEntity
	}
	if err := c.Cache.Invalidate(ctx, key); err != nil {
		return err
	}
	c.logger.Debug("catalog cache invalidated",
		zap.String("key", key), zap.String("action", event.Action), zap.String("id", event.EntityID))
	return nil
}
