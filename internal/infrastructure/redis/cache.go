package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"padcalc/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// Cache реализует ports.ICache через Redis. Ключ — идентификатор сессии,
// значение — сериализованный снимок автомата (JSON как строка).
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш снимков сессий, реализующий ports.ICache.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает снимок по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (value string, found bool, err error) {
	s, err := c.cli.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return "", false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return "", false, err
	}
	return s, true, nil
}

// Set сохраняет снимок по ключу. Повторная запись перезаписывает значение.
func (c *Cache) Set(ctx context.Context, key, value string) error {
	if err := c.cli.Set(ctx, key, value, 0).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
