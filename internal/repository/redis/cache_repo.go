package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ects-tech/shop-backend/internal/cfg"
	"github.com/ects-tech/shop-backend/internal/usecase"
	"github.com/ects-tech/shop-backend/pkg/clients"
	"github.com/ects-tech/shop-backend/pkg/e"
	"github.com/ects-tech/shop-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CacheRepo кэширует выборки каталога целиком под строковыми ключами.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts возвращает закэшированную выборку каталога.
// Промах кэша отдаётся как (nil, nil), битое значение — тоже промах.
func (c *CacheRepo) GetProducts(ctx context.Context, key string) ([]usecase.ProductInfo, error) {
	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == r.Nil {
			return nil, nil // cache miss
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var products []usecase.ProductInfo
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warnf("Redis unmarshal failed for key %s: %v", key, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	if products == nil {
		products = make([]usecase.ProductInfo, 0)
	}

	return products, nil
}

// SetProducts кэширует выборку каталога с TTL из конфигурации.
func (c *CacheRepo) SetProducts(ctx context.Context, key string, products []usecase.ProductInfo) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal products for key %s: %w", whereami.WhereAmI(), key, err)
	}

	if err := c.client.Client.Set(ctx, key, data, c.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Invalidate удаляет ключи кэша, задетые мутацией каталога.
func (c *CacheRepo) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
