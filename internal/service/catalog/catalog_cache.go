package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// CachedFetcher 在 IFetcher 外掛一層 redis read-through cache
// cache 掛掉不影響功能，直接打遠端，錯誤只記 log
type CachedFetcher struct {
	next   IFetcher
	cache  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedFetcher(next IFetcher, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func brandsKey(featuredFirst bool) string {
	return fmt.Sprintf("catalog:brands:featured_first=%t", featuredFirst)
}

func brandProductsKey(brandID int64) string {
	return fmt.Sprintf("catalog:brand:%d:products", brandID)
}

func productKey(id int64) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

func (c *CachedFetcher) ListBrands(ctx context.Context, featuredFirst bool) ([]model.Brand, error) {
	key := brandsKey(featuredFirst)

	var brands []model.Brand
	if c.lookup(ctx, key, &brands) {
		return brands, nil
	}

	brands, err := c.next.ListBrands(ctx, featuredFirst)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, brands)
	return brands, nil
}

func (c *CachedFetcher) ListProducts(ctx context.Context, brandID int64) ([]model.Product, error) {
	key := brandProductsKey(brandID)

	var products []model.Product
	if c.lookup(ctx, key, &products) {
		return products, nil
	}

	products, err := c.next.ListProducts(ctx, brandID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, products)
	return products, nil
}

func (c *CachedFetcher) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	key := productKey(id)

	var p model.Product
	if c.lookup(ctx, key, &p) {
		return &p, nil
	}

	product, err := c.next.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, product)
	return product, nil
}

func (c *CachedFetcher) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	const key = "catalog:products:all"

	var products []model.Product
	if c.lookup(ctx, key, &products) {
		return products, nil
	}

	products, err := c.next.ListAllProducts(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, products)
	return products, nil
}

func (c *CachedFetcher) lookup(ctx context.Context, key string, dest any) bool {
	if c.cache == nil {
		return false
	}

	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache entry corrupted")
		return false
	}
	return true
}

func (c *CachedFetcher) store(ctx context.Context, key string, v any) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}
}
