package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/221FA04614/AuraShop-main/model"
)

const productTTL = 5 * time.Minute

// ProductCache is a read-through cache for catalog reads. Misses and Redis
// errors both fall back to the store; writes invalidate everything.
type ProductCache struct {
	rdb *redis.Client
}

func NewProductCache(addr string) (*ProductCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Println("Redis connected")
	return &ProductCache{rdb: rdb}, nil
}

func ListKey(category string, featuredOnly bool) string {
	if category != "" {
		return "products:category:" + category
	}
	if featuredOnly {
		return "products:featured"
	}
	return "products:all"
}

func (c *ProductCache) GetList(ctx context.Context, key string) ([]model.Product, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetList(ctx context.Context, key string, products []model.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, productTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *ProductCache) GetProduct(ctx context.Context, id uint) (*model.Product, bool) {
	data, err := c.rdb.Get(ctx, fmt.Sprintf("product:%d", id)).Bytes()
	if err != nil {
		return nil, false
	}
	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) SetProduct(ctx context.Context, p *model.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	key := fmt.Sprintf("product:%d", p.ID)
	if err := c.rdb.Set(ctx, key, data, productTTL).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Invalidate drops all cached catalog entries after a write.
func (c *ProductCache) Invalidate(ctx context.Context) {
	for _, pattern := range []string{"products:*", "product:*"} {
		keys, err := c.rdb.Keys(ctx, pattern).Result()
		if err != nil || len(keys) == 0 {
			continue
		}
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			log.Printf("cache invalidate %s: %v", pattern, err)
		}
	}
}
