package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/koffe-supply/koffe-be/internal/domain"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	allProductsKey   = "products:all"
	notFoundMarker   = "notfound"
	notFoundCacheTTL = time.Minute
)

// CachedProductRepository is a read-through cache in front of another
// ProductRepository. Single products and the unpaginated list are cached.
// Writes invalidate the affected keys once the surrounding transaction commits.
// GetProductForUpdate passes through to storage.
type CachedProductRepository struct {
	ProductRepository
	redis redis.Cmdable
	ttl   time.Duration
}

func CreateCachedProductRepository(repo ProductRepository, rdb redis.Cmdable, ttl time.Duration) ProductRepository {
	return &CachedProductRepository{ProductRepository: repo, redis: rdb, ttl: ttl}
}

func productKey(id primitive.ObjectID) string {
	return fmt.Sprintf("product:%s", id.Hex())
}

func (c *CachedProductRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (data domain.Product, err error) {
	key := productKey(id)
	cached, err := c.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		if string(cached) == notFoundMarker {
			return data, errs.ErrProductNotFound
		}

		decodeErr := json.Unmarshal(cached, &data)
		if decodeErr == nil {
			return data, nil
		}
		log.Ctx(ctx).Warn().Err(decodeErr).Str("component", "GetProductByID").Msg("failed to unmarshal cached product, continuing with db")

	case errors.Is(err, redis.Nil):

	default:
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProductByID").Msg("redis error, continuing with db")
	}

	data, err = c.ProductRepository.GetProductByID(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		if setErr := c.redis.Set(ctx, key, notFoundMarker, notFoundCacheTTL).Err(); setErr != nil {
			log.Ctx(ctx).Warn().Err(setErr).Str("component", "GetProductByID").Msg("failed to cache notfound")
		}
		return data, err
	}
	if err != nil {
		return data, err
	}

	c.set(ctx, key, data)
	return data, nil
}

func (c *CachedProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	if filter.Paginated() {
		return c.ProductRepository.GetProducts(ctx, filter)
	}

	cached, err := c.redis.Get(ctx, allProductsKey).Bytes()
	if err == nil {
		if err := json.Unmarshal(cached, &data); err == nil {
			return data, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetProducts").Msg("redis error, continuing with db")
	}

	data, err = c.ProductRepository.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	c.set(ctx, allProductsKey, data)
	return data, nil
}

func (c *CachedProductRepository) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	id, err = c.ProductRepository.AddProduct(ctx, data)
	if err == nil {
		c.invalidateAfterCommit(ctx, id)
	}

	return id, err
}

func (c *CachedProductRepository) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	err = c.ProductRepository.UpdateProduct(ctx, data)
	c.invalidateAfterCommit(ctx, data.ID)

	return err
}

func (c *CachedProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) (deleted domain.Product, err error) {
	deleted, err = c.ProductRepository.DeleteProduct(ctx, id)
	c.invalidateAfterCommit(ctx, id)

	return deleted, err
}

func (c *CachedProductRepository) set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "CachedProductRepository").Msg("failed to marshal product")
		return
	}

	if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "CachedProductRepository").Str("key", key).Msg("failed to cache product")
	}
}

// invalidateAfterCommit drops the keys once the transaction in ctx commits.
func (c *CachedProductRepository) invalidateAfterCommit(ctx context.Context, id primitive.ObjectID) {
	AfterCommit(ctx, func(ctx context.Context) {
		c.invalidate(ctx, id)
	})
}

func (c *CachedProductRepository) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := c.redis.Del(ctx, productKey(id), allProductsKey).Err(); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "CachedProductRepository").Str("product_id", id.Hex()).Msg("failed to invalidate cache")
	}
}
