package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/repository"
	"github.com/koffe-supply/koffe-be/internal/repository/memory"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProduct(name string) domain.Product {
	return domain.Product{
		ProductName: name,
		Type:        primitive.NewObjectID(),
		Image:       "cover.png",
		ImageMore:   []string{"side.png"},
	}
}

func TestCachedProductRepositoryFallsBackWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })

	inner := memory.NewStore().Products()
	repo := repository.CreateCachedProductRepository(inner, rdb, time.Minute)

	id, err := repo.AddProduct(ctx, newProduct("Toraja"))
	require.NoError(t, err)

	got, err := repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Toraja", got.ProductName)

	all, err := repo.GetProducts(ctx, pkgdto.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetProductByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCachedProductRepositoryServesFromRedis(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	inner := memory.NewStore().Products()
	repo := repository.CreateCachedProductRepository(inner, rdb, time.Minute)

	id, err := repo.AddProduct(ctx, newProduct("Kintamani"))
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Del(ctx, "product:"+id.Hex(), "products:all") })

	_, err = repo.GetProductByID(ctx, id)
	require.NoError(t, err)

	stale := newProduct("Kintamani Natural")
	stale.ID = id
	require.NoError(t, inner.UpdateProduct(ctx, stale))

	cached, err := repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kintamani", cached.ProductName)

	fresh := newProduct("Kintamani Honey")
	fresh.ID = id
	require.NoError(t, repo.UpdateProduct(ctx, fresh))

	got, err := repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Kintamani Honey", got.ProductName)

	_, err = repo.DeleteProduct(ctx, id)
	require.NoError(t, err)

	_, err = repo.GetProductByID(ctx, id)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
}

func TestCachedProductRepositoryInvalidatesAfterCommit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	cache := memory.NewCache()
	repo := repository.CreateCachedProductRepository(store.Products(), cache, time.Minute)

	id, err := repo.AddProduct(ctx, newProduct("Toraja"))
	require.NoError(t, err)
	key := "product:" + id.Hex()

	_, err = repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	require.True(t, cache.Has(key))

	err = store.HandleTrx(ctx, func(ctx context.Context) error {
		updated := newProduct("Toraja Sapan")
		updated.ID = id
		require.NoError(t, repo.UpdateProduct(ctx, updated))

		assert.True(t, cache.Has(key), "keys are kept until commit")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, cache.Has(key))

	got, err := repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Toraja Sapan", got.ProductName)

	err = store.HandleTrx(ctx, func(ctx context.Context) error {
		aborted := newProduct("Toraja Pulu")
		aborted.ID = id
		require.NoError(t, repo.UpdateProduct(ctx, aborted))
		return errors.New("abort")
	})
	require.Error(t, err)
	assert.True(t, cache.Has(key), "rolled back writes keep the cache")

	got, err = repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Toraja Sapan", got.ProductName)
}

func TestCachedProductRepositoryForUpdateSkipsCache(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewStore().Products()
	cache := memory.NewCache()
	repo := repository.CreateCachedProductRepository(inner, cache, time.Minute)

	id, err := repo.AddProduct(ctx, newProduct("Bajawa"))
	require.NoError(t, err)

	_, err = repo.GetProductByID(ctx, id)
	require.NoError(t, err)

	changed := newProduct("Bajawa Natural")
	changed.ID = id
	require.NoError(t, inner.UpdateProduct(ctx, changed))

	cached, err := repo.GetProductByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bajawa", cached.ProductName)

	fresh, err := repo.GetProductForUpdate(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bajawa Natural", fresh.ProductName)
}

func TestCachedProductRepositoryCachesMisses(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache()
	repo := repository.CreateCachedProductRepository(memory.NewStore().Products(), cache, time.Minute)

	missing := primitive.NewObjectID()
	_, err := repo.GetProductByID(ctx, missing)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)
	assert.True(t, cache.Has("product:"+missing.Hex()))

	id, err := repo.AddProduct(ctx, newProduct("Kerinci"))
	require.NoError(t, err)
	assert.False(t, cache.Has("products:all"))

	all, err := repo.GetProducts(ctx, pkgdto.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, cache.Has("products:all"))

	_, err = repo.DeleteProduct(ctx, id)
	require.NoError(t, err)
	assert.False(t, cache.Has("products:all"))
}
