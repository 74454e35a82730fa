package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/repository/memory"
	"github.com/koffe-supply/koffe-be/internal/service"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fixture struct {
	store    *memory.Store
	events   *memory.EventRecorder
	tokens   *utils.TokenIssuer
	users    service.UserService
	tags     service.TagService
	types    service.TypeService
	products service.ProductService
	orders   service.OrderService
}

func newFixture() *fixture {
	store := memory.NewStore()
	events := &memory.EventRecorder{}
	tokens := utils.NewTokenIssuer(testSecret, time.Hour)

	return &fixture{
		store:    store,
		events:   events,
		tokens:   tokens,
		users:    service.CreateUserService(store.Users(), tokens, events, bcrypt.MinCost),
		tags:     service.CreateTagService(store.Tags(), events),
		types:    service.CreateTypeService(store.Types(), events),
		products: service.CreateProductService(store, store.Products(), store.Tags(), store.Types(), events),
		orders:   service.CreateOrderService(store.Orders(), store.Products(), events),
	}
}

func (f *fixture) addTag(t *testing.T, name string) domain.Tag {
	t.Helper()

	tag, err := f.tags.AddTag(context.Background(), dto.TagRequest{TagName: name})
	require.NoError(t, err)
	return tag
}

func (f *fixture) addType(t *testing.T, name string) domain.Type {
	t.Helper()

	productType, err := f.types.AddType(context.Background(), dto.TypeRequest{TypeName: name})
	require.NoError(t, err)
	return productType
}

func (f *fixture) addProduct(t *testing.T, name string, typeID string, tagIDs ...string) dto.ProductResponse {
	t.Helper()

	product, err := f.products.AddProduct(context.Background(), dto.ProductRequest{
		ProductName: name,
		Tags:        tagIDs,
		Type:        typeID,
		Image:       "u",
		ImageMore:   []string{"u1"},
	})
	require.NoError(t, err)
	return product
}

func ptr[T any](v T) *T {
	return &v
}
