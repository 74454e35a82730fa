// Package memory provides map-backed repositories for tests and local runs
// without MongoDB. Names are unique like the Mongo indexes, and HandleTrx
// rolls back every collection when fn fails.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/repository"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu       sync.Mutex
	users    map[primitive.ObjectID]domain.User
	tags     map[primitive.ObjectID]domain.Tag
	types    map[primitive.ObjectID]domain.Type
	products map[primitive.ObjectID]domain.Product
	orders   map[primitive.ObjectID]domain.Order
}

func NewStore() *Store {
	return &Store{
		users:    map[primitive.ObjectID]domain.User{},
		tags:     map[primitive.ObjectID]domain.Tag{},
		types:    map[primitive.ObjectID]domain.Type{},
		products: map[primitive.ObjectID]domain.Product{},
		orders:   map[primitive.ObjectID]domain.Order{},
	}
}

func (s *Store) Users() repository.UserRepository       { return &userRepository{s} }
func (s *Store) Tags() repository.TagRepository         { return &tagRepository{s} }
func (s *Store) Types() repository.TypeRepository       { return &typeRepository{s} }
func (s *Store) Products() repository.ProductRepository { return &productRepository{s} }
func (s *Store) Orders() repository.OrderRepository     { return &orderRepository{s} }

// HandleTrx is not isolated from concurrent writers; it only restores the
// pre-transaction state on failure.
func (s *Store) HandleTrx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	users, tags, types := maps.Clone(s.users), maps.Clone(s.tags), maps.Clone(s.types)
	products, orders := maps.Clone(s.products), maps.Clone(s.orders)
	s.mu.Unlock()

	trxCtx, runHooks := repository.WithCommitHooks(ctx)
	if err := fn(trxCtx); err != nil {
		s.mu.Lock()
		s.users, s.tags, s.types, s.products, s.orders = users, tags, types, products, orders
		s.mu.Unlock()
		return err
	}

	runHooks(ctx)
	return nil
}

func sortedValues[T any](m map[primitive.ObjectID]T) []T {
	keys := slices.SortedFunc(maps.Keys(m), func(a, b primitive.ObjectID) int {
		return slices.Compare(a[:], b[:])
	})

	values := make([]T, 0, len(keys))
	for _, k := range keys {
		values = append(values, m[k])
	}

	return values
}

func paginate[T any](items []T, filter pkgdto.Filter) []T {
	if !filter.Paginated() {
		return items
	}

	start := min(filter.Offset(), len(items))
	end := min(start+filter.Limit, len(items))

	return items[start:end]
}

func pick[T any](m map[primitive.ObjectID]T, ids []primitive.ObjectID) []T {
	data := []T{}
	for _, id := range ids {
		if v, ok := m[id]; ok {
			data = append(data, v)
		}
	}

	return data
}

func newID(id primitive.ObjectID) primitive.ObjectID {
	if id.IsZero() {
		return primitive.NewObjectID()
	}

	return id
}
