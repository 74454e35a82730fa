package memory

import (
	"context"
	"slices"

	"github.com/koffe-supply/koffe-be/internal/domain"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct{ s *Store }

func (r *userRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == data.Username {
			return primitive.NilObjectID, errs.ErrUsernameAlreadyExists
		}
	}

	data.ID = newID(data.ID)
	r.s.users[data.ID] = data
	return data.ID, nil
}

func (r *userRepository) GetUsers(ctx context.Context, filter pkgdto.Filter) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return paginate(sortedValues(r.s.users), filter), nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, errs.ErrUserNotFound
	}
	return u, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, errs.ErrUserNotFound
}

func (r *userRepository) UpdateUser(ctx context.Context, data domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[data.ID]
	if !ok {
		return errs.ErrUserNotFound
	}
	for id, u := range r.s.users {
		if id != data.ID && u.Username == data.Username {
			return errs.ErrUsernameAlreadyExists
		}
	}

	data.CreatedAt = stored.CreatedAt
	r.s.users[data.ID] = data
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return errs.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}

type tagRepository struct{ s *Store }

func (r *tagRepository) AddTag(ctx context.Context, data domain.Tag) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tags {
		if t.TagName == data.TagName {
			return primitive.NilObjectID, errs.ErrTagNameAlreadyExists
		}
	}

	data.ID = newID(data.ID)
	r.s.tags[data.ID] = data
	return data.ID, nil
}

func (r *tagRepository) GetTags(ctx context.Context, filter pkgdto.Filter) ([]domain.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return paginate(sortedValues(r.s.tags), filter), nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id primitive.ObjectID) (domain.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tags[id]
	if !ok {
		return domain.Tag{}, errs.ErrTagNotFound
	}
	return t, nil
}

func (r *tagRepository) GetTagByName(ctx context.Context, name string) (domain.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.tags {
		if t.TagName == name {
			return t, nil
		}
	}
	return domain.Tag{}, errs.ErrTagNotFound
}

func (r *tagRepository) GetTagsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return pick(r.s.tags, ids), nil
}

func (r *tagRepository) UpdateTag(ctx context.Context, data domain.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.tags[data.ID]
	if !ok {
		return errs.ErrTagNotFound
	}
	for id, t := range r.s.tags {
		if id != data.ID && t.TagName == data.TagName {
			return errs.ErrTagNameAlreadyExists
		}
	}

	stored.TagName = data.TagName
	stored.Description = data.Description
	stored.UpdatedAt = data.UpdatedAt
	r.s.tags[data.ID] = stored
	return nil
}

func (r *tagRepository) DeleteUnreferencedTag(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tags[id]
	if !ok {
		return errs.ErrTagNotFound
	}
	if t.ProductCount > 0 {
		return errs.ErrTagInUse
	}
	delete(r.s.tags, id)
	return nil
}

func (r *tagRepository) IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched int64
	for _, id := range ids {
		if t, ok := r.s.tags[id]; ok {
			t.ProductCount += delta
			r.s.tags[id] = t
			matched++
		}
	}
	return matched, nil
}

type typeRepository struct{ s *Store }

func (r *typeRepository) AddType(ctx context.Context, data domain.Type) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.types {
		if t.TypeName == data.TypeName {
			return primitive.NilObjectID, errs.ErrTypeNameAlreadyExists
		}
	}

	data.ID = newID(data.ID)
	r.s.types[data.ID] = data
	return data.ID, nil
}

func (r *typeRepository) GetTypes(ctx context.Context, filter pkgdto.Filter) ([]domain.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return paginate(sortedValues(r.s.types), filter), nil
}

func (r *typeRepository) GetTypeByID(ctx context.Context, id primitive.ObjectID) (domain.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.types[id]
	if !ok {
		return domain.Type{}, errs.ErrTypeNotFound
	}
	return t, nil
}

func (r *typeRepository) GetTypeByName(ctx context.Context, name string) (domain.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.types {
		if t.TypeName == name {
			return t, nil
		}
	}
	return domain.Type{}, errs.ErrTypeNotFound
}

func (r *typeRepository) GetTypesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Type, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return pick(r.s.types, ids), nil
}

func (r *typeRepository) UpdateType(ctx context.Context, data domain.Type) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.types[data.ID]
	if !ok {
		return errs.ErrTypeNotFound
	}
	for id, t := range r.s.types {
		if id != data.ID && t.TypeName == data.TypeName {
			return errs.ErrTypeNameAlreadyExists
		}
	}

	stored.TypeName = data.TypeName
	stored.Description = data.Description
	stored.UpdatedAt = data.UpdatedAt
	r.s.types[data.ID] = stored
	return nil
}

func (r *typeRepository) DeleteUnreferencedType(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.types[id]
	if !ok {
		return errs.ErrTypeNotFound
	}
	if t.ProductCount > 0 {
		return errs.ErrTypeInUse
	}
	delete(r.s.types, id)
	return nil
}

func (r *typeRepository) IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var matched int64
	for _, id := range ids {
		if t, ok := r.s.types[id]; ok {
			t.ProductCount += delta
			r.s.types[id] = t
			matched++
		}
	}
	return matched, nil
}

type productRepository struct{ s *Store }

func cloneProduct(p domain.Product) domain.Product {
	p.Tags = slices.Clone(p.Tags)
	p.ImageMore = slices.Clone(p.ImageMore)
	if p.DescriptionMore != nil {
		more := *p.DescriptionMore
		p.DescriptionMore = &more
	}
	if p.Price != nil {
		price := *p.Price
		p.Price = &price
	}
	return p
}

func (r *productRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.products {
		if p.ProductName == data.ProductName {
			return primitive.NilObjectID, errs.ErrProductNameAlreadyExists
		}
	}

	data.ID = newID(data.ID)
	r.s.products[data.ID] = cloneProduct(data)
	return data.ID, nil
}

func (r *productRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return paginate(sortedValues(r.s.products), filter), nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *productRepository) GetProductForUpdate(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	return r.GetProductByID(ctx, id)
}

func (r *productRepository) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.products {
		if p.ProductName == name {
			return cloneProduct(p), nil
		}
	}
	return domain.Product{}, errs.ErrProductNotFound
}

func (r *productRepository) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return pick(r.s.products, ids), nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.products[data.ID]
	if !ok {
		return errs.ErrProductNotFound
	}
	for id, p := range r.s.products {
		if id != data.ID && p.ProductName == data.ProductName {
			return errs.ErrProductNameAlreadyExists
		}
	}

	data.CreatedAt = stored.CreatedAt
	r.s.products[data.ID] = cloneProduct(data)
	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return domain.Product{}, errs.ErrProductNotFound
	}
	delete(r.s.products, id)
	return p, nil
}

type orderRepository struct{ s *Store }

func cloneOrder(o domain.Order) domain.Order {
	o.OrderDetail = slices.Clone(o.OrderDetail)
	return o
}

func (r *orderRepository) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	data.ID = newID(data.ID)
	r.s.orders[data.ID] = cloneOrder(data)
	return data.ID, nil
}

func (r *orderRepository) GetOrders(ctx context.Context, filter pkgdto.Filter) ([]domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return paginate(sortedValues(r.s.orders), filter), nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id primitive.ObjectID) (domain.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.orders[id]
	if !ok {
		return domain.Order{}, errs.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, data domain.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.orders[data.ID]
	if !ok {
		return errs.ErrOrderNotFound
	}

	data.CreatedAt = stored.CreatedAt
	r.s.orders[data.ID] = cloneOrder(data)
	return nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return errs.ErrOrderNotFound
	}
	delete(r.s.orders, id)
	return nil
}
