package service

import (
	"context"
	"slices"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/repository"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	trx       repository.Transactor
	repo      repository.ProductRepository
	tagRepo   repository.TagRepository
	typeRepo  repository.TypeRepository
	publisher EventPublisher
}

func CreateProductService(trx repository.Transactor, repo repository.ProductRepository, tagRepo repository.TagRepository, typeRepo repository.TypeRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		trx:       trx,
		repo:      repo,
		tagRepo:   tagRepo,
		typeRepo:  typeRepo,
		publisher: publisher,
	}
}

func (s *ProductServiceImpl) nameLookup(ctx context.Context, name string) (primitive.ObjectID, error) {
	product, err := s.repo.GetProductByName(ctx, name)
	return product.ID, err
}

func toDescriptionMore(more *dto.DescriptionMore) *domain.DescriptionMore {
	if more == nil {
		return nil
	}

	return &domain.DescriptionMore{
		RoastLevel:  more.RoastLevel,
		Flavor:      more.Flavor,
		Brewing:     more.Brewing,
		Altitude:    more.Altitude,
		Variety:     more.Variety,
		Cultivation: more.Cultivation,
	}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (resp dto.ProductResponse, err error) {
	tagIDs, err := parseReferences(req.Tags, errs.ErrInvalidTags)
	if err != nil {
		return
	}

	typeID, err := primitive.ObjectIDFromHex(req.Type)
	if err != nil {
		return resp, errs.ErrInvalidType
	}

	timestamp := now()
	product := domain.Product{
		ProductName:     req.ProductName,
		Tags:            tagIDs,
		Description:     req.Description,
		DescriptionMore: toDescriptionMore(req.DescriptionMore),
		Type:            typeID,
		Image:           req.Image,
		ImageMore:       req.ImageMore,
		Price:           req.Price,
		CreatedAt:       timestamp,
		UpdatedAt:       timestamp,
	}

	err = s.trx.HandleTrx(ctx, func(ctx context.Context) error {
		if err := ensureUnique(ctx, s.nameLookup, product.ProductName, primitive.NilObjectID, errs.ErrProductNameAlreadyExists); err != nil {
			return err
		}

		if err := ensureTagsExist(ctx, s.tagRepo, tagIDs); err != nil {
			return err
		}

		if err := ensureTypeExists(ctx, s.typeRepo, typeID); err != nil {
			release(ctx, s.tagRepo, tagIDs)
			return err
		}

		id, err := s.repo.AddProduct(ctx, product)
		if err != nil {
			release(ctx, s.tagRepo, tagIDs)
			release(ctx, s.typeRepo, []primitive.ObjectID{typeID})
			return err
		}

		product.ID = id
		return nil
	})
	if err != nil {
		return
	}

	resp, err = s.expandOne(ctx, product)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "product", EventCreated, resp.ID, product)

	return resp, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (resp []dto.ProductResponse, err error) {
	products, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	return s.expand(ctx, products)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	productID, err := parseID(id, errs.ErrProductNotFound)
	if err != nil {
		return
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}

	return s.expandOne(ctx, product)
}

// UpdateProduct moves the product's tag and type references when they change.
// The new references are taken before the old ones are released.
func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req dto.UpdateProductRequest) (resp dto.ProductResponse, err error) {
	productID, err := parseID(req.ID, errs.ErrProductNotFound)
	if err != nil {
		return
	}

	var newTags []primitive.ObjectID
	if req.Tags != nil {
		newTags, err = parseReferences(*req.Tags, errs.ErrInvalidTags)
		if err != nil {
			return
		}
	}

	var newType primitive.ObjectID
	if req.Type != nil {
		newType, err = primitive.ObjectIDFromHex(*req.Type)
		if err != nil {
			return resp, errs.ErrInvalidType
		}
	}

	var product domain.Product
	err = s.trx.HandleTrx(ctx, func(ctx context.Context) error {
		var err error
		product, err = s.repo.GetProductForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		if req.ProductName != nil && *req.ProductName != product.ProductName {
			if err := ensureUnique(ctx, s.nameLookup, *req.ProductName, productID, errs.ErrProductNameAlreadyExists); err != nil {
				return err
			}
			product.ProductName = *req.ProductName
		}

		oldTags, oldType := product.Tags, product.Type
		tagsChanged := req.Tags != nil && !slices.Equal(newTags, oldTags)
		typeChanged := req.Type != nil && newType != oldType

		if tagsChanged {
			if err := ensureTagsExist(ctx, s.tagRepo, newTags); err != nil {
				return err
			}
			product.Tags = newTags
		}

		if typeChanged {
			if err := ensureTypeExists(ctx, s.typeRepo, newType); err != nil {
				if tagsChanged {
					release(ctx, s.tagRepo, newTags)
				}
				return err
			}
			product.Type = newType
		}

		applyProductUpdate(&product, req)
		product.UpdatedAt = now()

		if err := s.repo.UpdateProduct(ctx, product); err != nil {
			if tagsChanged {
				release(ctx, s.tagRepo, newTags)
			}
			if typeChanged {
				release(ctx, s.typeRepo, []primitive.ObjectID{newType})
			}
			return err
		}

		if tagsChanged {
			release(ctx, s.tagRepo, oldTags)
		}
		if typeChanged {
			release(ctx, s.typeRepo, []primitive.ObjectID{oldType})
		}

		return nil
	})
	if err != nil {
		return
	}

	resp, err = s.expandOne(ctx, product)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "product", EventUpdated, resp.ID, product)

	return resp, nil
}

func applyProductUpdate(product *domain.Product, req dto.UpdateProductRequest) {
	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.DescriptionMore != nil {
		product.DescriptionMore = toDescriptionMore(req.DescriptionMore)
	}

	if req.Image != nil {
		product.Image = *req.Image
	}

	if req.ImageMore != nil {
		product.ImageMore = *req.ImageMore
	}

	if req.Price != nil {
		product.Price = req.Price
	}
}

// DeleteProduct always succeeds for a stored product. Orders keep the dangling
// id and expand it to null.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := parseID(id, errs.ErrProductNotFound)
	if err != nil {
		return
	}

	err = s.trx.HandleTrx(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.DeleteProduct(ctx, productID)
		if err != nil {
			return err
		}

		release(ctx, s.tagRepo, deleted.Tags)
		release(ctx, s.typeRepo, []primitive.ObjectID{deleted.Type})

		return nil
	})
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "product", EventDeleted, id, map[string]string{"id": id})

	return nil
}

func (s *ProductServiceImpl) expandOne(ctx context.Context, product domain.Product) (dto.ProductResponse, error) {
	resp, err := s.expand(ctx, []domain.Product{product})
	if err != nil {
		return dto.ProductResponse{}, err
	}

	return resp[0], nil
}

// expand resolves tags and types for all products with one lookup per collection.
func (s *ProductServiceImpl) expand(ctx context.Context, products []domain.Product) ([]dto.ProductResponse, error) {
	var tagIDs, typeIDs []primitive.ObjectID
	for _, product := range products {
		tagIDs = append(tagIDs, product.Tags...)
		typeIDs = append(typeIDs, product.Type)
	}

	tags, err := s.tagRepo.GetTagsByIDs(ctx, uniqueIDs(tagIDs))
	if err != nil {
		return nil, err
	}

	types, err := s.typeRepo.GetTypesByIDs(ctx, uniqueIDs(typeIDs))
	if err != nil {
		return nil, err
	}

	tagsByID := make(map[string]domain.Tag, len(tags))
	for _, tag := range tags {
		tagsByID[tag.ID.Hex()] = tag
	}

	typesByID := make(map[string]domain.Type, len(types))
	for _, t := range types {
		typesByID[t.ID.Hex()] = t
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, dto.NewProductResponse(product, tagsByID, typesByID))
	}

	return resp, nil
}

func uniqueIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
