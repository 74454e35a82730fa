package service

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/repository"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TypeServiceImpl struct {
	repo      repository.TypeRepository
	publisher EventPublisher
}

func CreateTypeService(repo repository.TypeRepository, publisher EventPublisher) TypeService {
	return &TypeServiceImpl{repo: repo, publisher: publisher}
}

func (s *TypeServiceImpl) nameLookup(ctx context.Context, name string) (primitive.ObjectID, error) {
	t, err := s.repo.GetTypeByName(ctx, name)
	return t.ID, err
}

func (s *TypeServiceImpl) AddType(ctx context.Context, req dto.TypeRequest) (resp domain.Type, err error) {
	if err = ensureUnique(ctx, s.nameLookup, req.TypeName, primitive.NilObjectID, errs.ErrTypeNameAlreadyExists); err != nil {
		return
	}

	timestamp := now()
	productType := domain.Type{
		TypeName:    req.TypeName,
		Description: req.Description,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	productType.ID, err = s.repo.AddType(ctx, productType)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "type", EventCreated, productType.ID.Hex(), productType)

	return productType, nil
}

func (s *TypeServiceImpl) GetTypes(ctx context.Context, filter pkgdto.Filter) (resp []domain.Type, err error) {
	return s.repo.GetTypes(ctx, filter)
}

func (s *TypeServiceImpl) GetTypeByID(ctx context.Context, id string) (resp domain.Type, err error) {
	typeID, err := parseID(id, errs.ErrTypeNotFound)
	if err != nil {
		return
	}

	return s.repo.GetTypeByID(ctx, typeID)
}

func (s *TypeServiceImpl) UpdateType(ctx context.Context, req dto.UpdateTypeRequest) (resp domain.Type, err error) {
	typeID, err := parseID(req.ID, errs.ErrTypeNotFound)
	if err != nil {
		return
	}

	productType, err := s.repo.GetTypeByID(ctx, typeID)
	if err != nil {
		return
	}

	if req.TypeName != nil && *req.TypeName != productType.TypeName {
		if err = ensureUnique(ctx, s.nameLookup, *req.TypeName, typeID, errs.ErrTypeNameAlreadyExists); err != nil {
			return
		}
		productType.TypeName = *req.TypeName
	}

	if req.Description != nil {
		productType.Description = *req.Description
	}

	productType.UpdatedAt = now()
	if err = s.repo.UpdateType(ctx, productType); err != nil {
		return
	}

	publish(ctx, s.publisher, "type", EventUpdated, productType.ID.Hex(), productType)

	return productType, nil
}

func (s *TypeServiceImpl) DeleteType(ctx context.Context, id string) (err error) {
	typeID, err := parseID(id, errs.ErrTypeNotFound)
	if err != nil {
		return
	}

	if err = s.repo.DeleteUnreferencedType(ctx, typeID); err != nil {
		return
	}

	publish(ctx, s.publisher, "type", EventDeleted, id, map[string]string{"id": id})

	return nil
}
