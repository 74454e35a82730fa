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

type TagServiceImpl struct {
	repo      repository.TagRepository
	publisher EventPublisher
}

func CreateTagService(repo repository.TagRepository, publisher EventPublisher) TagService {
	return &TagServiceImpl{repo: repo, publisher: publisher}
}

func (s *TagServiceImpl) nameLookup(ctx context.Context, name string) (primitive.ObjectID, error) {
	tag, err := s.repo.GetTagByName(ctx, name)
	return tag.ID, err
}

func (s *TagServiceImpl) AddTag(ctx context.Context, req dto.TagRequest) (resp domain.Tag, err error) {
	if err = ensureUnique(ctx, s.nameLookup, req.TagName, primitive.NilObjectID, errs.ErrTagNameAlreadyExists); err != nil {
		return
	}

	timestamp := now()
	tag := domain.Tag{
		TagName:     req.TagName,
		Description: req.Description,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	tag.ID, err = s.repo.AddTag(ctx, tag)
	if err != nil {
		return
	}

	publish(ctx, s.publisher, "tag", EventCreated, tag.ID.Hex(), tag)

	return tag, nil
}

func (s *TagServiceImpl) GetTags(ctx context.Context, filter pkgdto.Filter) (resp []domain.Tag, err error) {
	return s.repo.GetTags(ctx, filter)
}

func (s *TagServiceImpl) GetTagByID(ctx context.Context, id string) (resp domain.Tag, err error) {
	tagID, err := parseID(id, errs.ErrTagNotFound)
	if err != nil {
		return
	}

	return s.repo.GetTagByID(ctx, tagID)
}

func (s *TagServiceImpl) UpdateTag(ctx context.Context, req dto.UpdateTagRequest) (resp domain.Tag, err error) {
	tagID, err := parseID(req.ID, errs.ErrTagNotFound)
	if err != nil {
		return
	}

	tag, err := s.repo.GetTagByID(ctx, tagID)
	if err != nil {
		return
	}

	if req.TagName != nil && *req.TagName != tag.TagName {
		if err = ensureUnique(ctx, s.nameLookup, *req.TagName, tagID, errs.ErrTagNameAlreadyExists); err != nil {
			return
		}
		tag.TagName = *req.TagName
	}

	if req.Description != nil {
		tag.Description = *req.Description
	}

	tag.UpdatedAt = now()
	if err = s.repo.UpdateTag(ctx, tag); err != nil {
		return
	}

	publish(ctx, s.publisher, "tag", EventUpdated, tag.ID.Hex(), tag)

	return tag, nil
}

// DeleteTag refuses with ErrTagInUse while products reference the tag.
func (s *TagServiceImpl) DeleteTag(ctx context.Context, id string) (err error) {
	tagID, err := parseID(id, errs.ErrTagNotFound)
	if err != nil {
		return
	}

	if err = s.repo.DeleteUnreferencedTag(ctx, tagID); err != nil {
		return
	}

	publish(ctx, s.publisher, "tag", EventDeleted, id, map[string]string{"id": id})

	return nil
}
