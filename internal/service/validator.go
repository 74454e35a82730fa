package service

import (
	"context"
	"errors"

	"github.com/koffe-supply/koffe-be/internal/repository"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nameLookup func(ctx context.Context, name string) (primitive.ObjectID, error)

// ensureUnique fails with duplicate when a record other than excludeID holds name.
func ensureUnique(ctx context.Context, lookup nameLookup, name string, excludeID primitive.ObjectID, duplicate error) error {
	id, err := lookup(ctx, name)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !excludeID.IsZero() && id == excludeID {
		return nil
	}

	return duplicate
}

// parseID maps a malformed hex id to notFound; no record can have it.
func parseID(id string, notFound error) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}

	return objectID, nil
}

// parseReferences parses and de-duplicates ids, preserving first-seen order.
func parseReferences(ids []string, invalid error) ([]primitive.ObjectID, error) {
	parsed := make([]primitive.ObjectID, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))

	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, invalid
		}

		if _, ok := seen[objectID]; ok {
			continue
		}
		seen[objectID] = struct{}{}
		parsed = append(parsed, objectID)
	}

	return parsed, nil
}

type productCounter interface {
	IncrementProductCount(ctx context.Context, ids []primitive.ObjectID, delta int64) (int64, error)
}

// acquire takes a product reference on every id. Unless all ids exist it
// releases what it took and fails with invalid, so a missing tag or type can
// never be counted and a counted one cannot be deleted.
func acquire(ctx context.Context, counter productCounter, ids []primitive.ObjectID, invalid error) error {
	if len(ids) == 0 {
		return nil
	}

	matched, err := counter.IncrementProductCount(ctx, ids, 1)
	if err != nil {
		return err
	}

	if matched != int64(len(ids)) {
		release(ctx, counter, ids)
		return invalid
	}

	return nil
}

func release(ctx context.Context, counter productCounter, ids []primitive.ObjectID) {
	if len(ids) == 0 {
		return
	}

	if _, err := counter.IncrementProductCount(ctx, ids, -1); err != nil {
		logger(ctx, "release").Error().Err(err).Msg("failed to release product references")
	}
}

// ensureTagsExist references every tag in ids or fails with ErrInvalidTags.
func ensureTagsExist(ctx context.Context, tags repository.TagRepository, ids []primitive.ObjectID) error {
	return acquire(ctx, tags, ids, errs.ErrInvalidTags)
}

// ensureTypeExists references the type or fails with ErrInvalidType.
func ensureTypeExists(ctx context.Context, types repository.TypeRepository, id primitive.ObjectID) error {
	return acquire(ctx, types, []primitive.ObjectID{id}, errs.ErrInvalidType)
}

// ensureProductsExist fails with ErrInvalidProducts unless every id is stored.
func ensureProductsExist(ctx context.Context, products repository.ProductRepository, ids []primitive.ObjectID) error {
	found, err := products.GetProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}

	if len(found) != len(ids) {
		return errs.ErrInvalidProducts
	}

	return nil
}
