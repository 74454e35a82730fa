package service_test

import (
	"context"
	"testing"

	"github.com/koffe-supply/koffe-be/internal/dto"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is rejected", func(t *testing.T) {
		f := newFixture()
		f.addTag(t, "Fruity")

		_, err := f.tags.AddTag(ctx, dto.TagRequest{TagName: "Fruity"})
		assert.ErrorIs(t, err, errs.ErrTagNameAlreadyExists)

		tags, err := f.tags.GetTags(ctx, pkgdto.Filter{})
		require.NoError(t, err)
		assert.Len(t, tags, 1)
	})

	t.Run("update keeps absent fields", func(t *testing.T) {
		f := newFixture()
		tag, err := f.tags.AddTag(ctx, dto.TagRequest{TagName: "Fruity", Description: "bright"})
		require.NoError(t, err)

		updated, err := f.tags.UpdateTag(ctx, dto.UpdateTagRequest{ID: tag.ID.Hex(), TagName: ptr("Floral")})
		require.NoError(t, err)
		assert.Equal(t, "Floral", updated.TagName)
		assert.Equal(t, "bright", updated.Description)

		updated, err = f.tags.UpdateTag(ctx, dto.UpdateTagRequest{ID: tag.ID.Hex(), Description: ptr("")})
		require.NoError(t, err)
		assert.Equal(t, "Floral", updated.TagName)
		assert.Empty(t, updated.Description)
	})

	t.Run("rename onto another tag", func(t *testing.T) {
		f := newFixture()
		f.addTag(t, "Fruity")
		other := f.addTag(t, "Nutty")

		_, err := f.tags.UpdateTag(ctx, dto.UpdateTagRequest{ID: other.ID.Hex(), TagName: ptr("Fruity")})
		assert.ErrorIs(t, err, errs.ErrTagNameAlreadyExists)
	})

	t.Run("referenced tag cannot be deleted", func(t *testing.T) {
		f := newFixture()
		tag := f.addTag(t, "Fruity")
		productType := f.addType(t, "Beans")
		product := f.addProduct(t, "Kenya AA", productType.ID.Hex(), tag.ID.Hex())

		err := f.tags.DeleteTag(ctx, tag.ID.Hex())
		assert.ErrorIs(t, err, errs.ErrTagInUse)
		assert.Equal(t, 409, errs.GetErrorStatusCode(err))

		require.NoError(t, f.products.DeleteProduct(ctx, product.ID))
		assert.NoError(t, f.tags.DeleteTag(ctx, tag.ID.Hex()))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		tag := f.addTag(t, "Fruity")

		require.NoError(t, f.tags.DeleteTag(ctx, tag.ID.Hex()))
		assert.ErrorIs(t, f.tags.DeleteTag(ctx, tag.ID.Hex()), errs.ErrTagNotFound)

		_, err := f.tags.GetTagByID(ctx, tag.ID.Hex())
		assert.ErrorIs(t, err, errs.ErrTagNotFound)

		_, err = f.tags.UpdateTag(ctx, dto.UpdateTagRequest{ID: "bogus", TagName: ptr("x")})
		assert.ErrorIs(t, err, errs.ErrTagNotFound)
	})
}

func TestTypeService(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name is rejected", func(t *testing.T) {
		f := newFixture()
		f.addType(t, "Beans")

		_, err := f.types.AddType(ctx, dto.TypeRequest{TypeName: "Beans"})
		assert.ErrorIs(t, err, errs.ErrTypeNameAlreadyExists)
	})

	t.Run("update", func(t *testing.T) {
		f := newFixture()
		productType, err := f.types.AddType(ctx, dto.TypeRequest{TypeName: "Beans", Description: "whole"})
		require.NoError(t, err)

		updated, err := f.types.UpdateType(ctx, dto.UpdateTypeRequest{ID: productType.ID.Hex(), TypeName: ptr("Ground")})
		require.NoError(t, err)
		assert.Equal(t, "Ground", updated.TypeName)
		assert.Equal(t, "whole", updated.Description)

		stored, err := f.types.GetTypeByID(ctx, productType.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("referenced type cannot be deleted", func(t *testing.T) {
		f := newFixture()
		productType := f.addType(t, "Beans")
		product := f.addProduct(t, "Kenya AA", productType.ID.Hex())

		assert.ErrorIs(t, f.types.DeleteType(ctx, productType.ID.Hex()), errs.ErrTypeInUse)

		require.NoError(t, f.products.DeleteProduct(ctx, product.ID))
		require.NoError(t, f.types.DeleteType(ctx, productType.ID.Hex()))
		assert.ErrorIs(t, f.types.DeleteType(ctx, productType.ID.Hex()), errs.ErrTypeNotFound)
	})

	t.Run("pagination", func(t *testing.T) {
		f := newFixture()
		for _, name := range []string{"A", "B", "C"} {
			f.addType(t, name)
		}

		page, err := f.types.GetTypes(ctx, pkgdto.Filter{Limit: 2, Page: 2})
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "C", page[0].TypeName)
	})
}
