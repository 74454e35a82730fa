package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/koffe-supply/koffe-be/internal/dto"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash", func(t *testing.T) {
		f := newFixture()

		user, err := f.users.AddUser(ctx, dto.UserRequest{FullName: "Ana", Username: "ana", Password: "s3cret", Phone: "0812"})
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.NotEmpty(t, user.ID)

		stored, err := f.store.Users().GetUserByUsername(ctx, "ana")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret", stored.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.HashedPassword), []byte("s3cret")))
		assert.Equal(t, []string{"user_created"}, f.events.Types())
	})

	t.Run("duplicate username", func(t *testing.T) {
		f := newFixture()

		_, err := f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "one"})
		require.NoError(t, err)

		_, err = f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "two"})
		assert.ErrorIs(t, err, errs.ErrUsernameAlreadyExists)
		assert.ErrorIs(t, err, errs.ErrDuplicate)

		users, err := f.users.GetUsers(ctx, pkgdto.Filter{})
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.users.AddUser(ctx, dto.UserRequest{FullName: "Ana", Username: "ana", Password: "s3cret", Phone: "0812"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := f.users.Login(ctx, dto.LoginRequest{Username: "ana", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, dto.LoginUser{Username: "ana", FullName: "Ana", Phone: "0812"}, resp.User)

		claims, err := f.tokens.ParseJWTToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.UserID)
		assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, wrongPassword := f.users.Login(ctx, dto.LoginRequest{Username: "ana", Password: "nope"})
		_, unknownUser := f.users.Login(ctx, dto.LoginRequest{Username: "bob", Password: "s3cret"})

		assert.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, errs.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	user, err := f.users.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, user)

	for _, id := range []string{"not-an-id", "64b7f0c2a1b2c3d4e5f60718"} {
		_, err = f.users.GetUserByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrUserNotFound, id)
	}
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("absent fields are kept", func(t *testing.T) {
		f := newFixture()
		created, err := f.users.AddUser(ctx, dto.UserRequest{FullName: "Ana", Username: "ana", Password: "pw", Phone: "0812"})
		require.NoError(t, err)

		updated, err := f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: created.ID, Phone: ptr("0999")})
		require.NoError(t, err)
		assert.Equal(t, "0999", updated.Phone)
		assert.Equal(t, created.FullName, updated.FullName)
		assert.Equal(t, created.Username, updated.Username)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)

		_, err = f.users.Login(ctx, dto.LoginRequest{Username: "ana", Password: "pw"})
		assert.NoError(t, err)
	})

	t.Run("present empty value clears the field", func(t *testing.T) {
		f := newFixture()
		created, err := f.users.AddUser(ctx, dto.UserRequest{FullName: "Ana", Username: "ana", Password: "pw"})
		require.NoError(t, err)

		updated, err := f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: created.ID, FullName: ptr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.FullName)
	})

	t.Run("password change is hashed", func(t *testing.T) {
		f := newFixture()
		created, err := f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "old"})
		require.NoError(t, err)

		_, err = f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: created.ID, Password: ptr("new")})
		require.NoError(t, err)

		_, err = f.users.Login(ctx, dto.LoginRequest{Username: "ana", Password: "old"})
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		_, err = f.users.Login(ctx, dto.LoginRequest{Username: "ana", Password: "new"})
		assert.NoError(t, err)
	})

	t.Run("username taken by another user", func(t *testing.T) {
		f := newFixture()
		_, err := f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "pw"})
		require.NoError(t, err)
		bob, err := f.users.AddUser(ctx, dto.UserRequest{Username: "bob", Password: "pw"})
		require.NoError(t, err)

		_, err = f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: bob.ID, Username: ptr("ana")})
		assert.ErrorIs(t, err, errs.ErrUsernameAlreadyExists)

		_, err = f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: bob.ID, Username: ptr("bob")})
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture()
		_, err := f.users.UpdateUser(ctx, dto.UpdateUserRequest{ID: "64b7f0c2a1b2c3d4e5f60718", Phone: ptr("1")})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestDeleteUserTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.users.AddUser(ctx, dto.UserRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(ctx, created.ID))
	assert.ErrorIs(t, f.users.DeleteUser(ctx, created.ID), errs.ErrUserNotFound)
	assert.Equal(t, []string{"user_created", "user_deleted"}, f.events.Types())
}

func TestAddUserRejectsPasswordOverBcryptLimit(t *testing.T) {
	f := newFixture()

	// 40 runes, 80 bytes
	_, err := f.users.AddUser(context.Background(), dto.UserRequest{Username: "latte", Password: strings.Repeat("é", 40)})

	assert.ErrorIs(t, err, errs.ErrPasswordTooLong)
	assert.Equal(t, http.StatusBadRequest, errs.GetErrorStatusCode(err))
}
