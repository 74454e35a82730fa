package service

import (
	"context"
	"errors"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/dto"
	"github.com/koffe-supply/koffe-be/internal/repository"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"github.com/koffe-supply/koffe-be/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo       repository.UserRepository
	tokens     *utils.TokenIssuer
	publisher  EventPublisher
	bcryptCost int
}

func CreateUserService(repo repository.UserRepository, tokens *utils.TokenIssuer, publisher EventPublisher, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &UserServiceImpl{repo: repo, tokens: tokens, publisher: publisher, bcryptCost: bcryptCost}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

func (s *UserServiceImpl) usernameLookup(ctx context.Context, username string) (primitive.ObjectID, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	return user.ID, err
}

func (s *UserServiceImpl) AddUser(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error) {
	if err = ensureUnique(ctx, s.usernameLookup, req.Username, primitive.NilObjectID, errs.ErrUsernameAlreadyExists); err != nil {
		return
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return
	}

	timestamp := now()
	user := domain.User{
		FullName:       req.FullName,
		Username:       req.Username,
		HashedPassword: hash,
		Phone:          req.Phone,
		CreatedAt:      timestamp,
		UpdatedAt:      timestamp,
	}

	user.ID, err = s.repo.AddUser(ctx, user)
	if err != nil {
		return
	}

	resp = dto.NewUserResponse(user)
	publish(ctx, s.publisher, "user", EventCreated, resp.ID, resp)

	return resp, nil
}

// Login answers an unknown username and a wrong password with the same error.
func (s *UserServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, errs.ErrNotFound) {
		return resp, errs.ErrInvalidCredentials
	}
	if err != nil {
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		logger(ctx, "Login").Info().Str("username", req.Username).Msg("password mismatch")
		return resp, errs.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateJWTToken(user.ID.Hex())
	if err != nil {
		return
	}

	resp.Token = token
	resp.User = dto.LoginUser{
		Username: user.Username,
		FullName: user.FullName,
		Phone:    user.Phone,
	}

	return resp, nil
}

func (s *UserServiceImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (resp []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx, filter)
	if err != nil {
		return
	}

	resp = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, dto.NewUserResponse(user))
	}

	return resp, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (resp dto.UserResponse, err error) {
	userID, err := parseID(id, errs.ErrUserNotFound)
	if err != nil {
		return
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (resp dto.UserResponse, err error) {
	userID, err := parseID(req.ID, errs.ErrUserNotFound)
	if err != nil {
		return
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	if req.Username != nil && *req.Username != user.Username {
		if err = ensureUnique(ctx, s.usernameLookup, *req.Username, userID, errs.ErrUsernameAlreadyExists); err != nil {
			return
		}
		user.Username = *req.Username
	}

	if req.Password != nil {
		user.HashedPassword, err = s.hashPassword(*req.Password)
		if err != nil {
			return
		}
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}

	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	user.UpdatedAt = now()
	if err = s.repo.UpdateUser(ctx, user); err != nil {
		return
	}

	resp = dto.NewUserResponse(user)
	publish(ctx, s.publisher, "user", EventUpdated, resp.ID, resp)

	return resp, nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (err error) {
	userID, err := parseID(id, errs.ErrUserNotFound)
	if err != nil {
		return
	}

	if err = s.repo.DeleteUser(ctx, userID); err != nil {
		return
	}

	publish(ctx, s.publisher, "user", EventDeleted, id, map[string]string{"id": id})

	return nil
}
