package repository

import (
	"context"

	"github.com/koffe-supply/koffe-be/internal/domain"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/database/mongodb"
	pkgdto "github.com/koffe-supply/koffe-be/pkg/dto"
	"github.com/koffe-supply/koffe-be/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(mongodb.UsersCollection)
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	return insertOne(ctx, r.collection(), data, errs.ErrUsernameAlreadyExists)
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error) {
	return findAll[domain.User](ctx, r.collection(), bson.D{}, findOptions(filter))
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (data domain.User, err error) {
	return findOne[domain.User](ctx, r.collection(), bson.M{"_id": id}, errs.ErrUserNotFound)
}

func (r *UserRepositoryImpl) GetUserByUsername(ctx context.Context, username string) (data domain.User, err error) {
	return findOne[domain.User](ctx, r.collection(), bson.M{"username": username}, errs.ErrUserNotFound)
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	set := bson.M{
		"fullName":  data.FullName,
		"username":  data.Username,
		"password":  data.HashedPassword,
		"phone":     data.Phone,
		"updatedAt": data.UpdatedAt,
	}

	return updateByID(ctx, r.collection(), data.ID, set, errs.ErrUserNotFound, errs.ErrUsernameAlreadyExists)
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) (err error) {
	return deleteByID(ctx, r.collection(), id, errs.ErrUserNotFound)
}
