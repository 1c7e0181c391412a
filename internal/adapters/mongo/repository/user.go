package repository

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	*BaseRepository[document.UserDocument]
}

func NewUserRepository(db *mongo.Database) port.UserPort {
	return &UserRepository{
		BaseRepository: NewBaseRepository[document.UserDocument](db),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.Insert(ctx, document.ToUserDocument(user))
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	doc, err := r.FindOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *UserRepository) Exists(ctx context.Context, id domain.UserID) (bool, error) {
	n, err := r.Count(ctx, bson.M{"_id": string(id)}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
