package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserPort {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := r.db.QueryBuilder.Insert("users").
		Columns("id", "email", "birth_date", "gender", "created_at").
		Values(string(user.ID), user.Email, user.BirthDate, string(user.Gender), user.CreatedAt)
	_, err := exec(ctx, r.db, query)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query := r.db.QueryBuilder.Select("id", "email", "birth_date", "gender", "created_at").
		From("users").
		Where(squirrel.Eq{"id": string(id)})

	var (
		user      domain.User
		userID    string
		gender    string
		birthDate time.Time
	)
	if err := queryRow(ctx, r.db, query, &userID, &user.Email, &birthDate, &gender, &user.CreatedAt); err != nil {
		return nil, err
	}
	user.ID = domain.UserID(userID)
	user.Gender = domain.Gender(gender)
	user.BirthDate = birthDate.UTC()
	return &user, nil
}

func (r *UserRepository) Exists(ctx context.Context, id domain.UserID) (bool, error) {
	query := r.db.QueryBuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{"id": string(id)}).
		Suffix(")")

	var exists bool
	if err := queryRow(ctx, r.db, query, &exists); err != nil {
		return false, err
	}
	return exists, nil
}
