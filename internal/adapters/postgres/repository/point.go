package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type PointRepository struct {
	db *postgres.DB
}

func NewPointRepository(db *postgres.DB) port.PointPort {
	return &PointRepository{db: db}
}

func (r *PointRepository) Create(ctx context.Context, point *domain.Point) error {
	id := uuid.NewString()
	query := r.db.QueryBuilder.Insert("points").
		Columns("id", "user_id", "balance", "version", "created_at", "updated_at").
		Values(id, string(point.UserID), point.Balance.Int64(), point.Version, point.CreatedAt, point.UpdatedAt)
	if _, err := exec(ctx, r.db, query); err != nil {
		return err
	}
	point.ID = domain.ID(id)
	return nil
}

func (r *PointRepository) GetByUserID(ctx context.Context, userID domain.UserID) (*domain.Point, error) {
	query := forUpdate(ctx, r.db, r.db.QueryBuilder.
		Select("id", "user_id", "balance", "version", "created_at", "updated_at").
		From("points").
		Where(squirrel.Eq{"user_id": string(userID)}))

	var (
		point   domain.Point
		id      string
		owner   string
		balance int64
	)
	if err := queryRow(ctx, r.db, query, &id, &owner, &balance, &point.Version, &point.CreatedAt, &point.UpdatedAt); err != nil {
		return nil, err
	}

	b, err := domain.NewPointBalance(balance)
	if err != nil {
		return nil, err
	}
	point.ID = domain.ID(id)
	point.UserID = domain.UserID(owner)
	point.Balance = b
	return &point, nil
}

func (r *PointRepository) Update(ctx context.Context, point *domain.Point) error {
	now := time.Now()
	query := r.db.QueryBuilder.Update("points").
		Set("balance", point.Balance.Int64()).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": string(point.ID), "version": point.Version})

	tag, err := exec(ctx, r.db, query)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return serviceerrors.NewConflictError("document was modified concurrently")
	}
	point.Version++
	point.UpdatedAt = now
	return nil
}
