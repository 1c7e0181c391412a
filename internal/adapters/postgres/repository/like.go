package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

type LikeRepository struct {
	db *postgres.DB
}

func NewLikeRepository(db *postgres.DB) port.LikePort {
	return &LikeRepository{db: db}
}

// Add is idempotent: liking the same product twice keeps a single like.
func (r *LikeRepository) Add(ctx context.Context, like *domain.Like) error {
	query := r.db.QueryBuilder.Insert("likes").
		Columns("user_id", "product_id", "created_at").
		Values(string(like.UserID), string(like.ProductID), like.CreatedAt).
		Suffix("ON CONFLICT (user_id, product_id) DO NOTHING")
	_, err := exec(ctx, r.db, query)
	return err
}

func (r *LikeRepository) Remove(ctx context.Context, userID domain.UserID, productID domain.ID) error {
	query := r.db.QueryBuilder.Delete("likes").
		Where(squirrel.Eq{"user_id": string(userID), "product_id": string(productID)})
	_, err := exec(ctx, r.db, query)
	return err
}

func (r *LikeRepository) CountByProduct(ctx context.Context, productID domain.ID) (int64, error) {
	query := r.db.QueryBuilder.Select("COUNT(*)").
		From("likes").
		Where(squirrel.Eq{"product_id": string(productID)})

	var count int64
	if err := queryRow(ctx, r.db, query, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LikeRepository) CountByProducts(ctx context.Context, productIDs []domain.ID) (map[domain.ID]int64, error) {
	counts := make(map[domain.ID]int64, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	query := r.db.QueryBuilder.Select("product_id", "COUNT(*)").
		From("likes").
		Where(squirrel.Eq{"product_id": idStrings(productIDs)}).
		GroupBy("product_id")

	err := queryRows(ctx, r.db, query, func(rows pgx.Rows) error {
		var (
			id    string
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return err
		}
		counts[domain.ID(id)] = count
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
