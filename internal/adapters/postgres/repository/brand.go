package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

type BrandRepository struct {
	db *postgres.DB
}

func NewBrandRepository(db *postgres.DB) port.BrandPort {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	id := uuid.NewString()
	query := r.db.QueryBuilder.Insert("brands").
		Columns("id", "name", "description", "created_at").
		Values(id, brand.Name, brand.Description, brand.CreatedAt)
	if _, err := exec(ctx, r.db, query); err != nil {
		return err
	}
	brand.ID = domain.ID(id)
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error) {
	query := r.db.QueryBuilder.Select("id", "name", "description", "created_at").
		From("brands").
		Where(squirrel.Eq{"id": string(id)})

	var (
		brand   domain.Brand
		brandID string
	)
	if err := queryRow(ctx, r.db, query, &brandID, &brand.Name, &brand.Description, &brand.CreatedAt); err != nil {
		return nil, err
	}
	brand.ID = domain.ID(brandID)
	return &brand, nil
}
