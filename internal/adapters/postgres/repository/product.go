package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

var productColumns = []string{"id", "brand_id", "name", "description", "price", "stock", "version", "created_at", "updated_at"}

type ProductRepository struct {
	db *postgres.DB
}

func NewProductRepository(db *postgres.DB) port.ProductPort {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	id := uuid.NewString()
	query := r.db.QueryBuilder.Insert("products").
		Columns(productColumns...).
		Values(id, string(product.BrandID), product.Name, product.Description,
			product.Price.Int64(), product.Stock.Int(), product.Version, product.CreatedAt, product.UpdatedAt)
	if _, err := exec(ctx, r.db, query); err != nil {
		return err
	}
	product.ID = domain.ID(id)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	query := forUpdate(ctx, r.db, r.db.QueryBuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": string(id)}))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	product, err := scanProduct(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, parseError(err)
	}
	return product, nil
}

// GetAllByIDs locks rows in id order inside a transaction so that two
// overlapping orders cannot deadlock on each other.
func (r *ProductRepository) GetAllByIDs(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}

	query := forUpdate(ctx, r.db, r.db.QueryBuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": idStrings(ids)}).
		OrderBy("id"))
	return r.list(ctx, query)
}

func (r *ProductRepository) List(ctx context.Context, brandID *domain.ID) ([]*domain.Product, error) {
	query := r.db.QueryBuilder.Select(productColumns...).
		From("products").
		OrderBy("created_at DESC", "id DESC")
	if brandID != nil {
		query = query.Where(squirrel.Eq{"brand_id": string(*brandID)})
	}
	return r.list(ctx, query)
}

func (r *ProductRepository) UpdateStock(ctx context.Context, product *domain.Product) error {
	now := time.Now()
	query := r.db.QueryBuilder.Update("products").
		Set("stock", product.Stock.Int()).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": string(product.ID), "version": product.Version})

	tag, err := exec(ctx, r.db, query)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return serviceerrors.NewConflictError("product stock was modified concurrently")
	}
	product.Version++
	product.UpdatedAt = now
	return nil
}

func (r *ProductRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Product, error) {
	products := []*domain.Product{}
	err := queryRows(ctx, r.db, query, func(rows pgx.Rows) error {
		p, err := scanProduct(rows)
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p       domain.Product
		id      string
		brandID string
		price   int64
		stock   int
	)
	if err := row.Scan(&id, &brandID, &p.Name, &p.Description, &price, &stock, &p.Version, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	amount, err := domain.NewAmount(price)
	if err != nil {
		return nil, err
	}
	s, err := domain.NewStock(stock)
	if err != nil {
		return nil, err
	}
	p.ID = domain.ID(id)
	p.BrandID = domain.ID(brandID)
	p.Price = amount
	p.Stock = s
	return &p, nil
}
