package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"github.com/rafaelleal24/commerce/internal/adapters/postgres"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

var orderColumns = []string{"id", "user_id", "status", "total_amount", "paid_at", "created_at", "updated_at"}

type OrderRepository struct {
	db     *postgres.DB
	tx     port.TransactionManager
	outbox outbox.Repository
}

func NewOrderRepository(db *postgres.DB, outbox outbox.Repository) port.OrderPort {
	return &OrderRepository{
		db:     db,
		tx:     postgres.NewTransactionManager(db),
		outbox: outbox,
	}
}

// CreateWithOutbox writes the order, its items and its order.placed entry in
// one transaction, joining the caller's when there is one.
func (r *OrderRepository) CreateWithOutbox(ctx context.Context, order *domain.Order) error {
	if order.ID != "" {
		return errors.New("cannot create order with existing ID")
	}

	return r.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return r.insertWithOutbox(txCtx, order)
	})
}

func (r *OrderRepository) insertWithOutbox(ctx context.Context, order *domain.Order) error {
	id := uuid.NewString()
	now := time.Now()

	query := r.db.QueryBuilder.Insert("orders").
		Columns(orderColumns...).
		Values(id, string(order.UserID), string(order.Status), order.TotalAmount.Int64(), order.PaidAt, now, now)
	if _, err := exec(ctx, r.db, query); err != nil {
		return err
	}

	if len(order.Items) > 0 {
		items := r.db.QueryBuilder.Insert("order_items").
			Columns("order_id", "position", "product_id", "product_name", "quantity", "unit_price")
		for i, item := range order.Items {
			items = items.Values(id, i, string(item.ProductID), item.ProductName, item.Quantity, item.UnitPrice.Int64())
		}
		if _, err := exec(ctx, r.db, items); err != nil {
			return err
		}
	}

	order.ID = domain.ID(id)
	order.CreatedAt = now
	order.UpdatedAt = now

	event, err := domain.NewOrderPlacedEvent(order)
	if err != nil {
		order.ID = ""
		return err
	}
	eventData, err := json.Marshal(event)
	if err != nil {
		order.ID = ""
		return err
	}

	if err := r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	}); err != nil {
		order.ID = ""
		return err
	}
	return nil
}

func (r *OrderRepository) GetByIDAndUser(ctx context.Context, id domain.ID, userID domain.UserID) (*domain.Order, error) {
	query := r.db.QueryBuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": string(id), "user_id": string(userID)})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	order, err := scanOrder(r.db.Conn(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, parseError(err)
	}

	if err := r.loadItems(ctx, map[domain.ID]*domain.Order{order.ID: order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) GetAllByUser(ctx context.Context, userID domain.UserID) ([]*domain.Order, error) {
	query := r.db.QueryBuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"user_id": string(userID)}).
		OrderBy("created_at DESC", "id DESC")

	orders := []*domain.Order{}
	byID := map[domain.ID]*domain.Order{}
	err := queryRows(ctx, r.db, query, func(rows pgx.Rows) error {
		o, err := scanOrder(rows)
		if err != nil {
			return err
		}
		orders = append(orders, o)
		byID[o.ID] = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, byID); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orders map[domain.ID]*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, string(id))
	}

	query := r.db.QueryBuilder.Select("order_id", "product_id", "product_name", "quantity", "unit_price").
		From("order_items").
		Where(squirrel.Eq{"order_id": ids}).
		OrderBy("order_id", "position")

	return queryRows(ctx, r.db, query, func(rows pgx.Rows) error {
		var (
			orderID   string
			productID string
			item      domain.OrderItem
			unitPrice int64
		)
		if err := rows.Scan(&orderID, &productID, &item.ProductName, &item.Quantity, &unitPrice); err != nil {
			return err
		}
		item.ProductID = domain.ID(productID)
		item.UnitPrice = domain.Amount(unitPrice)

		o := orders[domain.ID(orderID)]
		o.Items = append(o.Items, item)
		return nil
	})
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		id     string
		userID string
		status string
		total  int64
	)
	if err := row.Scan(&id, &userID, &status, &total, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.ID = domain.ID(id)
	o.UserID = domain.UserID(userID)
	o.Status = domain.OrderStatus(status)
	o.TotalAmount = domain.Amount(total)
	o.Items = []domain.OrderItem{}
	return &o, nil
}
