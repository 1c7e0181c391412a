package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafaelleal24/commerce/internal/adapters/mongo/document"
	"github.com/rafaelleal24/commerce/internal/adapters/outbox"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
	db     *mongo.Database
	outbox outbox.Repository
}

func NewOrderRepository(db *mongo.Database, outbox outbox.Repository) port.OrderPort {
	repo := &OrderRepository{
		BaseRepository: NewBaseRepository[document.OrderDocument](db),
		db:             db,
		outbox:         outbox,
	}
	repo.ensureIndexes(mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return repo
}

// CreateWithOutbox writes the order and its order.placed entry atomically. It
// joins the caller's session when there is one.
func (r *OrderRepository) CreateWithOutbox(ctx context.Context, order *domain.Order) error {
	if order.ID != "" {
		return errors.New("cannot create order with existing ID")
	}

	if mongo.SessionFromContext(ctx) != nil {
		return r.insertWithOutbox(ctx, order)
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		order.ID = ""
		return nil, r.insertWithOutbox(sessCtx, order)
	})
	return err
}

func (r *OrderRepository) insertWithOutbox(ctx context.Context, order *domain.Order) error {
	now := time.Now()
	doc := document.ToOrderDocument(order)
	doc.CreatedAt = now
	doc.UpdatedAt = now

	id, err := r.Insert(ctx, doc)
	if err != nil {
		return err
	}

	order.ID = domain.ID(id)
	order.CreatedAt = now
	order.UpdatedAt = now

	event, err := domain.NewOrderPlacedEvent(order)
	if err != nil {
		return err
	}
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.outbox.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  eventData,
	})
}

func (r *OrderRepository) GetByIDAndUser(ctx context.Context, id domain.ID, userID domain.UserID) (*domain.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, parseError(err)
	}

	doc, err := r.FindOne(ctx, bson.M{"_id": objectID, "user_id": string(userID)})
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *OrderRepository) GetAllByUser(ctx context.Context, userID domain.UserID) ([]*domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	docs, err := r.Find(ctx, bson.M{"user_id": string(userID)}, opts)
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].ToDomain()
	}
	return orders, nil
}
