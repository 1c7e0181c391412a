package document

import (
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItemDocument struct {
	ProductID   primitive.ObjectID `bson:"product_id"`
	ProductName string             `bson:"product_name"`
	Quantity    int                `bson:"quantity"`
	UnitPrice   int64              `bson:"unit_price"`
}

type OrderDocument struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	UserID      string              `bson:"user_id"`
	Items       []OrderItemDocument `bson:"items"`
	Status      string              `bson:"status"`
	TotalAmount int64               `bson:"total_amount"`
	PaidAt      *time.Time          `bson:"paid_at,omitempty"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

func (OrderDocument) CollectionName() string { return "orders" }

func (doc *OrderDocument) ToDomain() *domain.Order {
	items := make([]domain.OrderItem, len(doc.Items))
	for i, itemDoc := range doc.Items {
		items[i] = domain.OrderItem{
			ProductID:   domain.ID(itemDoc.ProductID.Hex()),
			ProductName: itemDoc.ProductName,
			Quantity:    itemDoc.Quantity,
			UnitPrice:   domain.Amount(itemDoc.UnitPrice),
		}
	}

	return &domain.Order{
		ID:          domain.ID(doc.ID.Hex()),
		UserID:      domain.UserID(doc.UserID),
		Items:       items,
		Status:      domain.OrderStatus(doc.Status),
		TotalAmount: domain.Amount(doc.TotalAmount),
		PaidAt:      doc.PaidAt,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func ToOrderDocument(order *domain.Order) *OrderDocument {
	items := make([]OrderItemDocument, len(order.Items))
	for i, item := range order.Items {
		itemDoc := OrderItemDocument{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Int64(),
		}
		if productID, err := primitive.ObjectIDFromHex(string(item.ProductID)); err == nil {
			itemDoc.ProductID = productID
		}
		items[i] = itemDoc
	}

	doc := &OrderDocument{
		UserID:      string(order.UserID),
		Items:       items,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.Int64(),
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	if order.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(order.ID))
		doc.ID = objectID
	}

	return doc
}
