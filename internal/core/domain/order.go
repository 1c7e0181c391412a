package domain

import (
	"errors"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusPaid    OrderStatus = "PAID"
)

func (s OrderStatus) IsValid() bool {
	return s == OrderStatusPending || s == OrderStatusPaid
}

type Order struct {
	ID          ID
	UserID      UserID
	Items       []OrderItem
	Status      OrderStatus
	TotalAmount Amount
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is a snapshot of a product at purchase time. Its position in Order.Items is its identity.
type OrderItem struct {
	ProductID   ID
	ProductName string
	Quantity    int
	UnitPrice   Amount
}

func (o *OrderItem) CalculateAmount() Amount {
	return o.UnitPrice.Multiply(o.Quantity)
}

func NewOrder(userID UserID) *Order {
	now := time.Now()
	return &Order{
		UserID:    userID,
		Items:     []OrderItem{},
		Status:    OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (o *Order) AddOrderItem(product *Product, quantity int) error {
	if product == nil {
		return fmt.Errorf("%w: product is required", ErrInvalidValue)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidValue, quantity)
	}
	o.Items = append(o.Items, OrderItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
	})
	o.TotalAmount = o.calculateTotalAmount()
	return nil
}

func (o *Order) calculateTotalAmount() Amount {
	total := Amount(0)
	for i := range o.Items {
		total = total.Add(o.Items[i].CalculateAmount())
	}
	return total
}

func (o *Order) CompletePayment() error {
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: order items are empty", ErrInvalidValue)
	}
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: order is already %s", ErrInvalidValue, o.Status)
	}
	now := time.Now()
	o.Status = OrderStatusPaid
	o.PaidAt = &now
	o.UpdatedAt = now
	return nil
}

// IsOwnedBy reports whether the order belongs to userID.
func (o *Order) IsOwnedBy(userID UserID) bool {
	return o.UserID == userID
}

var errNotOrderEvent = errors.New("order event requires a paid order")

type OrderPlacedItem struct {
	ProductID ID     `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Amount `json:"unit_price"`
}

type OrderPlacedEvent struct {
	OrderID     ID                `json:"order_id"`
	UserID      UserID            `json:"user_id"`
	TotalAmount Amount            `json:"total_amount"`
	Items       []OrderPlacedItem `json:"items"`
	PaidAt      time.Time         `json:"paid_at"`
}

func (e *OrderPlacedEvent) GetName() string {
	return "order.placed"
}

func (e *OrderPlacedEvent) GetEntityName() string {
	return "order"
}

// NewOrderPlacedEvent builds the event from a paid order. OrderID is filled by the store once assigned.
func NewOrderPlacedEvent(order *Order) (*OrderPlacedEvent, error) {
	if order.Status != OrderStatusPaid || order.PaidAt == nil {
		return nil, errNotOrderEvent
	}
	items := make([]OrderPlacedItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderPlacedItem{ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: item.UnitPrice}
	}
	return &OrderPlacedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Items:       items,
		PaidAt:      *order.PaidAt,
	}, nil
}
