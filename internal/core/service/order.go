package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

const (
	ORDER_MAX_ITEMS = 100
	orderCacheTTL   = 15 * time.Minute
)

type OrderService struct {
	orderRepository port.OrderPort
	productService  *ProductService
	userService     *UserService
	pointService    *PointService
	orderCache      port.CachePort[domain.Order]
	idempotency     *IdempotencyService[domain.Order]
	txManager       port.TransactionManager
	metrics         port.MetricsPort
}

func NewOrderService(
	orderRepository port.OrderPort,
	productService *ProductService,
	userService *UserService,
	pointService *PointService,
	orderCache port.CachePort[domain.Order],
	idempotency *IdempotencyService[domain.Order],
	txManager port.TransactionManager,
	metrics port.MetricsPort,
) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		productService:  productService,
		userService:     userService,
		pointService:    pointService,
		orderCache:      orderCache,
		idempotency:     idempotency,
		txManager:       txManager,
		metrics:         metrics,
	}
}

func (s *OrderService) getCacheKey(orderID domain.ID) string {
	return fmt.Sprintf("order:%s", orderID)
}

// GetOrderDetail returns the order only when it belongs to userID. Orders of
// other users are reported as not found.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID domain.ID, userID domain.UserID) (*domain.Order, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	cached, err := s.orderCache.Get(ctx, s.getCacheKey(orderID))
	if err != nil {
		logger.Error(ctx, "cache: get order failed", err, map[string]any{
			"order_id": orderID,
		})
	}
	if cached != nil {
		if !cached.IsOwnedBy(userID) {
			return nil, serviceerrors.NewNotFoundError("order not found")
		}
		logger.Debug(ctx, "order found in cache", map[string]any{
			"order_id": orderID,
		})
		return cached, nil
	}

	if !domain.ValidateID(string(orderID)) {
		return nil, serviceerrors.NewNotFoundError("order not found")
	}

	order, err := s.orderRepository.GetByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) || serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			return nil, serviceerrors.NewNotFoundError("order not found")
		}
		return nil, err
	}

	s.cacheOrder(ctx, order)
	return order, nil
}

// GetMyOrders lists the user's orders, newest first.
func (s *OrderService) GetMyOrders(ctx context.Context, userID domain.UserID) ([]*domain.Order, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.orderRepository.GetAllByUser(ctx, userID)
}

func (s *OrderService) cacheOrder(ctx context.Context, order *domain.Order) {
	if err := s.orderCache.Set(ctx, s.getCacheKey(order.ID), order, orderCacheTTL); err != nil {
		logger.Error(ctx, "cache: set order failed", err, map[string]any{
			"order_id": order.ID,
		})
	}
}

func validatePlaceOrderRequest(request *dto.PlaceOrderRequest) error {
	if len(request.Items) == 0 {
		return serviceerrors.NewInvalidRequestError("order items are empty")
	}
	if len(request.Items) > ORDER_MAX_ITEMS {
		return serviceerrors.NewInvalidRequestError("order items limit exceeded")
	}
	for _, item := range request.Items {
		if item.Quantity <= 0 {
			return serviceerrors.NewInvalidRequestError(fmt.Sprintf("quantity must be positive for product %s", item.ProductID))
		}
	}
	return nil
}

func distinctProductIDs(items []dto.OrderItem) []domain.ID {
	seen := make(map[domain.ID]struct{}, len(items))
	ids := make([]domain.ID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// placeOrder runs the whole purchase in one transaction. Nothing is written
// until every check has passed, and any failure rolls back all writes.
func (s *OrderService) placeOrder(ctx context.Context, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	if err := validatePlaceOrderRequest(request); err != nil {
		return nil, err
	}

	var order *domain.Order
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userService.GetByID(txCtx, request.UserID)
		if err != nil {
			return err
		}

		ids := distinctProductIDs(request.Items)
		products, err := s.productService.GetAllByIDs(txCtx, ids)
		if err != nil {
			return err
		}

		// request order decides which shortage is reported first
		for _, item := range request.Items {
			product := products[item.ProductID]
			if !product.IsStockAvailable(item.Quantity) {
				return serviceerrors.NewInsufficientStockError(fmt.Sprintf("insufficient stock for product %q", product.Name))
			}
			if err := product.DecreaseStock(item.Quantity); err != nil {
				return serviceerrors.FromDomain(err)
			}
		}

		o := domain.NewOrder(user.ID)
		for _, item := range request.Items {
			if err := o.AddOrderItem(products[item.ProductID], item.Quantity); err != nil {
				return serviceerrors.FromDomain(err)
			}
		}

		if _, err := s.pointService.Use(txCtx, user.ID, o.TotalAmount); err != nil {
			return err
		}

		if err := o.CompletePayment(); err != nil {
			return serviceerrors.FromDomain(err)
		}

		for _, id := range ids {
			if err := s.productService.UpdateStock(txCtx, products[id]); err != nil {
				return err
			}
		}

		if err := s.orderRepository.CreateWithOutbox(txCtx, o); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func rejectionReason(err error) string {
	if kind, ok := serviceerrors.KindOf(err); ok {
		return kind.String()
	}
	return "internal"
}

// PlaceOrder buys the requested items with the user's points. With a non-empty
// idempotencyKey a retried request returns the first result instead of buying twice.
func (s *OrderService) PlaceOrder(ctx context.Context, idempotencyKey string, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	start := time.Now()

	order, err := s.placeOrderOnce(ctx, idempotencyKey, request)
	if err != nil {
		s.metrics.OrderRejected(rejectionReason(err))
		attrs := map[string]any{
			"user_id":     request.UserID,
			"items_count": len(request.Items),
		}
		if _, ok := serviceerrors.KindOf(err); ok {
			logger.Warn(ctx, "Order rejected: "+err.Error(), attrs)
		} else {
			logger.Error(ctx, "transaction: place order failed", err, attrs)
		}
		return nil, err
	}

	s.metrics.OrderPlaced(order.TotalAmount, time.Since(start))
	logger.Info(ctx, "Order placed successfully", map[string]any{
		"order_id":     order.ID,
		"user_id":      order.UserID,
		"total_amount": order.TotalAmount.Int64(),
	})
	return order, nil
}

func (s *OrderService) placeOrderOnce(ctx context.Context, idempotencyKey string, request *dto.PlaceOrderRequest) (*domain.Order, error) {
	if idempotencyKey == "" {
		order, err := s.placeOrder(ctx, request)
		if err != nil {
			return nil, err
		}
		s.cacheOrder(ctx, order)
		return order, nil
	}

	key := ScopedKey(string(request.UserID), idempotencyKey)
	return s.idempotency.Do(ctx, key, request.IdempotencyPayload(), func(ctx context.Context) (*domain.Order, error) {
		order, err := s.placeOrder(ctx, request)
		if err != nil {
			return nil, err
		}
		s.cacheOrder(ctx, order)
		return order, nil
	})
}
