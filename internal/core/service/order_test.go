package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
	"github.com/rafaelleal24/commerce/internal/core/utils"
	"go.uber.org/mock/gomock"
)

func placeRequest(items ...dto.OrderItem) *dto.PlaceOrderRequest {
	return &dto.PlaceOrderRequest{UserID: testUserID, Items: items}
}

// catalog returns A (price 1000, stock 10) and B (price 500, stock 5).
func catalog() []*domain.Product {
	return []*domain.Product{
		{ID: productAID, Name: "A", Price: 1000, Stock: 10, Version: 1},
		{ID: productBID, Name: "B", Price: 500, Stock: 5, Version: 1},
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("success debits points, decreases stock and stores a paid order", func(t *testing.T) {
		svc, m := setupServices(t)
		stored := map[domain.ID]domain.Stock{}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().
			GetAllByIDs(gomock.Any(), []domain.ID{productAID, productBID}).
			Return(catalog(), nil)
		m.pointRepo.EXPECT().
			GetByUserID(gomock.Any(), testUserID).
			Return(&domain.Point{UserID: testUserID, Balance: 5000}, nil)
		m.pointRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Point) error {
				if p.Balance != 1500 {
					t.Fatalf("expected balance 1500, got %d", p.Balance)
				}
				return nil
			})
		m.productRepo.EXPECT().
			UpdateStock(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				stored[p.ID] = p.Stock
				return nil
			}).
			Times(2)
		m.orderRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) error {
				o.ID = testOrderID
				return nil
			})
		m.orderCache.EXPECT().Set(gomock.Any(), "order:"+string(testOrderID), gomock.Any(), orderCacheTTL).Return(nil)
		m.metrics.EXPECT().OrderPlaced(domain.Amount(3500), gomock.Any())

		order, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 2},
			dto.OrderItem{ProductID: productBID, Quantity: 3},
		))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != testOrderID {
			t.Fatalf("expected order id %s, got %s", testOrderID, order.ID)
		}
		if order.TotalAmount != 3500 {
			t.Fatalf("expected total 3500, got %d", order.TotalAmount)
		}
		if order.Status != domain.OrderStatusPaid || order.PaidAt == nil {
			t.Fatalf("expected PAID order with paid-at, got %s", order.Status)
		}
		if len(order.Items) != 2 || order.Items[0].ProductID != productAID || order.Items[1].ProductID != productBID {
			t.Fatalf("items not in request order: %+v", order.Items)
		}
		if stored[productAID] != 8 || stored[productBID] != 2 {
			t.Fatalf("expected stock A=8 B=2, got A=%d B=%d", stored[productAID], stored[productBID])
		}
	})

	t.Run("out of stock second item fails without any write", func(t *testing.T) {
		svc, m := setupServices(t)
		products := catalog()
		products[1].Stock = 0

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), gomock.Any()).Return(products, nil)
		m.metrics.EXPECT().OrderRejected("insufficient_stock")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 2},
			dto.OrderItem{ProductID: productBID, Quantity: 1},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientStock) {
			t.Fatalf("expected KindInsufficientStock, got %v", err)
		}
		if !strings.Contains(err.Error(), `"B"`) {
			t.Fatalf("expected error to name product B, got %q", err.Error())
		}
	})

	t.Run("insufficient balance fails without any write", func(t *testing.T) {
		svc, m := setupServices(t)

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), gomock.Any()).Return(catalog(), nil)
		m.pointRepo.EXPECT().
			GetByUserID(gomock.Any(), testUserID).
			Return(&domain.Point{UserID: testUserID, Balance: 1000}, nil)
		m.metrics.EXPECT().OrderRejected("insufficient_balance")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 2},
			dto.OrderItem{ProductID: productBID, Quantity: 3},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientBalance) {
			t.Fatalf("expected KindInsufficientBalance, got %v", err)
		}
	})

	t.Run("non-positive quantity is rejected before the transaction", func(t *testing.T) {
		svc, m := setupServices(t)
		m.metrics.EXPECT().OrderRejected("invalid_request")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 0},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		svc, m := setupServices(t)
		m.metrics.EXPECT().OrderRejected("invalid_request")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest())
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("too many items", func(t *testing.T) {
		svc, m := setupServices(t)
		m.metrics.EXPECT().OrderRejected("invalid_request")

		items := make([]dto.OrderItem, ORDER_MAX_ITEMS+1)
		for i := range items {
			items[i] = dto.OrderItem{ProductID: productAID, Quantity: 1}
		}

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(items...))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := setupServices(t)
		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, serviceerrors.NewNotFoundError("entity not found"))
		m.metrics.EXPECT().OrderRejected("not_found")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 1},
		))
		if err == nil || err.Error() != "user not found" {
			t.Fatalf("expected 'user not found', got %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		svc, m := setupServices(t)
		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), gomock.Any()).Return(catalog()[:1], nil)
		m.metrics.EXPECT().OrderRejected("not_found")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 1},
			dto.OrderItem{ProductID: productBID, Quantity: 1},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("product id in another case is not found instead of panicking", func(t *testing.T) {
		svc, m := setupServices(t)
		requested := domain.ID("AAAACCDDEE112233AABBCCDD")

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().
			GetAllByIDs(gomock.Any(), []domain.ID{requested}).
			Return(catalog()[:1], nil)
		m.metrics.EXPECT().OrderRejected("not_found")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: requested, Quantity: 1},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("zero total is rejected by the point debit", func(t *testing.T) {
		svc, m := setupServices(t)
		products := catalog()
		products[0].Price = 0

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), []domain.ID{productAID}).Return(products[:1], nil)
		m.pointRepo.EXPECT().
			GetByUserID(gomock.Any(), testUserID).
			Return(&domain.Point{UserID: testUserID, Balance: 5000}, nil)
		m.metrics.EXPECT().OrderRejected("invalid_request")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 1},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected KindInvalidRequest, got %v", err)
		}
	})

	t.Run("repeated product lines share the same stock", func(t *testing.T) {
		svc, m := setupServices(t)
		products := catalog()
		products[0].Stock = 3

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().
			GetAllByIDs(gomock.Any(), []domain.ID{productAID}).
			Return(products[:1], nil)
		m.metrics.EXPECT().OrderRejected("insufficient_stock")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 2},
			dto.OrderItem{ProductID: productAID, Quantity: 2},
		))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInsufficientStock) {
			t.Fatalf("expected KindInsufficientStock, got %v", err)
		}
	})

	t.Run("store failure surfaces as plain error", func(t *testing.T) {
		svc, m := setupServices(t)

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), []domain.ID{productAID}).Return(catalog()[:1], nil)
		m.pointRepo.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(&domain.Point{UserID: testUserID, Balance: 5000}, nil)
		m.pointRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.productRepo.EXPECT().UpdateStock(gomock.Any(), gomock.Any()).Return(nil)
		m.orderRepo.EXPECT().CreateWithOutbox(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
		m.metrics.EXPECT().OrderRejected("internal")

		_, err := svc.order.PlaceOrder(context.Background(), "", placeRequest(
			dto.OrderItem{ProductID: productAID, Quantity: 1},
		))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if _, ok := serviceerrors.KindOf(err); ok {
			t.Fatalf("expected a non-service error, got %v", err)
		}
	})
}

func TestOrderService_PlaceOrder_Idempotency(t *testing.T) {
	t.Run("duplicate key returns the first order", func(t *testing.T) {
		svc, m := setupServices(t)
		req := placeRequest(dto.OrderItem{ProductID: productAID, Quantity: 1})
		hash, _ := utils.Fingerprint(req.IdempotencyPayload())
		first := &domain.Order{ID: testOrderID, UserID: testUserID, Status: domain.OrderStatusPaid, TotalAmount: 1000}

		m.idemCache.EXPECT().SetNX(gomock.Any(), "user1:key-1", gomock.Any(), gomock.Any()).Return(false, nil)
		m.idemCache.EXPECT().
			Get(gomock.Any(), "user1:key-1").
			Return(&IdempotencyEntry[domain.Order]{Status: IdempotencyCompleted, PayloadHash: hash, Result: first}, nil)
		m.metrics.EXPECT().OrderPlaced(domain.Amount(1000), gomock.Any())

		order, err := svc.order.PlaceOrder(context.Background(), "key-1", req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != testOrderID {
			t.Fatalf("expected order %s, got %s", testOrderID, order.ID)
		}
	})

	t.Run("keyed order is placed while the cache is down", func(t *testing.T) {
		svc, m := setupServices(t)
		req := placeRequest(dto.OrderItem{ProductID: productAID, Quantity: 1})

		m.idemCache.EXPECT().SetNX(gomock.Any(), "user1:key-1", gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.productRepo.EXPECT().GetAllByIDs(gomock.Any(), []domain.ID{productAID}).Return(catalog()[:1], nil)
		m.pointRepo.EXPECT().GetByUserID(gomock.Any(), testUserID).Return(&domain.Point{UserID: testUserID, Balance: 5000}, nil)
		m.pointRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.productRepo.EXPECT().UpdateStock(gomock.Any(), gomock.Any()).Return(nil)
		m.orderRepo.EXPECT().
			CreateWithOutbox(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) error {
				o.ID = testOrderID
				return nil
			})
		m.orderCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		m.metrics.EXPECT().OrderPlaced(domain.Amount(1000), gomock.Any())

		order, err := svc.order.PlaceOrder(context.Background(), "key-1", req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != testOrderID {
			t.Fatalf("expected order %s, got %s", testOrderID, order.ID)
		}
	})

	t.Run("failed placement releases the key", func(t *testing.T) {
		svc, m := setupServices(t)
		req := placeRequest(dto.OrderItem{ProductID: productAID, Quantity: 1})

		m.idemCache.EXPECT().SetNX(gomock.Any(), "user1:key-1", gomock.Any(), gomock.Any()).Return(true, nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, serviceerrors.NewNotFoundError("entity not found"))
		m.idemCache.EXPECT().Del(gomock.Any(), "user1:key-1").Return(nil)
		m.metrics.EXPECT().OrderRejected("not_found")

		if _, err := svc.order.PlaceOrder(context.Background(), "key-1", req); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestOrderService_GetOrderDetail(t *testing.T) {
	t.Run("cache hit for owner", func(t *testing.T) {
		svc, m := setupServices(t)
		cached := &domain.Order{ID: testOrderID, UserID: testUserID}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderCache.EXPECT().Get(gomock.Any(), "order:"+string(testOrderID)).Return(cached, nil)

		order, err := svc.order.GetOrderDetail(context.Background(), testOrderID, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if order.ID != testOrderID {
			t.Fatalf("expected %s, got %s", testOrderID, order.ID)
		}
	})

	t.Run("cached order of another user is not found", func(t *testing.T) {
		svc, m := setupServices(t)
		cached := &domain.Order{ID: testOrderID, UserID: "someone"}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

		_, err := svc.order.GetOrderDetail(context.Background(), testOrderID, testUserID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("cache miss reads owner scoped and caches", func(t *testing.T) {
		svc, m := setupServices(t)
		stored := &domain.Order{ID: testOrderID, UserID: testUserID}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		m.orderRepo.EXPECT().GetByIDAndUser(gomock.Any(), testOrderID, testUserID).Return(stored, nil)
		m.orderCache.EXPECT().Set(gomock.Any(), "order:"+string(testOrderID), stored, orderCacheTTL).Return(errors.New("redis down"))

		order, err := svc.order.GetOrderDetail(context.Background(), testOrderID, testUserID)
		if err != nil {
			t.Fatalf("expected no error (cache failures are non-fatal), got %v", err)
		}
		if order != stored {
			t.Fatal("expected stored order")
		}
	})

	t.Run("foreign order is not found", func(t *testing.T) {
		svc, m := setupServices(t)

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.orderRepo.EXPECT().
			GetByIDAndUser(gomock.Any(), otherOrderID, testUserID).
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.order.GetOrderDetail(context.Background(), otherOrderID, testUserID)
		if err == nil || err.Error() != "order not found" {
			t.Fatalf("expected 'order not found', got %v", err)
		}
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		svc, m := setupServices(t)

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.order.GetOrderDetail(context.Background(), "123", testUserID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})

	t.Run("reading twice returns the same order", func(t *testing.T) {
		svc, m := setupServices(t)
		stored := &domain.Order{ID: testOrderID, UserID: testUserID, TotalAmount: 3500, Status: domain.OrderStatusPaid}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil).Times(2)
		gomock.InOrder(
			m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil),
			m.orderCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil),
		)
		m.orderRepo.EXPECT().GetByIDAndUser(gomock.Any(), testOrderID, testUserID).Return(stored, nil)
		m.orderCache.EXPECT().Set(gomock.Any(), gomock.Any(), stored, orderCacheTTL).Return(nil)

		first, err := svc.order.GetOrderDetail(context.Background(), testOrderID, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		second, err := svc.order.GetOrderDetail(context.Background(), testOrderID, testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if first.TotalAmount != second.TotalAmount || first.Status != second.Status {
			t.Fatalf("expected identical reads, got %+v and %+v", first, second)
		}
	})
}

func TestOrderService_GetMyOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := setupServices(t)
		orders := []*domain.Order{{ID: otherOrderID}, {ID: testOrderID}}

		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(testUser(), nil)
		m.orderRepo.EXPECT().GetAllByUser(gomock.Any(), testUserID).Return(orders, nil)

		got, err := svc.order.GetMyOrders(context.Background(), testUserID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := setupServices(t)
		m.userRepo.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.order.GetMyOrders(context.Background(), testUserID)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected KindNotFound, got %v", err)
		}
	})
}
