package repository_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

var seq atomic.Int64

func uniqueUserID() string {
	return fmt.Sprintf("u%d", seq.Add(1))
}

func createTestUser(t *testing.T, repo port.UserPort) *domain.User {
	t.Helper()
	user, err := domain.NewUser(uniqueUserID(), "buyer@example.com", "1990-01-15", domain.GenderFemale)
	if err != nil {
		t.Fatalf("setup: new user failed: %v", err)
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("setup: create user failed: %v", err)
	}
	return user
}

func createTestBrand(t *testing.T, repo port.BrandPort) *domain.Brand {
	t.Helper()
	brand, err := domain.NewBrand(fmt.Sprintf("brand-%d", seq.Add(1)), "test brand")
	if err != nil {
		t.Fatalf("setup: new brand failed: %v", err)
	}
	if err := repo.Create(context.Background(), brand); err != nil {
		t.Fatalf("setup: create brand failed: %v", err)
	}
	return brand
}

func createTestProduct(t *testing.T, repo port.ProductPort, brandID domain.ID, price int64, stock int) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(brandID, fmt.Sprintf("product-%d", seq.Add(1)), "test product", domain.Amount(price), domain.Stock(stock))
	if err != nil {
		t.Fatalf("setup: new product failed: %v", err)
	}
	if err := repo.Create(context.Background(), product); err != nil {
		t.Fatalf("setup: create product failed: %v", err)
	}
	return product
}

func paidOrder(t *testing.T, userID domain.UserID, products ...*domain.Product) *domain.Order {
	t.Helper()
	order := domain.NewOrder(userID)
	for i, p := range products {
		if err := order.AddOrderItem(p, i+1); err != nil {
			t.Fatalf("setup: add item failed: %v", err)
		}
	}
	if err := order.CompletePayment(); err != nil {
		t.Fatalf("setup: complete payment failed: %v", err)
	}
	return order
}
