package service

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	userRepo    *mock.MockUserPort
	pointRepo   *mock.MockPointPort
	brandRepo   *mock.MockBrandPort
	productRepo *mock.MockProductPort
	likeRepo    *mock.MockLikePort
	orderRepo   *mock.MockOrderPort
	orderCache  *mock.MockCachePort[domain.Order]
	idemCache   *mock.MockCachePort[IdempotencyEntry[domain.Order]]
	txManager   *mock.MockTransactionManager
	metrics     *mock.MockMetricsPort
}

type services struct {
	user    *UserService
	point   *PointService
	brand   *BrandService
	product *ProductService
	like    *LikeService
	order   *OrderService
}

// setupServices wires every service on mocks. The transaction manager runs fn inline.
func setupServices(t *testing.T) (*services, *serviceMocks) {
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		userRepo:    mock.NewMockUserPort(ctrl),
		pointRepo:   mock.NewMockPointPort(ctrl),
		brandRepo:   mock.NewMockBrandPort(ctrl),
		productRepo: mock.NewMockProductPort(ctrl),
		likeRepo:    mock.NewMockLikePort(ctrl),
		orderRepo:   mock.NewMockOrderPort(ctrl),
		orderCache:  mock.NewMockCachePort[domain.Order](ctrl),
		idemCache:   mock.NewMockCachePort[IdempotencyEntry[domain.Order]](ctrl),
		txManager:   mock.NewMockTransactionManager(ctrl),
		metrics:     mock.NewMockMetricsPort(ctrl),
	}

	m.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	userSvc := NewUserService(m.userRepo, m.pointRepo, m.txManager)
	pointSvc := NewPointService(m.pointRepo, userSvc, m.txManager)
	brandSvc := NewBrandService(m.brandRepo)
	productSvc := NewProductService(m.productRepo, m.likeRepo, brandSvc)
	likeSvc := NewLikeService(m.likeRepo, userSvc, productSvc)
	idemSvc := NewIdempotencyService[domain.Order](m.idemCache, IdempotencyOptions{
		TTL:          15 * time.Minute,
		LeaseTTL:     time.Minute,
		PollInterval: 20 * time.Millisecond,
		PollTimeout:  200 * time.Millisecond,
	})
	orderSvc := NewOrderService(m.orderRepo, productSvc, userSvc, pointSvc, m.orderCache, idemSvc, m.txManager, m.metrics)

	return &services{
		user:    userSvc,
		point:   pointSvc,
		brand:   brandSvc,
		product: productSvc,
		like:    likeSvc,
		order:   orderSvc,
	}, m
}

const (
	testUserID   = domain.UserID("user1")
	testBrandID  = domain.ID("bbbbccddee112233aabbccdd")
	productAID   = domain.ID("aaaaccddee112233aabbccdd")
	productBID   = domain.ID("ababccddee112233aabbccdd")
	testOrderID  = domain.ID("ddddccddee112233aabbccdd")
	otherOrderID = domain.ID("eeeeccddee112233aabbccdd")
)

func testUser() *domain.User {
	return &domain.User{ID: testUserID, Email: "user1@example.com", Gender: domain.GenderMale}
}
