package service

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type PointService struct {
	pointRepository port.PointPort
	userService     *UserService
	txManager       port.TransactionManager
}

func NewPointService(pointRepository port.PointPort, userService *UserService, txManager port.TransactionManager) *PointService {
	return &PointService{
		pointRepository: pointRepository,
		userService:     userService,
		txManager:       txManager,
	}
}

func (s *PointService) getByUserID(ctx context.Context, userID domain.UserID) (*domain.Point, error) {
	point, err := s.pointRepository.GetByUserID(ctx, userID)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("point account not found")
		}
		return nil, err
	}
	return point, nil
}

func (s *PointService) GetPoint(ctx context.Context, userID domain.UserID) (*domain.Point, error) {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.getByUserID(ctx, userID)
}

func (s *PointService) Charge(ctx context.Context, userID domain.UserID, amount int64) (*domain.Point, error) {
	var point *domain.Point
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.userService.GetByID(txCtx, userID); err != nil {
			return err
		}
		p, err := s.getByUserID(txCtx, userID)
		if err != nil {
			return err
		}
		if err := p.Charge(amount); err != nil {
			return serviceerrors.FromDomain(err)
		}
		if err := s.pointRepository.Update(txCtx, p); err != nil {
			return err
		}
		point = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Points charged", map[string]any{
		"user_id": userID,
		"amount":  amount,
		"balance": point.Balance.Int64(),
	})
	return point, nil
}

// Use debits amount from the user's balance and persists it. Callers must run it
// inside a transaction that also persists whatever the debit pays for.
func (s *PointService) Use(ctx context.Context, userID domain.UserID, amount domain.Amount) (*domain.Point, error) {
	point, err := s.getByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := point.Use(amount); err != nil {
		return nil, serviceerrors.FromDomain(err)
	}
	if err := s.pointRepository.Update(ctx, point); err != nil {
		return nil, err
	}
	return point, nil
}
