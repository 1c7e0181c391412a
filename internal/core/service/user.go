package service

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type UserService struct {
	userRepository  port.UserPort
	pointRepository port.PointPort
	txManager       port.TransactionManager
}

func NewUserService(userRepository port.UserPort, pointRepository port.PointPort, txManager port.TransactionManager) *UserService {
	return &UserService{
		userRepository:  userRepository,
		pointRepository: pointRepository,
		txManager:       txManager,
	}
}

// SignUp registers the user together with an empty point account.
func (s *UserService) SignUp(ctx context.Context, request *dto.SignUpRequest) (*domain.User, error) {
	user, err := domain.NewUser(request.UserID, request.Email, request.BirthDate, request.Gender)
	if err != nil {
		return nil, serviceerrors.FromDomain(err)
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.userRepository.Exists(txCtx, user.ID)
		if err != nil {
			return err
		}
		if exists {
			return serviceerrors.NewConflictError("user already exists")
		}
		if err := s.userRepository.Create(txCtx, user); err != nil {
			if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
				return serviceerrors.NewConflictError("user already exists")
			}
			return err
		}
		return s.pointRepository.Create(txCtx, domain.NewPoint(user.ID))
	})
	if err != nil {
		if _, ok := serviceerrors.KindOf(err); !ok {
			logger.Error(ctx, "user: sign up failed", err, map[string]any{
				"user_id": request.UserID,
			})
		}
		return nil, err
	}

	logger.Info(ctx, "User signed up", map[string]any{"user_id": user.ID})
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.userRepository.GetByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, serviceerrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}
