package service

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/port"
)

type LikeService struct {
	likeRepository port.LikePort
	userService    *UserService
	productService *ProductService
}

func NewLikeService(likeRepository port.LikePort, userService *UserService, productService *ProductService) *LikeService {
	return &LikeService{
		likeRepository: likeRepository,
		userService:    userService,
		productService: productService,
	}
}

func (s *LikeService) resolve(ctx context.Context, userID domain.UserID, productID domain.ID) error {
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return err
	}
	_, err := s.productService.GetByID(ctx, productID)
	return err
}

// AddLike is idempotent: liking twice keeps a single like.
func (s *LikeService) AddLike(ctx context.Context, userID domain.UserID, productID domain.ID) error {
	if err := s.resolve(ctx, userID, productID); err != nil {
		return err
	}
	return s.likeRepository.Add(ctx, domain.NewLike(userID, productID))
}

// RemoveLike is idempotent: removing a missing like is not an error.
func (s *LikeService) RemoveLike(ctx context.Context, userID domain.UserID, productID domain.ID) error {
	if err := s.resolve(ctx, userID, productID); err != nil {
		return err
	}
	return s.likeRepository.Remove(ctx, userID, productID)
}
