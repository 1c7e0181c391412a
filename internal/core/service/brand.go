package service

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type BrandService struct {
	brandRepository port.BrandPort
}

func NewBrandService(brandRepository port.BrandPort) *BrandService {
	return &BrandService{brandRepository: brandRepository}
}

func (s *BrandService) Create(ctx context.Context, request *dto.CreateBrandRequest) (*domain.Brand, error) {
	brand, err := domain.NewBrand(request.Name, request.Description)
	if err != nil {
		return nil, serviceerrors.FromDomain(err)
	}

	if err := s.brandRepository.Create(ctx, brand); err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			return nil, serviceerrors.NewConflictError("brand name already exists")
		}
		logger.Error(ctx, "brand: create failed", err, map[string]any{"name": request.Name})
		return nil, err
	}

	logger.Info(ctx, "Brand created", map[string]any{"brand_id": brand.ID})
	return brand, nil
}

func (s *BrandService) GetByID(ctx context.Context, id domain.ID) (*domain.Brand, error) {
	if !domain.ValidateID(string(id)) {
		return nil, serviceerrors.NewNotFoundError("brand not found")
	}
	brand, err := s.brandRepository.GetByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) || serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			return nil, serviceerrors.NewNotFoundError("brand not found")
		}
		return nil, err
	}
	return brand, nil
}
