package service

import (
	"context"

	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/logger"
	"github.com/rafaelleal24/commerce/internal/core/port"
	"github.com/rafaelleal24/commerce/internal/core/serviceerrors"
)

type ProductService struct {
	productRepository port.ProductPort
	likeRepository    port.LikePort
	brandService      *BrandService
}

func NewProductService(productRepository port.ProductPort, likeRepository port.LikePort, brandService *BrandService) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		likeRepository:    likeRepository,
		brandService:      brandService,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	price, err := domain.NewAmount(request.Price)
	if err != nil {
		return nil, serviceerrors.FromDomain(err)
	}
	stock, err := domain.NewStock(request.Stock)
	if err != nil {
		return nil, serviceerrors.FromDomain(err)
	}
	if _, err := s.brandService.GetByID(ctx, request.BrandID); err != nil {
		return nil, err
	}

	product, err := domain.NewProduct(request.BrandID, request.Name, request.Description, price, stock)
	if err != nil {
		return nil, serviceerrors.FromDomain(err)
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"brand_id": request.BrandID,
			"name":     request.Name,
			"price":    request.Price,
			"stock":    request.Stock,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	if !domain.ValidateID(string(id)) {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) || serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			return nil, serviceerrors.NewNotFoundError("product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProductDetail(ctx context.Context, id domain.ID) (*dto.ProductDetail, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	brand, err := s.brandService.GetByID(ctx, product.BrandID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likeRepository.CountByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetail{Product: product, BrandName: brand.Name, LikeCount: likes}, nil
}

func (s *ProductService) ListProducts(ctx context.Context, brandID *domain.ID) ([]dto.ProductSummary, error) {
	if brandID != nil {
		if _, err := s.brandService.GetByID(ctx, *brandID); err != nil {
			return nil, err
		}
	}

	products, err := s.productRepository.List(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return []dto.ProductSummary{}, nil
	}

	ids := make([]domain.ID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	counts, err := s.likeRepository.CountByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ProductSummary, len(products))
	for i, p := range products {
		summaries[i] = dto.ProductSummary{Product: p, LikeCount: counts[p.ID]}
	}
	return summaries, nil
}

// GetAllByIDs loads every product in ids or fails with NotFound if any is missing.
func (s *ProductService) GetAllByIDs(ctx context.Context, ids []domain.ID) (map[domain.ID]*domain.Product, error) {
	products, err := s.productRepository.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[domain.ID]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	// stores may hand back a canonical form of the id that was asked for
	for _, id := range ids {
		if byID[id] == nil {
			return nil, serviceerrors.NewNotFoundError("some products not found")
		}
	}
	return byID, nil
}

func (s *ProductService) UpdateStock(ctx context.Context, product *domain.Product) error {
	return s.productRepository.UpdateStock(ctx, product)
}
