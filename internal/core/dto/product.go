package dto

import "github.com/rafaelleal24/commerce/internal/core/domain"

type CreateProductRequest struct {
	BrandID     domain.ID `json:"brand_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       int64     `json:"price" binding:"gte=0"`
	Stock       int       `json:"stock" binding:"gte=0"`
}

type ProductDetail struct {
	Product   *domain.Product
	BrandName string
	LikeCount int64
}

type ProductSummary struct {
	Product   *domain.Product
	LikeCount int64
}
