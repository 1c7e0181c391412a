package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	LikeCount   int64     `json:"like_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProductDetailResponse struct {
	ProductResponse
	BrandName string `json:"brand_name"`
}

func NewProductResponse(product *domain.Product, likeCount int64) ProductResponse {
	return ProductResponse{
		ID:          string(product.ID),
		BrandID:     string(product.BrandID),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.Int64(),
		Stock:       product.Stock.Int(),
		LikeCount:   likeCount,
		CreatedAt:   product.CreatedAt,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a product under an existing brand
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.BadRequest(c, err.Error())
		return
	}
	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product, 0))
}

// ListProducts godoc
// @Summary     List products
// @Description Lists products newest first, optionally for one brand
// @Tags        products
// @Produce     json
// @Param       brand_id query    string false "Brand ID"
// @Success     200      {array}  ProductResponse
// @Failure     500      {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	var brandID *domain.ID
	if raw := c.Query("brand_id"); raw != "" {
		id := domain.ID(raw)
		brandID = &id
	}

	summaries, err := pc.productService.ListProducts(c.Request.Context(), brandID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]ProductResponse, len(summaries))
	for i, s := range summaries {
		response[i] = NewProductResponse(s.Product, s.LikeCount)
	}
	c.JSON(http.StatusOK, response)
}

// GetProduct godoc
// @Summary     Product detail
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductDetailResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	detail, err := pc.productService.GetProductDetail(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProductDetailResponse{
		ProductResponse: NewProductResponse(detail.Product, detail.LikeCount),
		BrandName:       detail.BrandName,
	})
}
