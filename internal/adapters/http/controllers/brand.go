package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

type BrandController struct {
	brandService *service.BrandService
}

type BrandResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func NewBrandResponse(brand *domain.Brand) BrandResponse {
	return BrandResponse{
		ID:          string(brand.ID),
		Name:        brand.Name,
		Description: brand.Description,
	}
}

func NewBrandController(brandService *service.BrandService) *BrandController {
	return &BrandController{brandService: brandService}
}

// CreateBrand godoc
// @Summary     Create a brand
// @Tags        brands
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateBrandRequest true "Brand data"
// @Success     201     {object} BrandResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Router      /api/v1/brands [post]
func (bc *BrandController) CreateBrand(c *gin.Context) {
	var request dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.BadRequest(c, err.Error())
		return
	}
	brand, err := bc.brandService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBrandResponse(brand))
}

// GetBrand godoc
// @Summary     Brand detail
// @Tags        brands
// @Produce     json
// @Param       id  path     string true "Brand ID"
// @Success     200 {object} BrandResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/brands/{id} [get]
func (bc *BrandController) GetBrand(c *gin.Context) {
	brand, err := bc.brandService.GetByID(c.Request.Context(), domain.ID(c.Param("id")))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBrandResponse(brand))
}
