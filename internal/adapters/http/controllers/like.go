package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/commerce/internal/adapters/http/middleware"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

type LikeController struct {
	likeService *service.LikeService
}

func NewLikeController(likeService *service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// AddLike godoc
// @Summary     Like a product
// @Description Idempotent; liking twice keeps one like
// @Tags        likes
// @Param       X-USER-ID header string true "Caller id"
// @Param       id        path   string true "Product ID"
// @Success     204
// @Failure     401 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/likes [post]
func (lc *LikeController) AddLike(c *gin.Context) {
	if err := lc.likeService.AddLike(c.Request.Context(), middleware.UserID(c), domain.ID(c.Param("id"))); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveLike godoc
// @Summary     Unlike a product
// @Tags        likes
// @Param       X-USER-ID header string true "Caller id"
// @Param       id        path   string true "Product ID"
// @Success     204
// @Failure     401 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/likes [delete]
func (lc *LikeController) RemoveLike(c *gin.Context) {
	if err := lc.likeService.RemoveLike(c.Request.Context(), middleware.UserID(c), domain.ID(c.Param("id"))); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
