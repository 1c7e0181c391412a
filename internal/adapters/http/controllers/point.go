package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/commerce/internal/adapters/http/middleware"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

type PointController struct {
	pointService *service.PointService
}

type PointResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

func NewPointResponse(point *domain.Point) PointResponse {
	return PointResponse{
		UserID:  string(point.UserID),
		Balance: point.Balance.Int64(),
	}
}

func NewPointController(pointService *service.PointService) *PointController {
	return &PointController{pointService: pointService}
}

// GetPoint godoc
// @Summary     My point balance
// @Tags        points
// @Produce     json
// @Param       X-USER-ID header   string true "Caller id"
// @Success     200       {object} PointResponse
// @Failure     401       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Router      /api/v1/points [get]
func (pc *PointController) GetPoint(c *gin.Context) {
	point, err := pc.pointService.GetPoint(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPointResponse(point))
}

// Charge godoc
// @Summary     Charge points
// @Tags        points
// @Accept      json
// @Produce     json
// @Param       X-USER-ID header   string                 true "Caller id"
// @Param       request   body     dto.ChargePointRequest true "Amount to add"
// @Success     200       {object} PointResponse
// @Failure     400       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Failure     409       {object} handlers.ErrorResponse
// @Router      /api/v1/points/charge [post]
func (pc *PointController) Charge(c *gin.Context) {
	var request dto.ChargePointRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.BadRequest(c, err.Error())
		return
	}
	point, err := pc.pointService.Charge(c.Request.Context(), middleware.UserID(c), request.Amount)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewPointResponse(point))
}
