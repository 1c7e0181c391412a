package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafaelleal24/commerce/internal/adapters/http/handlers"
	"github.com/rafaelleal24/commerce/internal/adapters/http/middleware"
	"github.com/rafaelleal24/commerce/internal/core/domain"
	"github.com/rafaelleal24/commerce/internal/core/dto"
	"github.com/rafaelleal24/commerce/internal/core/service"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type OrderController struct {
	orderService *service.OrderService
}

type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Amount      int64  `json:"amount"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Items       []OrderItemResponse `json:"items"`
	Status      string              `json:"status" example:"PAID"`
	TotalAmount int64               `json:"total_amount"`
	PaidAt      *time.Time          `json:"paid_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type PlaceOrderBody struct {
	Items []dto.OrderItem `json:"items" binding:"required"`
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:   string(item.ProductID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Int64(),
			Amount:      item.CalculateAmount().Int64(),
		}
	}
	return OrderResponse{
		ID:          string(order.ID),
		UserID:      string(order.UserID),
		Items:       items,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.Int64(),
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
	}
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PlaceOrder godoc
// @Summary     Place an order
// @Description Reserves stock, pays with points and records the order in one transaction
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       X-USER-ID       header   string         true  "Caller id"
// @Param       Idempotency-Key header   string         false "Idempotency key"
// @Param       request         body     PlaceOrderBody true  "Order lines"
// @Success     201             {object} OrderResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     401             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var body PlaceOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		handlers.BadRequest(c, err.Error())
		return
	}
	request := &dto.PlaceOrderRequest{UserID: middleware.UserID(c), Items: body.Items}

	order, err := oc.orderService.PlaceOrder(c.Request.Context(), c.GetHeader(IdempotencyKeyHeader), request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetMyOrders godoc
// @Summary     My orders
// @Description Lists the caller's orders, newest first
// @Tags        orders
// @Produce     json
// @Param       X-USER-ID header   string true "Caller id"
// @Success     200       {array}  OrderResponse
// @Failure     401       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Router      /api/v1/orders [get]
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := oc.orderService.GetMyOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = NewOrderResponse(order)
	}
	c.JSON(http.StatusOK, response)
}

// GetOrder godoc
// @Summary     Order detail
// @Description Returns one of the caller's orders
// @Tags        orders
// @Produce     json
// @Param       X-USER-ID header   string true "Caller id"
// @Param       id        path     string true "Order ID"
// @Success     200       {object} OrderResponse
// @Failure     401       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.orderService.GetOrderDetail(c.Request.Context(), domain.ID(c.Param("id")), middleware.UserID(c))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}
