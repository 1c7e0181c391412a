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

type UserController struct {
	userService *service.UserService
}

type UserResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birth_date" example:"1990-01-15"`
	Gender    string    `json:"gender" example:"FEMALE"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    string(user.ID),
		Email:     user.Email,
		BirthDate: user.BirthDate.Format(domain.BirthDateLayout),
		Gender:    string(user.Gender),
		CreatedAt: user.CreatedAt,
	}
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// SignUp godoc
// @Summary     Sign up
// @Description Registers a user and opens an empty point account
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body     dto.SignUpRequest true "User data"
// @Success     201     {object} UserResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/users [post]
func (uc *UserController) SignUp(c *gin.Context) {
	var request dto.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.BadRequest(c, err.Error())
		return
	}
	user, err := uc.userService.SignUp(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewUserResponse(user))
}

// Me godoc
// @Summary     My info
// @Tags        users
// @Produce     json
// @Param       X-USER-ID header   string true "Caller id"
// @Success     200       {object} UserResponse
// @Failure     401       {object} handlers.ErrorResponse
// @Failure     404       {object} handlers.ErrorResponse
// @Router      /api/v1/users/me [get]
func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.userService.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(user))
}
