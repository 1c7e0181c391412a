package dto

import "github.com/rafaelleal24/commerce/internal/core/domain"

type SignUpRequest struct {
	UserID    string        `json:"user_id" binding:"required"`
	Email     string        `json:"email" binding:"required"`
	BirthDate string        `json:"birth_date" binding:"required"`
	Gender    domain.Gender `json:"gender" binding:"required"`
}

type ChargePointRequest struct {
	Amount int64 `json:"amount" binding:"gt=0"`
}
