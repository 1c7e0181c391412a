package domain

import "errors"

var (
	ErrInvalidValue        = errors.New("invalid value")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient point balance")
)
