package serviceerrors

import (
	"errors"

	"github.com/rafaelleal24/commerce/internal/core/domain"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
	KindInsufficientStock
	KindInsufficientBalance
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnprocessableEntity:
		return "unprocessable_entity"
	case KindInvalidRequest:
		return "invalid_request"
	case KindInsufficientStock:
		return "insufficient_stock"
	case KindInsufficientBalance:
		return "insufficient_balance"
	default:
		return "unknown"
	}
}

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

// KindOf returns the kind of a service error and false for any other error.
func KindOf(err error) (ErrorKind, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return 0, false
}

type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}

func NewInsufficientStockError(message string) *ServiceError {
	return &ServiceError{Kind: KindInsufficientStock, Message: message}
}

func NewInsufficientBalanceError(message string) *ServiceError {
	return &ServiceError{Kind: KindInsufficientBalance, Message: message}
}

// FromDomain translates domain rule violations into service errors. Other errors pass through unchanged.
func FromDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInsufficientStock):
		return NewInsufficientStockError(err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		return NewInsufficientBalanceError(err.Error())
	case errors.Is(err, domain.ErrInvalidValue):
		return NewInvalidRequestError(err.Error())
	default:
		return err
	}
}
