package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type ID string

// ValidateID accepts both storage id formats: 24-char ObjectID hex (mongo) and uuid (postgres).
func ValidateID(id string) bool {
	if len(id) == 24 {
		return true
	}
	return uuid.Validate(id) == nil
}

type Amount int64

func NewAmount(value int64) (Amount, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative, got %d", ErrInvalidValue, value)
	}
	return Amount(value), nil
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(quantity int) Amount {
	return a * Amount(quantity)
}

func (a Amount) Int64() int64 {
	return int64(a)
}

type Event interface {
	GetName() string
	GetEntityName() string
}
