package domain

import "fmt"

// Stock is the on-hand quantity of a product. It is never negative.
type Stock int

func NewStock(value int) (Stock, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: stock must not be negative, got %d", ErrInvalidValue, value)
	}
	return Stock(value), nil
}

func (s Stock) IsAvailable(quantity int) bool {
	return int(s) >= quantity
}

func (s Stock) Decrease(quantity int) (Stock, error) {
	if quantity <= 0 {
		return s, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidValue, quantity)
	}
	if !s.IsAvailable(quantity) {
		return s, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, s)
	}
	return s - Stock(quantity), nil
}

func (s Stock) Int() int {
	return int(s)
}
