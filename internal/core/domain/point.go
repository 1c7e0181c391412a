package domain

import (
	"fmt"
	"time"
)

type PointBalance int64

func NewPointBalance(value int64) (PointBalance, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: point balance must not be negative, got %d", ErrInvalidValue, value)
	}
	return PointBalance(value), nil
}

func (b PointBalance) Charge(amount int64) (PointBalance, error) {
	if amount <= 0 {
		return b, fmt.Errorf("%w: charge amount must be positive, got %d", ErrInvalidValue, amount)
	}
	return b + PointBalance(amount), nil
}

func (b PointBalance) Use(amount int64) (PointBalance, error) {
	if amount <= 0 {
		return b, fmt.Errorf("%w: use amount must be positive, got %d", ErrInvalidValue, amount)
	}
	if int64(b) < amount {
		return b, fmt.Errorf("%w: requested %d, available %d", ErrInsufficientBalance, amount, b)
	}
	return b - PointBalance(amount), nil
}

func (b PointBalance) Int64() int64 {
	return int64(b)
}

// Point is the spendable balance account of a user. Version is maintained by storage.
type Point struct {
	ID        ID
	UserID    UserID
	Balance   PointBalance
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewPoint(userID UserID) *Point {
	return &Point{
		UserID:    userID,
		Balance:   0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (p *Point) Charge(amount int64) error {
	balance, err := p.Balance.Charge(amount)
	if err != nil {
		return err
	}
	p.Balance = balance
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Point) Use(amount Amount) error {
	balance, err := p.Balance.Use(amount.Int64())
	if err != nil {
		return err
	}
	p.Balance = balance
	p.UpdatedAt = time.Now()
	return nil
}
