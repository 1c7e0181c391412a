package domain

import (
	"fmt"
	"strings"
	"time"
)

type Product struct {
	ID          ID
	BrandID     ID
	Name        string
	Description string
	Price       Amount
	Stock       Stock
	// Version is bumped by storage on every stock write.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(brandID ID, name, description string, price Amount, stock Stock) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidValue)
	}
	return &Product{
		BrandID:     brandID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

func (p *Product) IsStockAvailable(quantity int) bool {
	return p.Stock.IsAvailable(quantity)
}

func (p *Product) DecreaseStock(quantity int) error {
	stock, err := p.Stock.Decrease(quantity)
	if err != nil {
		return fmt.Errorf("product %q: %w", p.Name, err)
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	return nil
}
