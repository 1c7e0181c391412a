package domain

import (
	"fmt"
	"strings"
	"time"
)

type Brand struct {
	ID          ID
	Name        string
	Description string
	CreatedAt   time.Time
}

func NewBrand(name, description string) (*Brand, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: brand name is required", ErrInvalidValue)
	}
	return &Brand{
		Name:        strings.TrimSpace(name),
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}
