package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName    = errors.New("product name must not be empty")
	ErrInvalidPrice = errors.New("price must be positive")
	ErrInvalidStock = errors.New("stock cannot be negative")
)

// Price is a positive decimal amount. Exact decimal arithmetic keeps order
// totals free of float rounding.
type Price struct {
	value decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: d}, nil
}

func (p Price) Value() decimal.Decimal {
	return p.value
}

func (p Price) String() string {
	return p.value.String()
}

type Stock struct {
	value int32
}

func NewStock(n int32) (Stock, error) {
	if n < 0 {
		return Stock{}, ErrInvalidStock
	}
	return Stock{value: n}, nil
}

func (s Stock) Value() int32 {
	return s.value
}
