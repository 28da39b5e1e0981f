package services

import (
	"context"
	"errors"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
)

// Stock adjustment directions for manual inventory corrections.
const (
	AdjustAdd      = "add"
	AdjustSubtract = "subtract"
)

// StockService handles manual stock adjustments outside the checkout path
// (restocks, corrections). Checkout decrements go through the orchestrator's
// atomic unit instead.
type StockService struct {
	store Store
}

func NewStockService(store Store) *StockService {
	return &StockService{store: store}
}

// Adjust applies a manual stock change. Subtracting below zero is rejected
// without mutating.
func (s *StockService) Adjust(ctx context.Context, productID string, qty int, direction string) error {
	if productID == "" {
		return apperr.Validationf("product_id is required")
	}
	if qty <= 0 {
		return apperr.Validationf("quantity must be greater than zero")
	}
	switch direction {
	case AdjustAdd:
		return s.store.AddStock(ctx, productID, qty)
	case AdjustSubtract:
		err := s.store.DeductStock(ctx, productID, qty)
		if errors.Is(err, apperr.ErrInsufficientStock) {
			return &apperr.ValidationError{Msg: "insufficient stock", Err: apperr.ErrInsufficientStock}
		}
		return err
	default:
		return apperr.Validationf("type must be add or subtract")
	}
}
