package services

import (
	"context"
	"math"
)

// LoyaltyService accrues reward points from sale totals. The divisor is the
// amount of spend that earns one point (policy default: 1000).
type LoyaltyService struct {
	store   Store
	divisor int
}

func NewLoyaltyService(store Store, divisor int) *LoyaltyService {
	if divisor <= 0 {
		divisor = 1000
	}
	return &LoyaltyService{store: store, divisor: divisor}
}

// Points returns the points earned for a sale total: floor(total / divisor).
func (s *LoyaltyService) Points(total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(total / float64(s.divisor)))
}

// Accrue credits a customer for a completed sale: spend, one visit and the
// computed points. No-op for walk-in sales (empty customer id). amountSpent
// is never negative here; the orchestrator rejects negative totals first.
func (s *LoyaltyService) Accrue(ctx context.Context, customerID string, amountSpent float64) (int, error) {
	if customerID == "" {
		return 0, nil
	}
	points := s.Points(amountSpent)
	if err := s.store.AccrueLoyalty(ctx, customerID, amountSpent, points); err != nil {
		return 0, err
	}
	return points, nil
}
