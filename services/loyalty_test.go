package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/models"
	"github.com/Galang0304/kasir-pos-capstone/repository"
	"github.com/Galang0304/kasir-pos-capstone/services"
)

func TestLoyaltyPointsFloor(t *testing.T) {
	loyalty := services.NewLoyaltyService(repository.NewMemoryStore(), 1000)

	cases := []struct {
		total float64
		want  int
	}{
		{12500, 12},
		{1000, 1},
		{999, 0},
		{0, 0},
		{-500, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, loyalty.Points(tc.total), "total %v", tc.total)
	}
}

func TestLoyaltyCustomDivisor(t *testing.T) {
	loyalty := services.NewLoyaltyService(repository.NewMemoryStore(), 500)
	assert.Equal(t, 25, loyalty.Points(12500))
}

func TestLoyaltyAccrue(t *testing.T) {
	store := repository.NewMemoryStore()
	store.PutCustomer(models.Customer{ID: "cust-1", Name: "Siti", Points: 3, VisitCount: 2, TotalSpent: 5000})
	loyalty := services.NewLoyaltyService(store, 1000)

	points, err := loyalty.Accrue(context.Background(), "cust-1", 12500)
	require.NoError(t, err)
	assert.Equal(t, 12, points)

	cust, err := store.CustomerByID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 15, cust.Points)
	assert.Equal(t, 3, cust.VisitCount)
	assert.Equal(t, 17500.0, cust.TotalSpent)
}

func TestLoyaltyAccrueWalkIn(t *testing.T) {
	loyalty := services.NewLoyaltyService(repository.NewMemoryStore(), 1000)

	// Empty customer id is a walk-in sale: nothing accrues, no error.
	points, err := loyalty.Accrue(context.Background(), "", 99999)
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestLoyaltyAccrueUnknownCustomer(t *testing.T) {
	loyalty := services.NewLoyaltyService(repository.NewMemoryStore(), 1000)

	_, err := loyalty.Accrue(context.Background(), "nobody", 1000)
	assert.Error(t, err)
}
