package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

func TestMemoryStoreUnitRollsBackOnError(t *testing.T) {
	store := NewMemoryStore()
	store.PutProduct(models.Product{ID: "p1", Name: "Teh", Stock: 5})

	boom := errors.New("boom")
	err := store.WithUnit(context.Background(), func(ctx context.Context) error {
		if err := store.DeductStock(ctx, "p1", 3); err != nil {
			return err
		}
		if _, err := store.NextInvoiceNumber(ctx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Every mutation inside the failed unit is gone.
	p, err := store.ProductByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)

	num, err := store.NextInvoiceNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", num)
}

func TestMemoryStoreUnitCommits(t *testing.T) {
	store := NewMemoryStore()
	store.PutProduct(models.Product{ID: "p1", Name: "Teh", Stock: 5})

	err := store.WithUnit(context.Background(), func(ctx context.Context) error {
		return store.DeductStock(ctx, "p1", 2)
	})
	require.NoError(t, err)

	p, err := store.ProductByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}

func TestMemoryStoreDeductStockGuards(t *testing.T) {
	store := NewMemoryStore()
	store.PutProduct(models.Product{ID: "p1", Stock: 2})

	err := store.DeductStock(context.Background(), "p1", 3)
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)

	err = store.DeductStock(context.Background(), "missing", 1)
	assert.True(t, apperr.IsNotFound(err))

	// The failed deduction changed nothing.
	p, _ := store.ProductByID(context.Background(), "p1")
	assert.Equal(t, 2, p.Stock)
}

func TestMemoryStoreInvoiceNumbersMonotonic(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.NextInvoiceNumber(context.Background())
	require.NoError(t, err)
	second, err := store.NextInvoiceNumber(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", first)
	assert.Equal(t, "INV-000002", second)
}

func TestMemoryStoreInsertTransactionRejectsDuplicateID(t *testing.T) {
	store := NewMemoryStore()

	txn := &models.Transaction{ID: "t1", InvoiceNumber: "INV-000001"}
	require.NoError(t, store.InsertTransaction(context.Background(), txn))
	assert.Error(t, store.InsertTransaction(context.Background(), txn))
}
