package services

import (
	"context"

	"github.com/Galang0304/kasir-pos-capstone/models"
)

// Store is the persistence capability set the services depend on. The Mongo
// implementation lives in repository; an in-memory implementation backs the
// tests. It is injected explicitly, never reached through package state.
//
// Mutating methods called inside WithUnit take effect only if the whole unit
// commits.
type Store interface {
	UserByID(ctx context.Context, id string) (*models.User, error)
	UserByUsername(ctx context.Context, username string) (*models.User, error)

	ProductByID(ctx context.Context, id string) (*models.Product, error)
	CustomerByID(ctx context.Context, id string) (*models.Customer, error)

	// DeductStock decrements stock by qty only if current stock >= qty.
	// Returns apperr.ErrInsufficientStock on shortfall without mutating.
	DeductStock(ctx context.Context, productID string, qty int) error
	AddStock(ctx context.Context, productID string, qty int) error

	// AccrueLoyalty adds spent to lifetime spend, points to the balance and
	// one visit, as a single update.
	AccrueLoyalty(ctx context.Context, customerID string, spent float64, points int) error

	// NextInvoiceNumber returns a fresh, never-reused invoice number.
	NextInvoiceNumber(ctx context.Context) (string, error)

	InsertTransaction(ctx context.Context, t *models.Transaction) error
	TransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error)

	// WithUnit runs fn inside one atomic unit of work. If fn returns an
	// error, every mutation made through ctx inside fn is discarded.
	WithUnit(ctx context.Context, fn func(ctx context.Context) error) error
}
