package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

// unitKey marks a context as running inside a MemoryStore unit of work, so
// nested store calls reuse the lock the unit already holds.
type unitKey struct{}

// MemoryStore is an in-memory services.Store used by tests. WithUnit holds
// the store lock for the whole unit and restores a snapshot on error, giving
// the same all-or-nothing and isolation semantics as the Mongo session
// transaction.
type MemoryStore struct {
	mu sync.Mutex

	users        map[string]models.User
	products     map[string]models.Product
	customers    map[string]models.Customer
	transactions map[string]models.Transaction
	invoiceSeq   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        map[string]models.User{},
		products:     map[string]models.Product{},
		customers:    map[string]models.Customer{},
		transactions: map[string]models.Transaction{},
	}
}

func (s *MemoryStore) lock(ctx context.Context) func() {
	if ctx.Value(unitKey{}) != nil {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type memorySnapshot struct {
	users        map[string]models.User
	products     map[string]models.Product
	customers    map[string]models.Customer
	transactions map[string]models.Transaction
	invoiceSeq   int64
}

func cloneMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *MemoryStore) snapshot() memorySnapshot {
	return memorySnapshot{
		users:        cloneMap(s.users),
		products:     cloneMap(s.products),
		customers:    cloneMap(s.customers),
		transactions: cloneMap(s.transactions),
		invoiceSeq:   s.invoiceSeq,
	}
}

func (s *MemoryStore) restore(snap memorySnapshot) {
	s.users = snap.users
	s.products = snap.products
	s.customers = snap.customers
	s.transactions = snap.transactions
	s.invoiceSeq = snap.invoiceSeq
}

// WithUnit serializes units: the lock is held from snapshot to commit, so a
// concurrent unit observes either all of this one's effects or none.
func (s *MemoryStore) WithUnit(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, unitKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Seed helpers for tests.

func (s *MemoryStore) PutUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *MemoryStore) PutProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *MemoryStore) PutCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

func (s *MemoryStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	defer s.lock(ctx)()
	u, ok := s.users[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "user", ID: id}
	}
	return &u, nil
}

func (s *MemoryStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	defer s.lock(ctx)()
	for _, u := range s.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, &apperr.NotFoundError{Entity: "user", ID: username}
}

func (s *MemoryStore) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	defer s.lock(ctx)()
	p, ok := s.products[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "product", ID: id}
	}
	return &p, nil
}

func (s *MemoryStore) CustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	defer s.lock(ctx)()
	c, ok := s.customers[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "customer", ID: id}
	}
	return &c, nil
}

func (s *MemoryStore) DeductStock(ctx context.Context, productID string, qty int) error {
	defer s.lock(ctx)()
	p, ok := s.products[productID]
	if !ok {
		return &apperr.NotFoundError{Entity: "product", ID: productID}
	}
	if p.Stock < qty {
		return apperr.ErrInsufficientStock
	}
	p.Stock -= qty
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) AddStock(ctx context.Context, productID string, qty int) error {
	defer s.lock(ctx)()
	p, ok := s.products[productID]
	if !ok {
		return &apperr.NotFoundError{Entity: "product", ID: productID}
	}
	p.Stock += qty
	s.products[productID] = p
	return nil
}

func (s *MemoryStore) AccrueLoyalty(ctx context.Context, customerID string, spent float64, points int) error {
	defer s.lock(ctx)()
	c, ok := s.customers[customerID]
	if !ok {
		return &apperr.NotFoundError{Entity: "customer", ID: customerID}
	}
	c.TotalSpent += spent
	c.Points += points
	c.VisitCount++
	s.customers[customerID] = c
	return nil
}

func (s *MemoryStore) NextInvoiceNumber(ctx context.Context) (string, error) {
	defer s.lock(ctx)()
	s.invoiceSeq++
	return fmt.Sprintf("INV-%06d", s.invoiceSeq), nil
}

func (s *MemoryStore) InsertTransaction(ctx context.Context, t *models.Transaction) error {
	defer s.lock(ctx)()
	if _, exists := s.transactions[t.ID]; exists {
		return fmt.Errorf("duplicate transaction id %s", t.ID)
	}
	s.transactions[t.ID] = *t
	return nil
}

func (s *MemoryStore) TransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	defer s.lock(ctx)()
	t, ok := s.transactions[id]
	if !ok {
		return nil, &apperr.NotFoundError{Entity: "transaction", ID: id}
	}
	return &t, nil
}

func (s *MemoryStore) ListTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.Transaction, error) {
	defer s.lock(ctx)()
	var list []models.Transaction
	for _, t := range s.transactions {
		if filter.CashierID != "" && t.CashierID != filter.CashierID {
			continue
		}
		if filter.CustomerID != "" && t.CustomerID != filter.CustomerID {
			continue
		}
		if !filter.Start.IsZero() && t.CreatedAt.Before(filter.Start) {
			continue
		}
		if !filter.End.IsZero() && !t.CreatedAt.Before(filter.End) {
			continue
		}
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
