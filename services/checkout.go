package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/op/go-logging"

	"github.com/Galang0304/kasir-pos-capstone/apperr"
	"github.com/Galang0304/kasir-pos-capstone/models"
)

var log = logging.MustGetLogger("checkout")

// CartItem is one proposed line of a client-held cart. Quantities and ids
// are the only fields trusted from the client; prices always come from the
// store.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CheckoutRequest struct {
	Items         []CartItem `json:"items"`
	CustomerID    string     `json:"customer_id"`
	PaymentMethod string     `json:"payment_method"`
	AmountPaid    float64    `json:"amount_paid"`
	Discount      float64    `json:"discount"`
}

// CheckoutService converts a cart into a committed, immutable transaction.
// Stock validation, stock decrement, the invoice insert and loyalty accrual
// all happen inside one atomic unit of work: either the full invoice exists
// afterwards or nothing changed. The service never retries a failed unit;
// the caller must re-validate the cart first.
type CheckoutService struct {
	store   Store
	loyalty *LoyaltyService
}

func NewCheckoutService(store Store, loyalty *LoyaltyService) *CheckoutService {
	return &CheckoutService{store: store, loyalty: loyalty}
}

// Checkout validates and commits a sale on behalf of the acting cashier.
// The cashier id comes from the verified token, never from the request.
func (s *CheckoutService) Checkout(ctx context.Context, cashierID string, req CheckoutRequest) (*models.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validationf("empty cart")
	}
	if req.PaymentMethod == "" {
		return nil, apperr.Validationf("payment method is required")
	}

	// Aggregate requested qty per product so the stock check cannot be
	// bypassed by splitting one product across cart lines.
	perProduct := map[string]int{}
	order := []string{}
	for _, it := range req.Items {
		if it.ProductID == "" {
			return nil, apperr.Validationf("cart item is missing product_id")
		}
		if it.Quantity <= 0 {
			return nil, apperr.Validationf("quantity must be greater than zero")
		}
		if _, seen := perProduct[it.ProductID]; !seen {
			order = append(order, it.ProductID)
		}
		perProduct[it.ProductID] += it.Quantity
	}

	var txn *models.Transaction
	err := s.store.WithUnit(ctx, func(ctx context.Context) error {
		cashier, err := s.store.UserByID(ctx, cashierID)
		if err != nil {
			return err
		}

		customerName := models.WalkInName
		if req.CustomerID != "" {
			customer, err := s.store.CustomerByID(ctx, req.CustomerID)
			if err != nil {
				return err
			}
			customerName = customer.Name
		}

		// Authoritative re-read: current stock and price, not the client's
		// cached view.
		products := map[string]*models.Product{}
		for _, id := range order {
			p, err := s.store.ProductByID(ctx, id)
			if err != nil {
				return err
			}
			if perProduct[id] > p.Stock {
				return &apperr.ValidationError{
					Msg: fmt.Sprintf("insufficient stock for %s (requested %d, available %d)", p.Name, perProduct[id], p.Stock),
					Err: apperr.ErrInsufficientStock,
				}
			}
			products[id] = p
		}

		items := make([]models.TransactionItem, 0, len(req.Items))
		var subtotal float64
		for _, it := range req.Items {
			p := products[it.ProductID]
			line := p.Price * float64(it.Quantity)
			items = append(items, models.TransactionItem{
				ProductID: p.ID,
				Name:      p.Name,
				SKU:       p.SKU,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
				Subtotal:  line,
			})
			subtotal += line
		}

		if req.Discount < 0 || req.Discount > subtotal {
			return apperr.Validationf("invalid discount")
		}
		total := subtotal - req.Discount
		if req.AmountPaid < total {
			return apperr.Validationf("insufficient payment")
		}

		invoiceNumber, err := s.store.NextInvoiceNumber(ctx)
		if err != nil {
			return err
		}

		t := &models.Transaction{
			ID:            uuid.NewString(),
			InvoiceNumber: invoiceNumber,
			CashierID:     cashier.ID,
			CashierName:   cashier.Name,
			CustomerID:    req.CustomerID,
			CustomerName:  customerName,
			Items:         items,
			Subtotal:      subtotal,
			Discount:      req.Discount,
			Total:         total,
			AmountPaid:    req.AmountPaid,
			Change:        req.AmountPaid - total,
			PaymentMethod: req.PaymentMethod,
			PointsEarned:  s.loyalty.Points(total),
			CreatedAt:     time.Now(),
		}

		// The conditional decrement is the real guard: a concurrent checkout
		// that got here first makes this one fail, and the whole unit rolls
		// back.
		for _, id := range order {
			if err := s.store.DeductStock(ctx, id, perProduct[id]); err != nil {
				if errors.Is(err, apperr.ErrInsufficientStock) {
					return &apperr.ValidationError{
						Msg: fmt.Sprintf("insufficient stock for %s", products[id].Name),
						Err: apperr.ErrInsufficientStock,
					}
				}
				return err
			}
		}

		if err := s.store.InsertTransaction(ctx, t); err != nil {
			return err
		}

		if _, err := s.loyalty.Accrue(ctx, req.CustomerID, total); err != nil {
			return err
		}

		txn = t
		return nil
	})
	if err != nil {
		if apperr.IsValidation(err) || apperr.IsNotFound(err) {
			return nil, err
		}
		log.Errorf("checkout unit discarded for cashier %s: %v", cashierID, err)
		return nil, &apperr.TransactionFailedError{Cause: err}
	}

	log.Infof("invoice %s committed: total=%.0f items=%d cashier=%s", txn.InvoiceNumber, txn.Total, len(txn.Items), txn.CashierID)
	return txn, nil
}
